package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mmcdole/flicks/internal/adapter"
	"github.com/mmcdole/flicks/internal/adapter/source"
	"github.com/mmcdole/flicks/internal/service"
	"github.com/mmcdole/flicks/internal/tui/styles"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// setupCmd prompts for API keys and writes the config file
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure API keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return runSetupFlow(cmd, a.cfg)
	},
}

// runSetupFlow prompts for API keys until OMDb accepts one, then saves the config
func runSetupFlow(cmd *cobra.Command, cfg *adapter.Config) error {
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.TitleStyle.Render("Welcome to flicks!"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "An OMDb API key is required: https://www.omdbapi.com/apikey.aspx")
	fmt.Fprintln(out, "A New York Times API key is optional and enables critic reviews.")
	fmt.Fprintln(out)

	for {
		omdbKey, err := promptSecret(out, in, "OMDb API key: ")
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if omdbKey == "" {
			fmt.Fprintln(out, "API key cannot be empty. Please try again.")
			continue
		}

		reviewsKey, err := promptSecret(out, in, "NYT API key (optional, enter to skip): ")
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		cfg.OMDb.APIKey = omdbKey
		cfg.Reviews.APIKey = reviewsKey

		sources, err := source.NewSources(cfg, slog.Default())
		if err != nil {
			return fmt.Errorf("failed to create clients: %w", err)
		}
		gateway := service.NewGateway(sources.Catalog, sources.Reviews, slog.Default())

		fmt.Fprintln(out)
		report := checkHealth(cmd.Context(), cmd.ErrOrStderr(), gateway)
		printHealth(out, cfg, report)

		if !report.OMDb {
			fmt.Fprintln(out, "Please check the key and try again.")
			fmt.Fprintln(out)
			continue
		}
		break
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := adapter.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.SuccessStyle.Render("✓ Configuration saved!"))
	fmt.Fprintln(out)
	return nil
}

// promptSecret reads a line without echo when stdin is a terminal
func promptSecret(out io.Writer, in *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
