package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/flicks/internal/adapter"
	"github.com/mmcdole/flicks/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd launches the interactive browser
var rootCmd = &cobra.Command{
	Use:   "flicks",
	Short: "Browse movies and series from your terminal",
	Long: `flicks searches the OMDb catalog for movies and series, shows full details
with critic reviews, and remembers what you recently viewed.

Run without a subcommand to start the interactive browser.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/flicks/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(versionCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Info("starting flicks", "version", Version)

	// First run on an interactive terminal goes through setup
	if !a.cfg.IsConfigured() && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := runSetupFlow(cmd, a.cfg); err != nil {
			return err
		}
	}

	ctrl, err := a.newController()
	if err != nil {
		return err
	}

	launcher := adapter.NewLauncher(a.cfg.UI.Browser, a.logger.With("component", "launcher"))
	model := tui.NewModel(ctrl, launcher, a.logger.With("component", "tui"))
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	a.logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	a.logger.Info("shutting down")
	return nil
}
