package main

import (
	"context"
	"fmt"
	"io"

	"github.com/mmcdole/flicks/internal/adapter"
	"github.com/mmcdole/flicks/internal/domain"
	"github.com/mmcdole/flicks/internal/service"
	"github.com/mmcdole/flicks/internal/tui/styles"
	"github.com/spf13/cobra"
)

// healthCmd checks that the upstream services are reachable
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check connectivity to OMDb and the review service",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	gateway, err := a.openGateway()
	if err != nil {
		return err
	}

	report := checkHealth(cmd.Context(), cmd.ErrOrStderr(), gateway)
	printHealth(cmd.OutOrStdout(), a.cfg, report)

	if !report.OMDb {
		return fmt.Errorf("OMDb is unreachable")
	}
	return nil
}

func checkHealth(ctx context.Context, w io.Writer, gateway *service.Gateway) domain.HealthReport {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	return withSpinner(w, "Checking services...", func() domain.HealthReport {
		return gateway.CheckHealth(ctx)
	})
}

func printHealth(w io.Writer, cfg *adapter.Config, report domain.HealthReport) {
	status := func(name string, ok bool) string {
		if ok {
			return styles.SuccessStyle.Render("✓ " + name + " reachable")
		}
		return styles.ErrorStyle.Render("✗ " + name + " unreachable")
	}

	fmt.Fprintln(w, status("OMDb", report.OMDb))
	if cfg.Reviews.APIKey == "" {
		fmt.Fprintln(w, styles.DimStyle.Render("- Reviews not configured"))
	} else {
		fmt.Fprintln(w, status("Reviews", report.Reviews))
	}
}
