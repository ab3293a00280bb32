package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmcdole/flicks/internal/adapter"
	"github.com/mmcdole/flicks/internal/controller"
	"github.com/mmcdole/flicks/internal/tui"
	"github.com/spf13/cobra"
)

var showOpen bool

// showCmd prints the full detail view of one title
var showCmd = &cobra.Command{
	Use:     "show <imdb-id>",
	Short:   "Show details and critic reviews for a title",
	Example: `  flicks show tt0133093`,
	Args:    cobra.ExactArgs(1),
	RunE:    runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showOpen, "open", "o", false, "also open the IMDb page in a browser")
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctrl, err := a.newController()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	detail := withSpinner(cmd.ErrOrStderr(), "Loading details...", func() controller.DetailState {
		ctrl.Dispatch(ctx, controller.LoadDetailAction{ID: args[0]})
		return ctrl.Snapshot().Detail
	})
	if detail.DetailError != "" {
		return errors.New(detail.DetailError)
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderDetail(detail, min(terminalWidth(80), 100)))

	if showOpen && detail.Item != nil {
		launcher := adapter.NewLauncher(a.cfg.UI.Browser, a.logger.With("component", "launcher"))
		if err := launcher.Open(detail.Item.IMDbURL()); err != nil {
			return err
		}
	}
	return nil
}
