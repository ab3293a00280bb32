package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mmcdole/flicks/internal/domain"
	"github.com/mmcdole/flicks/internal/tui/styles"
	"github.com/spf13/cobra"
)

var (
	historyFilter   string
	historyCategory string
	historyClear    bool
)

// historyCmd lists or clears the recently viewed titles
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently viewed titles",
	Example: `  flicks history
  flicks history --category series
  flicks history --filter matrx
  flicks history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyFilter, "filter", "f", "", "fuzzy filter on title")
	historyCmd.Flags().StringVarP(&historyCategory, "category", "c", "", "only show movie or series")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "remove all recently viewed titles")
}

func runHistory(cmd *cobra.Command, args []string) error {
	var category domain.Category
	if historyCategory != "" {
		c, ok := domain.ParseCategory(historyCategory)
		if !ok {
			return fmt.Errorf("unknown category %q, expected movie or series", historyCategory)
		}
		category = c
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ledger := a.openHistory()
	out := cmd.OutOrStdout()

	if historyClear {
		ledger.Clear()
		fmt.Fprintln(out, styles.SuccessStyle.Render("✓ History cleared"))
		return nil
	}

	var items []domain.Item
	for _, item := range ledger.Find(historyFilter) {
		if category == "" || item.Category == category {
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		fmt.Fprintln(out, styles.DimStyle.Render("Nothing viewed yet"))
		return nil
	}

	now := time.Now()
	t := newTable("ID", "Title", "Year", "Type", "Viewed")
	for _, item := range items {
		viewed := ""
		if item.LastViewedAt != nil {
			viewed = humanize.RelTime(*item.LastViewedAt, now, "ago", "from now")
		}
		t.Row(item.ID, item.Title, item.Year, item.Category.Label(), viewed)
	}
	fmt.Fprintln(out, t.Render())
	return nil
}
