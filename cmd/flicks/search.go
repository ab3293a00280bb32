package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mmcdole/flicks/internal/controller"
	"github.com/mmcdole/flicks/internal/domain"
	"github.com/mmcdole/flicks/internal/tui/styles"
	"github.com/spf13/cobra"
)

var (
	searchSeries bool
	searchPage   int
)

// searchCmd runs a keyword search and prints one page of results
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search movies or series by keyword",
	Long: `Search the OMDb catalog by keyword and print one page of results.
Use 'flicks show <id>' to see the full details of a result.`,
	Example: `  flicks search matrix
  flicks search --series office --page 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVarP(&searchSeries, "series", "s", false, "search series instead of movies")
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 1, "result page to fetch")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchPage < 1 {
		return fmt.Errorf("page must be 1 or greater")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	gateway, err := a.openGateway()
	if err != nil {
		return err
	}

	category := domain.CategoryMovie
	if searchSeries {
		category = domain.CategorySeries
	}
	query := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	out := cmd.OutOrStdout()
	type result struct {
		page *domain.ResultPage
		err  error
	}
	res := withSpinner(cmd.ErrOrStderr(), "Searching...", func() result {
		page, err := gateway.SearchByKeyword(ctx, query, category, searchPage)
		return result{page, err}
	})
	if res.err != nil {
		a.logger.Error("search failed", "query", query, "error", res.err)
		return errors.New(domain.UserMessage(res.err, "Failed to search"))
	}

	page := res.page
	if !page.OK {
		msg := page.Error
		if msg == "" {
			msg = "No results found"
		}
		fmt.Fprintln(out, styles.DimStyle.Render(msg))
		return nil
	}

	t := newTable("ID", "Title", "Year")
	for _, item := range page.Items {
		t.Row(item.ID, item.Title, item.Year)
	}
	fmt.Fprintln(out, t.Render())

	first := (searchPage-1)*controller.PageSize + 1
	last := first + len(page.Items) - 1
	fmt.Fprintln(out, styles.DimStyle.Render(numbers.Sprintf("Results %d-%d of %d", first, last, page.TotalResults)))
	if searchPage*controller.PageSize < page.TotalResults {
		fmt.Fprintln(out, styles.DimStyle.Render(fmt.Sprintf("More results: flicks search %s--page %d %s", seriesFlag(), searchPage+1, query)))
	}
	return nil
}

func seriesFlag() string {
	if searchSeries {
		return "--series "
	}
	return ""
}
