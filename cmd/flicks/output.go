package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mmcdole/flicks/internal/tui/styles"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// requestTimeout bounds one command's upstream calls
const requestTimeout = 30 * time.Second

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                        \r"

// numbers formats counts with thousands separators
var numbers = message.NewPrinter(language.English)

// newTable creates a bordered table with styled headers
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.DimStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.AccentStyle.Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// terminalWidth returns the width of stdout, or fallback when it is not a terminal
func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// withSpinner runs fn while animating a spinner on interactive terminals
func withSpinner[T any](w io.Writer, label string, fn func() T) T {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fn()
	}

	resultCh := make(chan T, 1)
	go func() {
		resultCh <- fn()
	}()

	frame := 0
	fmt.Fprintf(w, "\r%s %s", styles.SpinnerStyle.Render(styles.SpinnerFrames[frame]), label)

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case res := <-resultCh:
			fmt.Fprint(w, clearSpinnerLine)
			return res
		case <-ticker.C:
			frame++
			fmt.Fprintf(w, "\r%s %s", styles.SpinnerStyle.Render(styles.SpinnerFrames[frame%len(styles.SpinnerFrames)]), label)
		}
	}
}
