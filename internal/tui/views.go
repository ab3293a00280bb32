package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mmcdole/flicks/internal/controller"
	"github.com/mmcdole/flicks/internal/domain"
	"github.com/mmcdole/flicks/internal/tui/styles"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numbers formats counts with thousands separators
var numbers = message.NewPrinter(language.English)

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	footer := m.renderFooter()

	if m.detailOpen() {
		return lipgloss.JoinVertical(lipgloss.Left, m.renderDetailOverlay(), footer)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderRecent(),
		m.renderSummary(),
		m.renderResults(),
	)

	if m.dialogOpen() {
		bodyHeight := max(m.Height-lipgloss.Height(footer), 1)
		body = lipgloss.Place(m.Width, bodyHeight, lipgloss.Center, lipgloss.Center, m.renderDialog())
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// renderHeader renders the title, category tabs and input lines
func (m Model) renderHeader() string {
	var tabs []string
	for _, c := range []domain.Category{domain.CategoryMovie, domain.CategorySeries} {
		if c == m.state.Search.Category {
			tabs = append(tabs, styles.ActiveTabStyle.Render(c.Label()))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(c.Label()))
		}
	}
	title := styles.TitleStyle.Render("flicks") + "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	filterLine := ""
	if m.focus == FocusFilter || m.filterInput.Value() != "" {
		filterLine = m.filterInput.View()
	}

	rule := styles.DimStyle.Render(strings.Repeat("─", max(m.Width, 1)))
	return strings.Join([]string{title, m.searchInput.View(), filterLine, rule}, "\n")
}

// renderRecent renders the recently-viewed strip for the active category
func (m Model) renderRecent() string {
	items := m.recentItems()
	if len(items) == 0 {
		return ""
	}

	if m.recentCollapsed() {
		return styles.SectionStyle.UnsetMarginTop().Render(fmt.Sprintf("▸ Recently viewed (%d)", len(items)))
	}

	lines := []string{styles.SectionStyle.UnsetMarginTop().Render("▾ Recently viewed")}
	start := 0
	if m.recentCursor >= MaxRecentRows {
		start = m.recentCursor - MaxRecentRows + 1
	}
	end := min(start+MaxRecentRows, len(items))
	for i := start; i < end; i++ {
		item := items[i]
		label := itemLabel(item)
		if item.LastViewedAt != nil {
			label += styles.DimStyle.Render(" · " + humanize.RelTime(*item.LastViewedAt, m.now(), "ago", "from now"))
		}
		lines = append(lines, renderRow(label, m.pane == PaneRecent && i == m.recentCursor, m.Width))
	}
	return strings.Join(lines, "\n")
}

// renderSummary renders the result count, loading indicator or error line
func (m Model) renderSummary() string {
	s := m.state.Search

	switch {
	case s.Loading:
		return m.spinner.View() + " " + styles.DimStyle.Render(loadingText(s))
	case s.Error != "":
		return styles.ErrorStyle.Render(s.Error) + styles.DimStyle.Render("  (R to retry)")
	case s.Mode == controller.ModeCurated:
		return styles.SubtitleStyle.Render("Popular " + strings.ToLower(s.Category.Label()))
	}

	summary := numbers.Sprintf("Showing %d of %d results for %q", len(s.Results), s.TotalResults, strings.TrimSpace(s.Query))
	if len(m.visible) != len(s.Results) {
		summary += numbers.Sprintf(" (%d match filter)", len(m.visible))
	}
	return styles.SubtitleStyle.Render(summary)
}

func loadingText(s controller.SearchState) string {
	if s.Mode == controller.ModeCurated {
		return "Loading popular content..."
	}
	if len(s.Results) > 0 {
		return "Loading more results..."
	}
	return "Searching..."
}

// renderResults renders the visible window of the result list
func (m Model) renderResults() string {
	if len(m.visible) == 0 {
		if m.filterInput.Value() != "" && len(m.state.Search.Results) > 0 {
			return styles.DimStyle.Render("  No results match the filter")
		}
		return ""
	}

	height := m.resultsHeight()
	end := min(m.offset+height, len(m.visible))
	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		v := m.visible[i]
		item := m.state.Search.Results[v.Index]

		title := styles.Highlight(item.Title, v.Matched)
		label := title + styles.DimStyle.Render(yearSuffix(item.Year))
		lines = append(lines, renderRow(label, m.pane == PaneResults && i == m.cursor, m.Width))
	}

	s := m.state.Search
	if s.Mode == controller.ModeSearchResults && s.HasMore && m.cursor == len(m.visible)-1 && !s.Loading {
		lines = append(lines, styles.DimStyle.Render("  ↓ more results"))
	}
	return strings.Join(lines, "\n")
}

// renderRow renders a list row with selection styling
func renderRow(label string, selected bool, width int) string {
	label = styles.Pad(label, max(width-2, 0))
	if selected {
		return styles.SelectedItemStyle.Render(label)
	}
	return styles.NormalItemStyle.Render(label)
}

// renderDialog renders the selected item summary
func (m Model) renderDialog() string {
	item := m.state.Selected
	width := min(max(m.Width-10, 20), 60)

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render(styles.Truncate(item.Title, width)))
	b.WriteString("\n")
	b.WriteString(styles.BadgeStyle.Render(item.Category.Label()))
	if hasValue(item.Year) {
		b.WriteString(" " + styles.DimBadgeStyle.Render(item.Year))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.DimStyle.Render(item.ID))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentStyle.Render("enter") + " details  ")
	b.WriteString(styles.AccentStyle.Render("o") + " IMDb  ")
	b.WriteString(styles.AccentStyle.Render("esc") + " close")

	return styles.ModalStyle.Width(width).Render(b.String())
}

// renderDetailOverlay renders the detail viewport in a bordered frame
func (m Model) renderDetailOverlay() string {
	head := styles.TitleStyle.Render("Details")
	if m.state.Detail.DetailLoading || m.state.Detail.ReviewsLoading {
		head += " " + m.spinner.View()
	}
	if m.detail.TotalLineCount() > m.detail.Height {
		head += styles.DimStyle.Render(fmt.Sprintf("  %3.f%%", m.detail.ScrollPercent()*100))
	}
	return styles.ModalStyle.Render(head + "\n" + m.detail.View())
}

// RenderDetail renders the full detail body, used by the detail overlay and the show command
func RenderDetail(d controller.DetailState, width int) string {
	if d.ID == "" {
		return ""
	}
	if width <= 0 {
		width = 60
	}

	var b strings.Builder
	switch {
	case d.DetailLoading:
		b.WriteString(styles.DimStyle.Render("Loading details..."))
		return b.String()
	case d.DetailError != "":
		b.WriteString(styles.ErrorStyle.Render(d.DetailError))
		b.WriteString(styles.DimStyle.Render("  (R to retry, esc to close)"))
		return b.String()
	case d.Item == nil:
		return ""
	}

	item := d.Item
	b.WriteString(styles.TitleStyle.Render(item.Title) + styles.DimStyle.Render(yearSuffix(item.Year)))
	b.WriteString("\n")

	badges := []string{styles.BadgeStyle.Render(item.Category.Label())}
	if hasValue(item.IMDbRating) {
		badges = append(badges, styles.BadgeStyle.Render("★ "+item.IMDbRating))
	}
	if hasValue(item.Runtime) {
		badges = append(badges, styles.DimBadgeStyle.Render(item.Runtime))
	}
	for _, g := range item.Genres() {
		badges = append(badges, styles.DimBadgeStyle.Render(g))
	}
	b.WriteString(strings.Join(badges, " "))
	b.WriteString("\n")

	if hasValue(item.Plot) {
		b.WriteString("\n" + wordWrap(item.Plot, width) + "\n")
	}

	fields := []struct{ label, value string }{
		{"Director", item.Director},
		{"Writer", item.Writer},
		{"Cast", strings.Join(item.Cast(), ", ")},
		{"Released", item.Released},
		{"Language", item.Language},
		{"Country", item.Country},
		{"Awards", item.Awards},
		{"Box office", item.BoxOffice},
		{"Metascore", item.Metascore},
		{"IMDb votes", item.IMDbVotes},
		{"Production", item.Production},
		{"Website", item.Website},
	}
	b.WriteString("\n")
	for _, f := range fields {
		if !hasValue(f.value) {
			continue
		}
		b.WriteString(styles.DimStyle.Render(styles.Pad(f.label, 12)))
		b.WriteString(wordWrap(f.value, max(width-12, 10)))
		b.WriteString("\n")
	}
	if url := item.IMDbURL(); url != "" {
		b.WriteString(styles.DimStyle.Render(styles.Pad("IMDb", 12)) + url + "\n")
	}

	if len(item.Ratings) > 0 {
		b.WriteString(styles.SectionStyle.Render("Ratings") + "\n")
		for _, r := range item.Ratings {
			b.WriteString(fmt.Sprintf("  %s  %s\n", styles.Pad(r.Source, 24), styles.AccentStyle.Render(r.Value)))
		}
	}

	b.WriteString(styles.SectionStyle.Render("Critic reviews") + "\n")
	switch {
	case d.ReviewsLoading:
		b.WriteString(styles.DimStyle.Render("Loading reviews...") + "\n")
	case len(d.Reviews) == 0:
		b.WriteString(styles.DimStyle.Render("No critic reviews") + "\n")
	default:
		for _, r := range d.Reviews {
			b.WriteString(renderReview(r, width))
		}
	}

	return b.String()
}

// renderReview renders a single critic review block
func renderReview(r domain.Review, width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(styles.TitleStyle.Render(wordWrap(r.Headline, width)))
	if r.CriticsPick {
		b.WriteString(" " + styles.BadgeStyle.Render("Critics' Pick"))
	}
	b.WriteString("\n")

	var meta []string
	if r.Byline != "" {
		meta = append(meta, r.Byline)
	}
	if r.PublicationDate != "" {
		meta = append(meta, r.PublicationDate)
	}
	if len(meta) > 0 {
		b.WriteString(styles.DimStyle.Render(strings.Join(meta, " · ")) + "\n")
	}
	if r.Summary != "" {
		b.WriteString(wordWrap(r.Summary, width) + "\n")
	}
	if r.URL != "" {
		b.WriteString(styles.DimStyle.Render(r.URL) + "\n")
	}
	return b.String()
}

// renderFooter renders the status line and key help
func (m Model) renderFooter() string {
	status := ""
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			status = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			status = styles.SuccessStyle.Render(m.StatusMsg)
		}
	}
	return status + "\n" + m.help.View(Keys)
}

// itemLabel renders "Title (Year)"
func itemLabel(item domain.Item) string {
	return item.Title + styles.DimStyle.Render(yearSuffix(item.Year))
}

func yearSuffix(year string) string {
	if !hasValue(year) {
		return ""
	}
	return " (" + year + ")"
}

// hasValue reports whether an upstream field carries data
func hasValue(s string) bool {
	return s != "" && s != "N/A"
}

// wordWrap wraps text to the specified width
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wordLen := lipgloss.Width(word)

		if lineLen+wordLen+1 > width && lineLen > 0 {
			result.WriteString("\n")
			lineLen = 0
		}

		if i > 0 && lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}
