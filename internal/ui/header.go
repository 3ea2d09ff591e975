package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/mosdash/internal/state"
	"github.com/five82/mosdash/internal/widget"
)

// pending stands in for a reading that has not arrived yet.
const pending = "..."

// renderMain renders header, grid, info lines and the help footer. The row
// count above the grid must stay equal to gridTop.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	cursor := m.cursor
	if m.controller == nil {
		cursor = -1
	}
	b.WriteString(renderGrid(m.snapshot.Tiles, cursor))
	b.WriteString("\n\n")

	b.WriteString(m.renderInfo())
	b.WriteString("\n")

	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the single-line title bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("mosdash", styles.Logo),
		bg.Render("theme "+m.theme.Name, styles.MutedText),
	}
	if m.snapshot.Time.IsStale() || m.snapshot.Temperature.IsStale() {
		parts = append(parts, bg.Render("stale", styles.WarningText))
	}

	return styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(parts, 2))
}

// renderInfo renders the time, temperature, error and click lines. The
// temperature error always sits on its own line.
func (m Model) renderInfo() string {
	styles := m.theme.Styles()
	indent := strings.Repeat(" ", gridLeft)

	lines := []string{
		m.readingStyle(m.snapshot.Time).Render(widget.TimeLine(readingText(m.snapshot.Time))) + m.staleSuffix(m.snapshot.Time),
		m.readingStyle(m.snapshot.Temperature).Render(widget.TemperatureLine(readingText(m.snapshot.Temperature))) + m.staleSuffix(m.snapshot.Temperature),
	}
	if errText := m.snapshot.Temperature.ErrorText; errText != "" {
		lines = append(lines, styles.DangerText.Render(errText))
	}
	lines = append(lines, styles.AccentText.Render(widget.ClicksLine(m.snapshot.Clicks)))

	for i := range lines {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}

// readingStyle dims a line whose latest fetch failed.
func (m Model) readingStyle(r state.Reading) lipgloss.Style {
	styles := m.theme.Styles()
	if r.Text != "" && !r.HasValue {
		return styles.WarningText
	}
	return styles.Text
}

// staleSuffix notes when a good reading last arrived once the display has
// failed twice in a row.
func (m Model) staleSuffix(r state.Reading) string {
	if !r.IsStale() {
		return ""
	}
	return m.theme.Styles().FaintText.Render("  (" + staleSince(r) + ")")
}

func staleSince(r state.Reading) string {
	if r.LastUpdated.IsZero() {
		return "нет данных"
	}
	return "обновлено " + r.LastUpdated.Format("15:04:05")
}

func (m Model) renderFooter() string {
	indent := strings.Repeat(" ", gridLeft)
	if m.notice != "" {
		return indent + m.theme.Styles().DangerText.Render(truncate(m.notice, max(m.width-gridLeft, 0)))
	}
	return indent + m.help.View(m.keys)
}

func readingText(r state.Reading) string {
	if r.Text == "" {
		return pending
	}
	return r.Text
}
