package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var helpSectionTitles = []string{"Navigation", "Tiles", "General"}

// renderHelp renders the help overlay from the full key map.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder

	// Title
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)

	sections := m.keys.FullHelp()
	for i, bindings := range sections {
		if i < len(helpSectionTitles) {
			b.WriteString(styles.AccentText.Bold(true).Render(helpSectionTitles[i]))
			b.WriteString("\n")
		}
		for _, binding := range bindings {
			b.WriteString(helpLine(binding, keyStyle, styles.Text))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderThemeList())

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(1, 2).
		Width(40)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// renderThemeList lists the themes T cycles through, current one marked.
func (m Model) renderThemeList() string {
	styles := m.theme.Styles()
	names := ThemeNames()
	parts := make([]string, len(names))
	for i, name := range names {
		if name == m.theme.Name {
			parts[i] = styles.AccentText.Bold(true).Render("[" + name + "]")
		} else {
			parts[i] = styles.MutedText.Render(name)
		}
	}
	return styles.FaintText.Render("Themes ") + strings.Join(parts, " ")
}

func helpLine(binding key.Binding, keyStyle, descStyle lipgloss.Style) string {
	h := binding.Help()
	return keyStyle.Render(h.Key) + descStyle.Render(h.Desc)
}
