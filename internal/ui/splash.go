package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// splashLabel returns the loading caption for step: the company name followed
// by step%4 dots.
func splashLabel(step int) string {
	return splashText + strings.Repeat(".", step%4)
}

// renderSplash centres the loading caption on the screen.
func (m Model) renderSplash() string {
	// Pad to the widest caption so the text does not shift as dots appear.
	label := lipgloss.NewStyle().
		Width(len(splashText) + splashSteps).
		Render(splashLabel(m.splash))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.Styles().SuccessText.Render(label),
		lipgloss.WithWhitespaceChars(" "),
	)
}
