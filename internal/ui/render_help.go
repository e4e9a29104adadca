// internal/ui/render_help.go
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHints renders the one-line key hints footer
func (m Model) renderHints() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(TextPrimary()).
		Background(CardBg()).
		Padding(0, 1).
		Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(TextSecondary())

	hint := func(key, desc string) string {
		return keyStyle.Render(key) + descStyle.Render(" "+desc)
	}
	key := func(bindings []string, fallback string) string {
		if len(bindings) > 0 {
			return bindings[0]
		}
		return fallback
	}

	keys := m.config.Keys
	hints := []string{
		hint(key(keys.Up, "k")+"/"+key(keys.Down, "j"), "Nav"),
		hint(key(keys.Copy, "y"), "Copy"),
		hint(key(keys.Filter, "/"), "Filter"),
		hint(key(keys.History, "h"), "Log"),
		hint(key(keys.Help, "?"), "Help"),
		hint(key(keys.Quit, "q"), "Quit"),
	}
	return strings.Join(hints, "  ")
}

// renderHelpPopup shows the full key binding reference
func (m Model) renderHelpPopup() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(AccentColor())
	keyStyle := lipgloss.NewStyle().Foreground(HighlightColor()).Width(14)
	descStyle := lipgloss.NewStyle().Foreground(TextPrimary())

	row := func(bindings []string, desc string) string {
		return keyStyle.Render(strings.Join(bindings, ", ")) + descStyle.Render(desc)
	}

	keys := m.config.Keys
	lines := []string{
		titleStyle.Render("Keyboard shortcuts"),
		"",
		row(keys.Up, "Previous snippet"),
		row(keys.Down, "Next snippet"),
		row(keys.Top, "First snippet"),
		row(keys.Bottom, "Last snippet"),
		row(keys.Copy, "Copy snippet to clipboard"),
		row(keys.Filter, "Filter snippet list"),
		row(keys.History, "Show copy log"),
		row(keys.Help, "Toggle this help"),
		row(keys.Quit, "Quit"),
		"",
		MetaStyle.Render("press any key to close"),
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		PopupStyle.Render(strings.Join(lines, "\n")))
}
