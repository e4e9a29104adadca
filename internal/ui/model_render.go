// internal/ui/model_render.go
// Top-level View composition
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the full UI
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	if m.showHistory {
		return m.renderHistoryPopup()
	}
	if m.showHelp {
		return m.renderHelpPopup()
	}

	sidebar := SidebarStyle.Render(m.list.View())
	body := BodyStyle.Render(m.viewport.View())
	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, body)

	var footer string
	if m.filtering {
		footer = m.filterInput.View()
	} else {
		footer = m.renderHints()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		main,
		m.renderStatusBar(),
		footer,
	)
}

// renderHistoryPopup shows the copy log centered on screen
func (m Model) renderHistoryPopup() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(AccentColor()).Render("Copy log")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.historyTable.View())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		PopupStyle.Render(content))
}
