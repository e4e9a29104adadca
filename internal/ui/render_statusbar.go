// internal/ui/render_statusbar.go
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/snipview/internal/ui/icons"
)

func (m Model) renderStatusBar() string {
	var parts []string

	parts = append(parts, AppBadgeStyle.Render("SNIPVIEW"))

	// Active snippet and its position within the (filtered) list
	i, n := m.list.Index()
	parts = append(parts, SnippetStyle.Render(
		fmt.Sprintf(" %s %s ", icons.GetFileIcon(m.active), limitString(m.active, 32))))
	parts = append(parts, MetaStyle.Render(fmt.Sprintf(" %d/%d ", i, n)))

	if m.copied {
		parts = append(parts, CopiedStyle.Render(icons.IconSuccess+" Copied"))
	}

	if m.errorMsg != "" {
		parts = append(parts, ErrorStyle.Render(icons.IconError+" "+limitString(m.errorMsg, 40)))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return StatusBarStyle.Width(m.width).Render(content)
}
