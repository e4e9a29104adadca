// Package snippetlist provides the sidebar list of snippet names with
// selection and substring filtering.
package snippetlist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the list
type Styles struct {
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Icon     lipgloss.Style
	Faint    lipgloss.Style
}

// DefaultStyles returns default styling
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Item:     lipgloss.NewStyle().PaddingLeft(1),
		Selected: lipgloss.NewStyle().PaddingLeft(1).Bold(true),
		Icon:     lipgloss.NewStyle(),
		Faint:    lipgloss.NewStyle().Faint(true),
	}
}

// IconFunc maps a snippet name to a leading icon
type IconFunc func(name string) string

// Model represents the list state
type Model struct {
	names    []string
	cursor   int
	filter   string
	width    int
	styles   Styles
	iconFunc IconFunc
}

// New creates a list over the given names
func New(names []string) Model {
	return Model{
		names:  append([]string(nil), names...),
		styles: DefaultStyles(),
	}
}

// SetStyles sets custom styles
func (m Model) SetStyles(s Styles) Model {
	m.styles = s
	return m
}

// SetIconFunc sets the icon lookup for list items
func (m Model) SetIconFunc(fn IconFunc) Model {
	m.iconFunc = fn
	return m
}

// SetWidth sets the component width
func (m Model) SetWidth(width int) Model {
	m.width = width
	return m
}

// SetFilter applies a case-insensitive substring filter.
// The cursor is clamped into the filtered view.
func (m Model) SetFilter(filter string) Model {
	m.filter = filter
	if n := len(m.Visible()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	} else if n == 0 {
		m.cursor = 0
	}
	return m
}

// Filter returns the active filter string
func (m Model) Filter() string {
	return m.filter
}

// Visible returns the names matching the current filter, in display order
func (m Model) Visible() []string {
	if m.filter == "" {
		return append([]string(nil), m.names...)
	}
	needle := strings.ToLower(m.filter)
	var out []string
	for _, n := range m.names {
		if strings.Contains(strings.ToLower(n), needle) {
			out = append(out, n)
		}
	}
	return out
}

// Select moves the cursor to the given name if it is visible
func (m Model) Select(name string) Model {
	for i, n := range m.Visible() {
		if n == name {
			m.cursor = i
			break
		}
	}
	return m
}

// Selected returns the name under the cursor, or "" for an empty view
func (m Model) Selected() string {
	visible := m.Visible()
	if len(visible) == 0 {
		return ""
	}
	if m.cursor >= len(visible) {
		return visible[len(visible)-1]
	}
	return visible[m.cursor]
}

// Index returns the cursor position and visible count
func (m Model) Index() (int, int) {
	visible := m.Visible()
	if len(visible) == 0 {
		return 0, 0
	}
	i := m.cursor
	if i >= len(visible) {
		i = len(visible) - 1
	}
	return i + 1, len(visible)
}

// MoveUp moves the selection up one entry
func (m Model) MoveUp() Model {
	if m.cursor > 0 {
		m.cursor--
	}
	return m
}

// MoveDown moves the selection down one entry
func (m Model) MoveDown() Model {
	if m.cursor < len(m.Visible())-1 {
		m.cursor++
	}
	return m
}

// GoTop moves the selection to the first entry
func (m Model) GoTop() Model {
	m.cursor = 0
	return m
}

// GoBottom moves the selection to the last entry
func (m Model) GoBottom() Model {
	if n := len(m.Visible()); n > 0 {
		m.cursor = n - 1
	}
	return m
}

// View renders the list
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Snippets"))
	b.WriteByte('\n')

	visible := m.Visible()
	if len(visible) == 0 {
		b.WriteString(m.styles.Faint.Render(" no matches"))
		return b.String()
	}

	selected := m.Selected()
	for _, name := range visible {
		label := name
		if m.iconFunc != nil {
			label = m.styles.Icon.Render(m.iconFunc(name)) + " " + name
		}
		if name == selected {
			b.WriteString(m.styles.Selected.Render("▸ " + label))
		} else {
			b.WriteString(m.styles.Item.Render("  " + label))
		}
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}
