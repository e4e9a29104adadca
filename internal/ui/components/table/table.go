// Package table builds the copy-log table shown in the history popup.
package table

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	bbtable "github.com/evertras/bubble-table/table"

	"github.com/nhath/snipview/internal/history"
)

// Nord colors
const (
	ColorForeground = "#D8DEE9"
	ColorTeal       = "#8FBCBB"
	ColorGreen      = "#A3BE8C"
	ColorYellow     = "#EBCB8B"
	ColorComment    = "#4C566A"
)

// New creates a new bubble-table with Nord theme (no background)
func New(cols []bbtable.Column) bbtable.Model {
	return bbtable.New(cols).
		WithBaseStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorForeground))).
		HeaderStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorTeal)).
			Bold(true)).
		HighlightStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGreen)).
			Bold(true)).
		Focused(true).
		BorderRounded()
}

// FromEntries builds the copy-log table from history entries
func FromEntries(entries []history.Entry) bbtable.Model {
	nameWidth := len("Snippet")
	for _, e := range entries {
		if len(e.Snippet) > nameWidth {
			nameWidth = len(e.Snippet)
		}
	}

	cols := []bbtable.Column{
		bbtable.NewColumn("Copied", "Copied", 21),
		bbtable.NewColumn("Snippet", "Snippet", nameWidth+2),
		bbtable.NewColumn("Bytes", "Bytes", 7),
	}

	var rows []bbtable.Row
	for _, e := range entries {
		rows = append(rows, bbtable.NewRow(bbtable.RowData{
			"Copied": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorComment)).Render(e.CopiedAtFormatted()),
			"Snippet": bbtable.NewStyledCell(e.Snippet,
				lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow))),
			"Bytes": fmt.Sprintf("%d", e.Bytes),
		}))
	}

	return New(cols).
		WithRows(rows).
		WithPageSize(15).
		WithStaticFooter("Press 'q' to close")
}
