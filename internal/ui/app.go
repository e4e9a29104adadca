// internal/ui/app.go
// Update loop: message handling and key dispatch
package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	uitable "github.com/nhath/snipview/internal/ui/components/table"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m = m.resize()
		return m, nil

	case ClipboardCopiedMsg:
		if msg.Err != nil {
			m.errorMsg = fmt.Sprintf("Clipboard error: %v", msg.Err)
			log.Printf("clipboard write failed: %v", msg.Err)
			return m, nil
		}
		m.errorMsg = ""
		m.copied = true
		m.copySeq++
		return m, tea.Batch(
			copyFeedbackCmd(m.copySeq),
			m.logCopyCmd(msg.Snippet, len(msg.Text)),
		)

	case CopyFeedbackExpiredMsg:
		// Only the newest copy's timer governs the badge
		if msg.Seq == m.copySeq {
			m.copied = false
		}
		return m, nil

	case CopyLoggedMsg:
		if msg.Err != nil {
			log.Printf("copy log write failed: %v", msg.Err)
		}
		return m, nil

	case CopyLogLoadedMsg:
		if msg.Err != nil {
			m.errorMsg = fmt.Sprintf("History error: %v", msg.Err)
			return m, nil
		}
		m.historyTable = uitable.FromEntries(msg.Entries)
		m.showHistory = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey dispatches key presses by UI state
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Popups swallow input while open
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.showHistory {
		switch msg.String() {
		case "q", "esc":
			m.showHistory = false
			return m, nil
		}
		var cmd tea.Cmd
		m.historyTable, cmd = m.historyTable.Update(msg)
		return m, cmd
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	keys := m.config.Keys
	switch {
	case matchKey(msg, keys.Quit):
		return m, tea.Quit

	case matchKey(msg, keys.Up):
		m.list = m.list.MoveUp()
		return m.syncSelection(), nil

	case matchKey(msg, keys.Down):
		m.list = m.list.MoveDown()
		return m.syncSelection(), nil

	case matchKey(msg, keys.Top):
		m.list = m.list.GoTop()
		return m.syncSelection(), nil

	case matchKey(msg, keys.Bottom):
		m.list = m.list.GoBottom()
		return m.syncSelection(), nil

	case matchKey(msg, keys.Copy):
		s, ok := m.table.Get(m.active)
		if !ok {
			return m, nil
		}
		return m, m.copyToClipboardCmd(s.Name, s.Body)

	case matchKey(msg, keys.Filter):
		m.filtering = true
		m.filterInput.SetValue(m.list.Filter())
		m.filterInput.Focus()
		return m, textinput.Blink

	case matchKey(msg, keys.History):
		return m, m.loadCopyLogCmd()

	case matchKey(msg, keys.Help):
		m.showHelp = true
		return m, nil
	}

	// Everything else scrolls the body pane
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleFilterKey handles keys while the filter input is focused
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.list = m.list.SetFilter("")
		return m.syncSelection(), nil
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.list = m.list.SetFilter(m.filterInput.Value())
	return m.syncSelection(), cmd
}

// resize recomputes component dimensions from the window size
func (m Model) resize() Model {
	sidebar := sidebarWidth
	if m.width < sidebar*2 {
		sidebar = m.width / 3
	}
	m.list = m.list.SetWidth(sidebar)

	bodyWidth := m.width - sidebar - 6 // borders and padding
	bodyHeight := m.height - 4         // status bar and footer
	if bodyWidth < 10 {
		bodyWidth = 10
	}
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	m.viewport.Width = bodyWidth
	m.viewport.Height = bodyHeight
	return m
}
