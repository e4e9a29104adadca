// internal/ui/commands.go
// tea.Cmd constructors for side effects (clipboard, copy log)
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/snipview/internal/clipboard"
	"github.com/nhath/snipview/internal/history"
)

// copyFeedbackDuration is how long the copied badge stays up after a copy
const copyFeedbackDuration = 2 * time.Second

// copyToClipboardCmd writes text to the system clipboard. When the user
// configured a copy command it is preferred over the native clipboard API.
func (m Model) copyToClipboardCmd(name, text string) tea.Cmd {
	cmdline := m.config.CopyCommand
	return func() tea.Msg {
		var err error
		if cmdline != "" {
			err = clipboard.WriteCommand(cmdline, text)
		} else {
			err = clipboard.Write(text)
		}
		return ClipboardCopiedMsg{Snippet: name, Text: text, Err: err}
	}
}

// copyFeedbackCmd schedules the feedback reset for the copy with the given
// sequence number. The timer is never cancelled; expiry messages from
// superseded copies are dropped in Update by comparing Seq.
func copyFeedbackCmd(seq int) tea.Cmd {
	return tea.Tick(copyFeedbackDuration, func(time.Time) tea.Msg {
		return CopyFeedbackExpiredMsg{Seq: seq}
	})
}

// logCopyCmd records a copy event in the copy log
func (m Model) logCopyCmd(name string, bytes int) tea.Cmd {
	store := m.store
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		err := store.Add(&history.Entry{Snippet: name, Bytes: bytes})
		return CopyLoggedMsg{Err: err}
	}
}

// loadCopyLogCmd fetches recent copy events for the history popup
func (m Model) loadCopyLogCmd() tea.Cmd {
	store := m.store
	if store == nil {
		return func() tea.Msg { return CopyLogLoadedMsg{} }
	}
	return func() tea.Msg {
		entries, err := store.Recent(100)
		return CopyLogLoadedMsg{Entries: entries, Err: err}
	}
}
