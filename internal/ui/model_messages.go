// internal/ui/model_messages.go
// Consolidated message types for the Bubble Tea Update cycle
package ui

import "github.com/nhath/snipview/internal/history"

// ClipboardCopiedMsg is sent when a clipboard copy completes
type ClipboardCopiedMsg struct {
	Snippet string
	Text    string
	Err     error
}

// CopyFeedbackExpiredMsg clears the copied badge; Seq identifies which
// copy scheduled it, so a stale timer never clobbers a newer copy's window
type CopyFeedbackExpiredMsg struct {
	Seq int
}

// CopyLoggedMsg is sent when the copy log write completes
type CopyLoggedMsg struct {
	Err error
}

// CopyLogLoadedMsg is sent when the copy log loads from SQLite
type CopyLogLoadedMsg struct {
	Entries []history.Entry
	Err     error
}
