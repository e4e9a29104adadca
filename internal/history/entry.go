// internal/history/entry.go
package history

import "time"

// Entry records one clipboard copy of a snippet
type Entry struct {
	ID       int64
	Snippet  string
	Bytes    int
	CopiedAt time.Time
}

// CopiedAtFormatted returns the copy time for display
func (e Entry) CopiedAtFormatted() string {
	return e.CopiedAt.Local().Format("2006-01-02 15:04:05")
}
