// internal/ui/model_helpers.go
// Small helper functions used across the UI layer
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// sidebarWidth is the preferred width of the snippet list pane
const sidebarWidth = 28

// matchKey returns true if the key message matches any of the provided key strings
func matchKey(msg tea.KeyMsg, keys []string) bool {
	keyStr := msg.String()
	for _, k := range keys {
		if k == keyStr {
			return true
		}
	}
	return false
}

// limitString truncates s to maxLen with an ellipsis
func limitString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
