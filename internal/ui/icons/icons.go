package icons

import "strings"

const (
	// File type icons (Nerd Font)
	IconSwift   = "󰛥"
	IconShell   = ""
	IconGeneric = ""

	// Utility Icons
	IconSuccess   = "✓"
	IconError     = "⚠"
	IconSelect    = "▸"
	IconBullet    = "•"
	IconSeparator = "  •  "
)

func GetFileIcon(name string) string {
	switch {
	case strings.HasSuffix(name, ".swift"):
		return IconSwift
	case strings.HasSuffix(name, ".sh"):
		return IconShell
	default:
		return IconGeneric
	}
}
