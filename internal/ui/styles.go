// internal/ui/styles.go
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/snipview/internal/config"
	"github.com/nhath/snipview/internal/highlight"
)

var (
	// Colors (exported via getter functions below)
	textPrimary   lipgloss.Color
	textSecondary lipgloss.Color
	textFaint     lipgloss.Color

	accentColor    lipgloss.Color
	successColor   lipgloss.Color
	errorColor     lipgloss.Color
	highlightColor lipgloss.Color

	bgPrimary   lipgloss.Color
	bgSecondary lipgloss.Color
	cardBg      lipgloss.Color

	// Styles
	StatusBarStyle lipgloss.Style
	AppBadgeStyle  lipgloss.Style
	SnippetStyle   lipgloss.Style
	CopiedStyle    lipgloss.Style
	ErrorStyle     lipgloss.Style
	MetaStyle      lipgloss.Style
	PromptStyle    lipgloss.Style
	SidebarStyle   lipgloss.Style
	BodyStyle      lipgloss.Style
	PopupStyle     lipgloss.Style

	syntaxStyles highlight.Styles
)

// Color getter functions for use in components
func TextPrimary() lipgloss.Color    { return textPrimary }
func TextSecondary() lipgloss.Color  { return textSecondary }
func TextFaint() lipgloss.Color      { return textFaint }
func AccentColor() lipgloss.Color    { return accentColor }
func SuccessColor() lipgloss.Color   { return successColor }
func ErrorColor() lipgloss.Color     { return errorColor }
func HighlightColor() lipgloss.Color { return highlightColor }
func BgPrimary() lipgloss.Color      { return bgPrimary }
func BgSecondary() lipgloss.Color    { return bgSecondary }
func CardBg() lipgloss.Color         { return cardBg }

// SyntaxStyles returns the category -> style mapping for the renderer
func SyntaxStyles() highlight.Styles { return syntaxStyles }

// InitStyles initializes the global styles based on the provided configuration theme
func InitStyles(theme config.Theme) {
	textPrimary = lipgloss.Color(theme.TextPrimary)
	textSecondary = lipgloss.Color(theme.TextSecondary)
	textFaint = lipgloss.Color(theme.TextFaint)

	accentColor = lipgloss.Color(theme.Accent)
	successColor = lipgloss.Color(theme.Success)
	errorColor = lipgloss.Color(theme.Error)
	highlightColor = lipgloss.Color(theme.Highlight)

	bgPrimary = lipgloss.Color(theme.BgPrimary)
	bgSecondary = lipgloss.Color(theme.BgSecondary)
	cardBg = lipgloss.Color(theme.CardBg)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(textPrimary).
		Background(bgSecondary)

	AppBadgeStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(accentColor).
		Foreground(bgPrimary)

	SnippetStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(cardBg).
		Foreground(textPrimary)

	CopiedStyle = lipgloss.NewStyle().
		Background(successColor).
		Foreground(bgPrimary).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Background(errorColor).
		Foreground(textPrimary).
		Padding(0, 1)

	MetaStyle = lipgloss.NewStyle().
		Foreground(textFaint).
		Italic(true)

	PromptStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		MarginRight(1)

	SidebarStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(textFaint).
		Padding(0, 1)

	BodyStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(textFaint).
		Padding(0, 1)

	PopupStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(highlightColor).
		Padding(1, 2)

	syntaxStyles = highlight.Styles{
		Plain:      lipgloss.NewStyle().Foreground(textPrimary),
		Comment:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SyntaxComment)).Italic(true),
		String:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SyntaxString)),
		Annotation: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SyntaxAnnotation)),
		Keyword:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SyntaxKeyword)).Bold(true),
		Type:       lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SyntaxType)),
		ArgLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SyntaxArgLabel)),
		Gutter:     lipgloss.NewStyle().Foreground(textFaint),
	}
}
