// internal/ui/model.go
// Root Model struct, constructor, and Init
package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	bbtable "github.com/evertras/bubble-table/table"

	"github.com/nhath/snipview/internal/config"
	"github.com/nhath/snipview/internal/highlight"
	"github.com/nhath/snipview/internal/history"
	"github.com/nhath/snipview/internal/snippet"
	"github.com/nhath/snipview/internal/ui/components/snippetlist"
	"github.com/nhath/snipview/internal/ui/icons"
)

// Model is the root Bubble Tea model
type Model struct {
	// Core state
	width, height int
	config        *config.Config
	table         *snippet.Table
	renderer      *highlight.Renderer
	store         *history.Store // nil when the data dir is unusable

	// Components
	list     snippetlist.Model
	viewport viewport.Model

	// Selection
	active string // name of the active snippet; always a valid table key

	// Copy feedback
	copied  bool
	copySeq int // invalidates stale feedback timers

	// Filter
	filtering   bool
	filterInput textinput.Model

	// Popups
	showHistory  bool
	historyTable bbtable.Model
	showHelp     bool

	// Status
	errorMsg string
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, table *snippet.Table, renderer *highlight.Renderer, store *history.Store) Model {
	fi := textinput.New()
	fi.Prompt = "/ "
	fi.Placeholder = "Filter snippets..."
	fi.CharLimit = 64
	fi.Width = 24

	vp := viewport.New(80, 20)

	list := snippetlist.New(table.Names()).
		SetIconFunc(icons.GetFileIcon).
		SetStyles(snippetlist.Styles{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(AccentColor()),
			Item:     lipgloss.NewStyle().PaddingLeft(1).Foreground(TextPrimary()),
			Selected: lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(SuccessColor()),
			Icon:     lipgloss.NewStyle().Foreground(TextSecondary()),
			Faint:    lipgloss.NewStyle().Foreground(TextFaint()),
		}).
		Select(table.Default())

	m := Model{
		config:      cfg,
		table:       table,
		renderer:    renderer,
		store:       store,
		list:        list,
		viewport:    vp,
		active:      table.Default(),
		filterInput: fi,
	}
	m.refreshViewport()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Active returns the name of the active snippet
func (m Model) Active() string {
	return m.active
}

// Copied reports whether a copy happened within the feedback window
func (m Model) Copied() bool {
	return m.copied
}

// refreshViewport re-renders the active snippet into the body pane
func (m *Model) refreshViewport() {
	s, ok := m.table.Get(m.active)
	if !ok {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.renderer.Render(s.Name, s.Body))
}

// syncSelection adopts the list cursor as the active snippet. An empty
// filtered view leaves the previous selection active.
func (m Model) syncSelection() Model {
	if name := m.list.Selected(); name != "" && name != m.active {
		m.active = name
		m.refreshViewport()
		m.viewport.GotoTop()
	}
	return m
}
