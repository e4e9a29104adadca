package snippetlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var names = []string{"Overlay.swift", "Toolbar.swift", "Controls.swift", "Install.sh"}

func TestSelectionNavigation(t *testing.T) {
	m := New(names)

	assert.Equal(t, "Overlay.swift", m.Selected())

	m = m.MoveDown()
	assert.Equal(t, "Toolbar.swift", m.Selected())

	m = m.GoBottom()
	assert.Equal(t, "Install.sh", m.Selected())

	// Clamped at the edges
	m = m.MoveDown()
	assert.Equal(t, "Install.sh", m.Selected())

	m = m.GoTop().MoveUp()
	assert.Equal(t, "Overlay.swift", m.Selected())
}

func TestSelectByName(t *testing.T) {
	m := New(names).Select("Controls.swift")
	assert.Equal(t, "Controls.swift", m.Selected())

	i, n := m.Index()
	assert.Equal(t, 3, i)
	assert.Equal(t, 4, n)
}

func TestFilter(t *testing.T) {
	m := New(names).SetFilter("swift")
	assert.Equal(t, []string{"Overlay.swift", "Toolbar.swift", "Controls.swift"}, m.Visible())

	// Case-insensitive
	m = m.SetFilter("TOOL")
	assert.Equal(t, []string{"Toolbar.swift"}, m.Visible())
	assert.Equal(t, "Toolbar.swift", m.Selected())
}

func TestFilterClampsCursor(t *testing.T) {
	m := New(names).GoBottom().SetFilter("Overlay")
	assert.Equal(t, "Overlay.swift", m.Selected())
}

func TestFilterNoMatches(t *testing.T) {
	m := New(names).SetFilter("zzz")
	assert.Empty(t, m.Visible())
	assert.Equal(t, "", m.Selected())

	i, n := m.Index()
	assert.Equal(t, 0, i)
	assert.Equal(t, 0, n)
}
