package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainStyles() Styles {
	return Styles{}
}

func TestRenderSwiftGutterAndContent(t *testing.T) {
	r := NewRenderer(plainStyles())
	body := "import SwiftUI\n\nstruct Demo {}"
	out := r.Render("Demo.swift", body)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "1 │ ")
	assert.Contains(t, lines[0], "import SwiftUI")
	assert.Contains(t, lines[2], "3 │ ")
	assert.Contains(t, lines[2], "struct Demo {}")
}

func TestRenderGutterAlignment(t *testing.T) {
	r := NewRenderer(plainStyles())
	body := strings.Repeat("let x = 1\n", 11) // 12 lines incl. trailing empty
	out := r.Render("Wide.swift", body)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 12)
	// Two-digit gutter pads single digits
	assert.Contains(t, lines[0], " 1 │ ")
	assert.Contains(t, lines[11], "12 │ ")
}

func TestRenderCached(t *testing.T) {
	r := NewRenderer(plainStyles())
	first := r.Render("Demo.swift", "let a = 1")
	second := r.Render("Demo.swift", "let a = 1")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.cache.Len())
}

func TestRenderFallbackShell(t *testing.T) {
	r := NewRenderer(plainStyles())
	out := r.Render("Install.sh", "swift build && swift test\necho done")
	assert.Contains(t, out, "swift build")
	assert.Contains(t, out, "echo")
	assert.Contains(t, out, "1 │ ")
}

func TestRenderFallbackUnknownExtension(t *testing.T) {
	r := NewRenderer(plainStyles())
	out := r.Render("NOTES", "alpha\nbeta")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
}
