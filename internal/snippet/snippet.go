// Package snippet holds the static snippet deck shown by the browser.
// The built-in deck is compiled in; user extras from the config file are
// appended at startup. A Table is immutable once built.
package snippet

import (
	"embed"
	"fmt"
)

//go:embed assets
var assets embed.FS

// builtinOrder fixes the display order of the embedded deck.
// The first entry is the default selection.
var builtinOrder = []string{
	"Overlay.swift",
	"Toolbar.swift",
	"Controls.swift",
	"Actions.swift",
	"Install.sh",
}

// Snippet is a named, static block of multi-line source text
type Snippet struct {
	Name string
	Body string
}

// Table is an ordered, immutable name -> snippet mapping
type Table struct {
	names  []string
	byName map[string]Snippet
	def    string
}

// Builtin returns the embedded snippet deck
func Builtin() *Table {
	t := &Table{byName: make(map[string]Snippet)}
	for _, name := range builtinOrder {
		body, err := assets.ReadFile("assets/" + name)
		if err != nil {
			// Embedded files are fixed at compile time; a missing one is a
			// build defect, not a runtime condition.
			panic(fmt.Sprintf("snippet: missing embedded asset %q: %v", name, err))
		}
		t.names = append(t.names, name)
		t.byName[name] = Snippet{Name: name, Body: string(body)}
	}
	t.def = t.names[0]
	return t
}

// WithExtras returns a new table with extra snippets appended.
// An extra whose name collides with an existing snippet replaces its body
// but keeps the original position.
func (t *Table) WithExtras(extras []Snippet) *Table {
	out := &Table{
		names:  append([]string(nil), t.names...),
		byName: make(map[string]Snippet, len(t.byName)+len(extras)),
		def:    t.def,
	}
	for k, v := range t.byName {
		out.byName[k] = v
	}
	for _, e := range extras {
		if e.Name == "" {
			continue
		}
		if _, exists := out.byName[e.Name]; !exists {
			out.names = append(out.names, e.Name)
		}
		out.byName[e.Name] = e
	}
	return out
}

// WithDefault returns a new table with the given default selection.
// Unknown names leave the default unchanged.
func (t *Table) WithDefault(name string) *Table {
	if _, ok := t.byName[name]; !ok {
		return t
	}
	out := *t
	out.def = name
	return &out
}

// Names returns the snippet names in display order
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Get looks up a snippet by name
func (t *Table) Get(name string) (Snippet, bool) {
	s, ok := t.byName[name]
	return s, ok
}

// Default returns the name of the initially selected snippet
func (t *Table) Default() string {
	return t.def
}

// Len returns the number of snippets in the table
func (t *Table) Len() int {
	return len(t.names)
}
