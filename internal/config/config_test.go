// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/adrg/xdg"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Keys.Quit) == 0 || len(cfg.Keys.Copy) == 0 {
		t.Error("expected default key bindings")
	}
	if cfg.Theme.TextPrimary == "" || cfg.Theme.SyntaxKeyword == "" {
		t.Error("expected default theme colors")
	}
	if cfg.HistoryLimit <= 0 {
		t.Error("expected a positive history limit")
	}
}

func TestLoadCreatesAndRoundTrips(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	// First load writes defaults
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cfg.DefaultSnippet = "Toolbar.swift"
	cfg.CopyCommand = "wl-copy"
	cfg.Snippets = append(cfg.Snippets, SnippetEntry{Name: "Extra.swift", Body: "let x = 1\n"})
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.DefaultSnippet != "Toolbar.swift" {
		t.Errorf("default snippet not persisted: %q", loaded.DefaultSnippet)
	}
	if loaded.CopyCommand != "wl-copy" {
		t.Errorf("copy command not persisted: %q", loaded.CopyCommand)
	}
	if len(loaded.Snippets) != 1 || loaded.Snippets[0].Name != "Extra.swift" {
		t.Errorf("snippet extras not persisted: %+v", loaded.Snippets)
	}
}
