// internal/config/config.go
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Config represents the application configuration
type Config struct {
	DefaultSnippet string         `toml:"default_snippet"`
	CopyCommand    string         `toml:"copy_command"`
	HistoryLimit   int            `toml:"history_limit"`
	Snippets       []SnippetEntry `toml:"snippets"`
	Theme          Theme          `toml:"theme_colors"`
	Keys           KeyMap         `toml:"keys"`
}

// SnippetEntry is a user-defined snippet appended to the built-in deck
type SnippetEntry struct {
	Name string `toml:"name"`
	Body string `toml:"body"`
}

// Theme defines the color palette
type Theme struct {
	TextPrimary   string `toml:"text_primary"`
	TextSecondary string `toml:"text_secondary"`
	TextFaint     string `toml:"text_faint"`
	Accent        string `toml:"accent"`
	Success       string `toml:"success"`
	Error         string `toml:"error"`
	Highlight     string `toml:"highlight"`
	BgPrimary     string `toml:"bg_primary"`
	BgSecondary   string `toml:"bg_secondary"`
	CardBg        string `toml:"card_bg"`

	// Syntax colors; plain text renders with TextPrimary
	SyntaxComment    string `toml:"syntax_comment"`
	SyntaxString     string `toml:"syntax_string"`
	SyntaxAnnotation string `toml:"syntax_annotation"`
	SyntaxKeyword    string `toml:"syntax_keyword"`
	SyntaxType       string `toml:"syntax_type"`
	SyntaxArgLabel   string `toml:"syntax_arg_label"`
}

// KeyMap defines key bindings
type KeyMap struct {
	Quit    []string `toml:"quit"`
	Up      []string `toml:"up"`
	Down    []string `toml:"down"`
	Top     []string `toml:"top"`
	Bottom  []string `toml:"bottom"`
	Copy    []string `toml:"copy"`
	Filter  []string `toml:"filter"`
	History []string `toml:"history"`
	Help    []string `toml:"help"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		DefaultSnippet: "",
		CopyCommand:    "",
		HistoryLimit:   200,
		Snippets:       []SnippetEntry{},
		Theme: Theme{
			// Nord Theme Defaults
			TextPrimary:   "#D8DEE9",
			TextSecondary: "#81A1C1",
			TextFaint:     "#4C566A",
			Accent:        "#88C0D0",
			Success:       "#A3BE8C",
			Error:         "#BF616A",
			Highlight:     "#8FBCBB",
			BgPrimary:     "#2E3440",
			BgSecondary:   "#3B4252",
			CardBg:        "#434C5E",

			SyntaxComment:    "#616E88",
			SyntaxString:     "#A3BE8C",
			SyntaxAnnotation: "#D08770",
			SyntaxKeyword:    "#81A1C1",
			SyntaxType:       "#8FBCBB",
			SyntaxArgLabel:   "#B48EAD",
		},
		Keys: KeyMap{
			Quit:    []string{"q", "ctrl+c"},
			Up:      []string{"k", "up"},
			Down:    []string{"j", "down"},
			Top:     []string{"g", "home"},
			Bottom:  []string{"G", "end"},
			Copy:    []string{"y", "c"},
			Filter:  []string{"/"},
			History: []string{"h"},
			Help:    []string{"?"},
		},
	}
}

// ConfigPath returns the XDG-compliant config file path
func ConfigPath() (string, error) {
	return xdg.ConfigFile("snipview/config.toml")
}

// Load loads the config from disk or creates default
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// First run: create default
		cfg := DefaultConfig()
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	// Populate defaults for missing fields (migration)
	defaults := DefaultConfig()
	updated := false

	if cfg.Theme.TextPrimary == "" {
		cfg.Theme = defaults.Theme
		updated = true
	}
	if cfg.Theme.SyntaxKeyword == "" {
		// Older config without syntax colors
		cfg.Theme.SyntaxComment = defaults.Theme.SyntaxComment
		cfg.Theme.SyntaxString = defaults.Theme.SyntaxString
		cfg.Theme.SyntaxAnnotation = defaults.Theme.SyntaxAnnotation
		cfg.Theme.SyntaxKeyword = defaults.Theme.SyntaxKeyword
		cfg.Theme.SyntaxType = defaults.Theme.SyntaxType
		cfg.Theme.SyntaxArgLabel = defaults.Theme.SyntaxArgLabel
		updated = true
	}
	if len(cfg.Keys.Quit) == 0 {
		cfg.Keys = defaults.Keys
		updated = true
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaults.HistoryLimit
		updated = true
	}

	if updated {
		// Persist backfilled defaults so the user can see and edit them.
		// Proceed with in-memory values even if the save fails.
		_ = cfg.Save()
	}

	return &cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
