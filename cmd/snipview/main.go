// cmd/snipview/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/snipview/internal/config"
	"github.com/nhath/snipview/internal/highlight"
	"github.com/nhath/snipview/internal/history"
	"github.com/nhath/snipview/internal/snippet"
	"github.com/nhath/snipview/internal/ui"
)

func main() {
	debug := flag.Bool("debug", false, "Enable debug logging to debug.log")
	flag.Parse()

	if *debug {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Printf("fatal: could not open debug log: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ui.InitStyles(cfg.Theme)

	// Built-in deck plus config extras
	table := snippet.Builtin()
	if len(cfg.Snippets) > 0 {
		extras := make([]snippet.Snippet, len(cfg.Snippets))
		for i, e := range cfg.Snippets {
			extras[i] = snippet.Snippet{Name: e.Name, Body: e.Body}
		}
		table = table.WithExtras(extras)
	}
	if cfg.DefaultSnippet != "" {
		table = table.WithDefault(cfg.DefaultSnippet)
	}

	renderer := highlight.NewRenderer(ui.SyntaxStyles())

	// The copy log is best-effort: run without it when the data dir is unusable
	store, err := history.NewStore(cfg.HistoryLimit)
	if err != nil {
		log.Printf("copy log disabled: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	model := ui.NewModel(cfg, table, renderer, store)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
