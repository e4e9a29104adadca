// internal/highlight/render.go
// ANSI rendering of snippet bodies with a line-number gutter.
package highlight

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Styles maps fragment categories (plus the gutter) to lipgloss styles
type Styles struct {
	Plain      lipgloss.Style
	Comment    lipgloss.Style
	String     lipgloss.Style
	Annotation lipgloss.Style
	Keyword    lipgloss.Style
	Type       lipgloss.Style
	ArgLabel   lipgloss.Style
	Gutter     lipgloss.Style
}

func (s Styles) forCategory(c Category) lipgloss.Style {
	switch c {
	case Comment:
		return s.Comment
	case String:
		return s.String
	case Annotation:
		return s.Annotation
	case Keyword:
		return s.Keyword
	case Type:
		return s.Type
	case ArgLabel:
		return s.ArgLabel
	default:
		return s.Plain
	}
}

const cacheSize = 64

// Renderer renders snippet bodies to styled terminal text. Rendered output
// is cached per snippet name; bodies are static for the process lifetime.
type Renderer struct {
	styles Styles
	cache  *lru.Cache[string, string]
}

// NewRenderer creates a renderer with the given category styles
func NewRenderer(styles Styles) *Renderer {
	cache, _ := lru.New[string, string](cacheSize)
	return &Renderer{styles: styles, cache: cache}
}

// Render returns the highlighted body with a line-number gutter.
// Swift sources go through the fragment tokenizer; anything else falls
// back to a chroma lexer picked from the snippet name, or plain text.
func (r *Renderer) Render(name, body string) string {
	if out, ok := r.cache.Get(name); ok {
		return out
	}

	var lines []string
	if strings.HasSuffix(name, ".swift") {
		lines = r.swiftLines(body)
	} else {
		lines = r.chromaLines(name, body)
	}

	out := r.withGutter(lines)
	r.cache.Add(name, out)
	return out
}

func (r *Renderer) swiftLines(body string) []string {
	raw := strings.Split(body, "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		var b strings.Builder
		for _, frag := range Tokenize(line) {
			b.WriteString(r.styles.forCategory(frag.Category).Render(frag.Text))
		}
		lines[i] = b.String()
	}
	return lines
}

func (r *Renderer) chromaLines(name, body string) []string {
	lexer := lexers.Match(name)
	if lexer == nil {
		return strings.Split(body, "\n")
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, body)
	if err != nil {
		return strings.Split(body, "\n")
	}

	formatter := formatters.Get("terminal256")
	style := chromastyles.Get("nord")
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, it); err != nil {
		return strings.Split(body, "\n")
	}
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func (r *Renderer) withGutter(lines []string) string {
	width := len(fmt.Sprint(len(lines)))
	var b strings.Builder
	for i, line := range lines {
		b.WriteString(r.styles.Gutter.Render(fmt.Sprintf("%*d │ ", width, i+1)))
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
