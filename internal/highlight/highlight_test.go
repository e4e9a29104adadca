package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinFragments(frags []Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(f.Text)
	}
	return b.String()
}

func textsFor(frags []Fragment, cat Category) []string {
	var out []string
	for _, f := range frags {
		if f.Category == cat {
			out = append(out, f.Text)
		}
	}
	return out
}

func TestTokenizeCoverage(t *testing.T) {
	lines := []string{
		"import SwiftUI",
		"struct ContentView: View {",
		"    @State private var showDebug = true",
		`        DebugValue("Version", Bundle.main.appVersion)`,
		`    DebugBadge(icon: "ladybug.fill", label: "Debug")`,
		"} // end",
		`let s = "a \"quoted\" word"`,
		`let doc = """Hello"""`,
		`"""`,
		"   ",
		"()[]{}.,;",
		"no_категория ünïcode τext",
	}
	for _, line := range lines {
		frags := Tokenize(line)
		require.Equal(t, line, joinFragments(frags), "coverage broken for %q", line)
		for _, f := range frags {
			assert.NotEmpty(t, f.Text, "empty fragment in %q", line)
		}
	}
}

func TestTokenizeEmptyLine(t *testing.T) {
	assert.Nil(t, Tokenize(""))
}

func TestComment(t *testing.T) {
	frags := Tokenize("let x = 1 // trailing note")
	assert.Equal(t, []string{"// trailing note"}, textsFor(frags, Comment))

	frags = Tokenize("// whole line, even with \"quotes\" and func")
	require.Len(t, frags, 1)
	assert.Equal(t, Comment, frags[0].Category)
}

func TestStringLiteral(t *testing.T) {
	frags := Tokenize(`print("hello")`)
	assert.Equal(t, []string{`"hello"`}, textsFor(frags, String))

	frags = Tokenize(`let s = "say \"hi\" twice"`)
	assert.Equal(t, []string{`"say \"hi\" twice"`}, textsFor(frags, String))
}

func TestStringBeatsCommentInsideLiteral(t *testing.T) {
	frags := Tokenize(`let u = "http://example.com"`)
	assert.Equal(t, []string{`"http://example.com"`}, textsFor(frags, String))
	assert.Empty(t, textsFor(frags, Comment))
}

func TestKeywordWholeWordOnly(t *testing.T) {
	frags := Tokenize("func greet() {")
	assert.Equal(t, []string{"func"}, textsFor(frags, Keyword))

	frags = Tokenize("function greet() {")
	assert.Empty(t, textsFor(frags, Keyword))
}

func TestCapitalizedIdentifier(t *testing.T) {
	frags := Tokenize("let b = Bundle.main")
	assert.Equal(t, []string{"Bundle"}, textsFor(frags, Type))
}

func TestArgLabel(t *testing.T) {
	frags := Tokenize(`configure(icon: "gear")`)
	assert.Equal(t, []string{"icon:"}, textsFor(frags, ArgLabel))
}

func TestArgLabelLosesToCapitalizedIdentifier(t *testing.T) {
	// Both rules match at the same position; the earlier rule wins and the
	// colon falls through as plain text.
	frags := Tokenize("case View:")
	assert.Equal(t, []string{"View"}, textsFor(frags, Type))
	assert.Empty(t, textsFor(frags, ArgLabel))
}

func TestAnnotation(t *testing.T) {
	frags := Tokenize("@State private var count = 0")
	assert.Equal(t, []string{"@State"}, textsFor(frags, Annotation))
	assert.Equal(t, []string{"private", "var"}, textsFor(frags, Keyword))
}

func TestTripleQuotedSingleLine(t *testing.T) {
	frags := Tokenize(`let doc = """Hello"""`)
	assert.Equal(t, []string{`"""Hello"""`}, textsFor(frags, String))
}

func TestTripleQuoteOpenerStaysPerLine(t *testing.T) {
	// An unterminated """ on its own line tokenizes as an empty string
	// literal plus a dangling plain quote. Multi-line literals are not
	// joined across line breaks.
	frags := Tokenize(`"""`)
	require.Len(t, frags, 2)
	assert.Equal(t, Fragment{Text: `""`, Category: String}, frags[0])
	assert.Equal(t, Fragment{Text: `"`, Category: Plain}, frags[1])
}

func TestPlainFallthrough(t *testing.T) {
	frags := Tokenize("x + y * 2")
	require.Len(t, frags, 1)
	assert.Equal(t, Plain, frags[0].Category)
}

func TestCategoryNames(t *testing.T) {
	assert.Equal(t, "comment", Comment.String())
	assert.Equal(t, "plain", Plain.String())
	assert.Equal(t, "arg_label", ArgLabel.String())
}
