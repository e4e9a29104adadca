// Package highlight tokenizes Swift source lines into styled fragments.
//
// The tokenizer works on one line at a time and guarantees that the
// fragments it produces are ordered, non-overlapping, and cover the line
// exactly: concatenating their text reproduces the input byte for byte.
// Anything no rule claims falls through as a plain fragment.
package highlight

import "regexp"

// Category classifies a fragment for display styling
type Category int

const (
	Plain Category = iota
	Comment
	String
	Annotation
	Keyword
	Type
	ArgLabel
)

// String returns a short name for the category
func (c Category) String() string {
	switch c {
	case Comment:
		return "comment"
	case String:
		return "string"
	case Annotation:
		return "annotation"
	case Keyword:
		return "keyword"
	case Type:
		return "type"
	case ArgLabel:
		return "arg_label"
	default:
		return "plain"
	}
}

// Fragment is a contiguous substring of a line tagged with one category
type Fragment struct {
	Text     string
	Category Category
}

// swiftKeywords is the closed set of reserved words the classifier knows.
// All lowercase, so the set can never collide with the capitalized
// identifier rule.
const swiftKeywords = `import|struct|class|enum|protocol|extension|func|var|let|` +
	`if|else|guard|return|switch|case|default|for|in|while|` +
	`some|static|private|public|internal|init|self|try|true|false|nil`

type rule struct {
	category Category
	pattern  *regexp.Regexp
}

// Rules are evaluated leftmost-match-first; ties at the same start
// position go to the earlier rule.
var rules = []rule{
	{Comment, regexp.MustCompile(`//.*`)},
	{String, regexp.MustCompile(`"""(?s:.*?)"""|"(?:\\.|[^"\\])*"`)},
	{Annotation, regexp.MustCompile(`@\w+`)},
	{Keyword, regexp.MustCompile(`\b(?:` + swiftKeywords + `)\b`)},
	{Type, regexp.MustCompile(`\b[A-Z]\w*\b`)},
	{ArgLabel, regexp.MustCompile(`\b[A-Za-z_]\w*:`)},
}

// Tokenize splits one line of Swift source into classified fragments.
// The line must not contain a newline. An empty line yields no fragments.
//
// Tokenization is deliberately per line: a triple-quoted literal spanning
// several lines is not recognized as one token across the break. The
// shipped decks are short static samples and the per-line output is the
// behavior the rendered pages have always shown.
func Tokenize(line string) []Fragment {
	if line == "" {
		return nil
	}

	var frags []Fragment
	rest := line
	for len(rest) > 0 {
		best := -1
		var loc []int
		for i, r := range rules {
			m := r.pattern.FindStringIndex(rest)
			if m == nil {
				continue
			}
			if best == -1 || m[0] < loc[0] {
				best, loc = i, m
			}
		}
		if best == -1 {
			frags = append(frags, Fragment{Text: rest, Category: Plain})
			break
		}
		if loc[0] > 0 {
			frags = append(frags, Fragment{Text: rest[:loc[0]], Category: Plain})
		}
		frags = append(frags, Fragment{Text: rest[loc[0]:loc[1]], Category: rules[best].category})
		rest = rest[loc[1]:]
	}
	return frags
}
