// Package grapheme provides grapheme-cluster iteration, display-width
// and category utilities on top of rivo/uniseg. Everything that walks a
// line column-by-column (cursor movement, word segmentation, drawing)
// goes through this package so that all components agree on cluster
// boundaries and widths.
package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Category classifies a grapheme cluster for word segmentation.
type Category int

const (
	Whitespace  Category = iota
	Word                 // alphanumeric, '-' and '_'
	Punctuation          // Unicode punctuation and symbol classes
	Other
)

// Cluster is a single grapheme cluster of a line.
type Cluster struct {
	Text  string
	Width int // display columns occupied (>= 1 for any non-empty cluster)
	Size  int // byte length
}

// Clusters splits a line (without trailing newline) into grapheme clusters.
func Clusters(line string) []Cluster {
	if line == "" {
		return nil
	}
	clusters := make([]Cluster, 0, len(line))
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		text := gr.Str()
		clusters = append(clusters, Cluster{
			Text:  text,
			Width: gr.Width(),
			Size:  len(text),
		})
	}
	return clusters
}

// Width returns the display width of a whole line.
func Width(line string) int {
	return uniseg.StringWidth(line)
}

// CategoryOf classifies a cluster by its first rune.
func CategoryOf(cluster string) Category {
	r, _ := utf8.DecodeRuneInString(cluster)
	switch {
	case unicode.IsSpace(r):
		return Whitespace
	case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_':
		return Word
	case unicode.IsPunct(r) || unicode.IsSymbol(r):
		return Punctuation
	default:
		return Other
	}
}

// IsWhitespace reports whether every cluster of s is whitespace.
// An empty string counts as whitespace (an empty "word" has no content).
func IsWhitespace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
