// internal/types/position.go
package types

// Position represents a cursor or text position within the document.
// Line is the 0-based line index.
// Col is the 0-based display column within the line. Columns count
// terminal cells, not bytes or runes: a wide grapheme (CJK, emoji)
// occupies two cells. A valid Position always sits on a grapheme
// boundary of its line.
type Position struct {
	Line int
	Col  int // display column
}

// Before reports whether p is lexicographically before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}
