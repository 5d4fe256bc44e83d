// Package words segments a single line into word, long-word (WORD) and
// quoted-span ranges. Ranges are maximal runs of same-category
// graphemes; movement commands iterate them to find boundaries and
// delete/change commands use them as text-object targets.
package words

import (
	"github.com/ebb-editor/ebb/internal/grapheme"
)

// Range is a maximal run of same-category graphemes on one line.
// Start and End are the display columns of the first cell of the
// first and last grapheme in the run (both forward-facing, so End is
// not an exclusive bound). StartByte and EndByte delimit the run's
// bytes within the line, EndByte exclusive.
type Range struct {
	Start     int
	End       int
	StartByte int
	EndByte   int
}

// Text returns the range's text within line.
func (rg Range) Text(line string) string {
	return line[rg.StartByte:rg.EndByte]
}

// IsBlank reports whether the range contains only whitespace. Blank
// ranges are skipped as movement targets but remain valid
// delete/change targets.
func (rg Range) IsBlank(line string) bool {
	return grapheme.IsWhitespace(rg.Text(line))
}

// annotated is a grapheme cluster tagged with its line position.
type annotated struct {
	text     string
	col      int
	byteOff  int
	width    int
	size     int
	category grapheme.Category
}

// annotate walks the line once, attaching column and byte positions to
// every grapheme cluster.
func annotate(line string) []annotated {
	clusters := grapheme.Clusters(line)
	out := make([]annotated, len(clusters))
	col, off := 0, 0
	for i, cl := range clusters {
		out[i] = annotated{
			text:     cl.Text,
			col:      col,
			byteOff:  off,
			width:    cl.Width,
			size:     cl.Size,
			category: grapheme.CategoryOf(cl.Text),
		}
		col += cl.Width
		off += cl.Size
	}
	return out
}

// Iter yields the ranges of one line. Forward iterators yield in line
// order; backward iterators yield in reverse discovery order with
// columns still forward-facing.
type Iter struct {
	clusters []annotated
	idx      int
	reverse  bool
	long     bool
}

// Forward iterates word ranges from the start of the line.
func Forward(line string) *Iter {
	return &Iter{clusters: annotate(line)}
}

// Backward iterates word ranges from the end of the line.
func Backward(line string) *Iter {
	it := &Iter{clusters: annotate(line), reverse: true}
	it.idx = len(it.clusters) - 1
	return it
}

// ForwardLong iterates WORD ranges: the only boundary is whitespace
// versus non-whitespace, so word and punctuation runs merge.
func ForwardLong(line string) *Iter {
	return &Iter{clusters: annotate(line), long: true}
}

// BackwardLong iterates WORD ranges from the end of the line.
func BackwardLong(line string) *Iter {
	it := &Iter{clusters: annotate(line), reverse: true, long: true}
	it.idx = len(it.clusters) - 1
	return it
}

// boundary reports whether two categories belong to different groups
// under the iterator's segmentation rules.
func (it *Iter) boundary(a, b grapheme.Category) bool {
	if it.long {
		return (a == grapheme.Whitespace) != (b == grapheme.Whitespace)
	}
	return a != b
}

// Next returns the next range, or ok=false when the line is exhausted.
// End-of-line always closes the final group.
func (it *Iter) Next() (Range, bool) {
	if it.reverse {
		return it.nextBackward()
	}
	return it.nextForward()
}

func (it *Iter) nextForward() (Range, bool) {
	if it.idx >= len(it.clusters) {
		return Range{}, false
	}
	first := it.clusters[it.idx]
	last := first
	it.idx++
	for it.idx < len(it.clusters) {
		c := it.clusters[it.idx]
		if it.boundary(last.category, c.category) {
			break
		}
		last = c
		it.idx++
	}
	return Range{
		Start:     first.col,
		End:       last.col,
		StartByte: first.byteOff,
		EndByte:   last.byteOff + last.size,
	}, true
}

func (it *Iter) nextBackward() (Range, bool) {
	if it.idx < 0 {
		return Range{}, false
	}
	last := it.clusters[it.idx]
	first := last
	it.idx--
	for it.idx >= 0 {
		c := it.clusters[it.idx]
		if it.boundary(c.category, first.category) {
			break
		}
		first = c
		it.idx--
	}
	return Range{
		Start:     first.col,
		End:       last.col,
		StartByte: first.byteOff,
		EndByte:   last.byteOff + last.size,
	}, true
}

// Quotes returns the quoted spans of a line for the given quote
// character. A single forward pass pairs each opening quote with the
// next occurrence; an unterminated trailing quote produces no range.
// Ranges include the quote characters themselves.
func Quotes(line string, quote rune) []Range {
	var ranges []Range
	var open *annotated
	for _, c := range annotate(line) {
		c := c
		if c.text != string(quote) {
			continue
		}
		if open == nil {
			open = &c
			continue
		}
		ranges = append(ranges, Range{
			Start:     open.col,
			End:       c.col,
			StartByte: open.byteOff,
			EndByte:   c.byteOff + c.size,
		})
		open = nil
	}
	return ranges
}

// All collects every range an iterator yields. Convenience for
// text-object queries that need the whole line segmented.
func All(it *Iter) []Range {
	var out []Range
	for {
		rg, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, rg)
	}
}
