// Package rope provides the mutable text container the editing core
// operates on. Text is addressed by absolute byte offset; the structure
// also answers line-to-byte and byte-to-line queries, which the
// selection layer uses to bridge between transaction byte ranges and
// (column, line) cursor coordinates.
//
// The implementation stores one string per line without the trailing
// newline; the document text is the lines joined by "\n". Lines being
// immutable strings makes Clone a cheap slice copy, which the history
// layer relies on for pre-edit snapshots.
package rope

import (
	"fmt"
	"strings"
)

// Rope is a byte-addressed text container. The zero value is not
// usable; create instances with New.
type Rope struct {
	lines []string
}

// New creates a rope from the given text. An empty string yields a
// single empty line, the convention for a fresh document.
func New(text string) *Rope {
	return &Rope{lines: strings.Split(text, "\n")}
}

// String returns the full document text.
func (r *Rope) String() string {
	return strings.Join(r.lines, "\n")
}

// Len returns the total byte length of the document, counting one byte
// per line separator.
func (r *Rope) Len() int {
	n := len(r.lines) - 1 // newlines
	for _, l := range r.lines {
		n += len(l)
	}
	return n
}

// LineCount returns the number of lines. Always >= 1.
func (r *Rope) LineCount() int {
	return len(r.lines)
}

// Line returns line i without its trailing newline.
func (r *Rope) Line(i int) string {
	if i < 0 || i >= len(r.lines) {
		panic(fmt.Sprintf("rope: line index %d out of bounds [0,%d)", i, len(r.lines)))
	}
	return r.lines[i]
}

// LineToByte returns the byte offset of the first byte of line i.
func (r *Rope) LineToByte(i int) int {
	if i < 0 || i >= len(r.lines) {
		panic(fmt.Sprintf("rope: line index %d out of bounds [0,%d)", i, len(r.lines)))
	}
	off := 0
	for l := 0; l < i; l++ {
		off += len(r.lines[l]) + 1 // +1 for the newline
	}
	return off
}

// ByteToLine returns the line containing the byte at off. The newline
// terminating a line belongs to that line; off == Len() maps to the
// last line.
func (r *Rope) ByteToLine(off int) int {
	r.checkOffset(off)
	pos := 0
	for i, l := range r.lines {
		end := pos + len(l) // offset of the newline (or EOF) after line i
		if off <= end {
			return i
		}
		pos = end + 1
	}
	return len(r.lines) - 1
}

// Slice returns the text in the byte range [start, end).
func (r *Rope) Slice(start, end int) string {
	r.checkOffset(start)
	r.checkOffset(end)
	if start >= end {
		return ""
	}
	var sb strings.Builder
	sb.Grow(end - start)
	pos := 0
	for i, l := range r.lines {
		lineEnd := pos + len(l)
		if start < lineEnd && end > pos {
			from := max(start-pos, 0)
			to := min(end-pos, len(l))
			sb.WriteString(l[from:to])
		}
		// The newline after line i occupies offset lineEnd.
		if i < len(r.lines)-1 && start <= lineEnd && end > lineEnd {
			sb.WriteByte('\n')
		}
		pos = lineEnd + 1
		if pos > end {
			break
		}
	}
	return sb.String()
}

// Insert inserts text at byte offset off. The text may contain
// newlines, which split the line at the insertion point.
func (r *Rope) Insert(off int, text string) {
	if text == "" {
		return
	}
	r.checkOffset(off)
	line := r.ByteToLine(off)
	col := off - r.LineToByte(line)

	joined := r.lines[line][:col] + text + r.lines[line][col:]
	parts := strings.Split(joined, "\n")

	if len(parts) == 1 {
		r.lines[line] = parts[0]
		return
	}
	newLines := make([]string, 0, len(r.lines)+len(parts)-1)
	newLines = append(newLines, r.lines[:line]...)
	newLines = append(newLines, parts...)
	newLines = append(newLines, r.lines[line+1:]...)
	r.lines = newLines
}

// Delete removes the byte range [start, end). Deleting across a
// newline joins the surrounding lines.
func (r *Rope) Delete(start, end int) {
	r.checkOffset(start)
	r.checkOffset(end)
	if start >= end {
		return
	}
	startLine := r.ByteToLine(start)
	startCol := start - r.LineToByte(startLine)
	endLine := r.ByteToLine(end)
	endCol := end - r.LineToByte(endLine)

	// The newline terminating a line belongs to that line, so a range
	// ending exactly on a newline keeps it: the end offset then maps to
	// the end column of that same line and the break survives as the
	// boundary to the following line.
	head := r.lines[startLine][:startCol]
	tail := r.lines[endLine][endCol:]
	r.lines[startLine] = head + tail
	r.lines = append(r.lines[:startLine+1], r.lines[endLine+1:]...)
}

// Clone returns an independent snapshot of the rope. Lines are
// immutable strings, so only the slice header array is copied.
func (r *Rope) Clone() *Rope {
	lines := make([]string, len(r.lines))
	copy(lines, r.lines)
	return &Rope{lines: lines}
}

func (r *Rope) checkOffset(off int) {
	if off < 0 || off > r.Len() {
		panic(fmt.Sprintf("rope: byte offset %d out of bounds [0,%d]", off, r.Len()))
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
