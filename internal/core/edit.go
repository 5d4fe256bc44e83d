// internal/core/edit.go
//
// Editing and movement commands. Every edit builds a sorted-disjoint
// edit list, turns it into a transaction and funnels it through
// Editor.Apply; commands never touch the rope directly.
package core

import (
	"github.com/ebb-editor/ebb/internal/grapheme"
	"github.com/ebb-editor/ebb/internal/mode"
	"github.com/ebb-editor/ebb/internal/selection"
	"github.com/ebb-editor/ebb/internal/text"
	"github.com/ebb-editor/ebb/internal/words"
)

// change applies the given edits and places the cursor at cursorByte
// in the post-edit document.
func (e *Editor) change(edits []text.Edit, cursorByte int) {
	if len(edits) == 0 {
		return
	}
	preview := e.doc.Clone()
	tx := text.Change(preview.Len(), e.sel, edits)
	tx.Apply(preview)
	after := selection.FromByteOffset(preview, cursorByte, e.mode)
	e.Apply(tx.WithSelection(after))
}

// InsertText inserts text at the head. Newlines split lines.
func (e *Editor) InsertText(s string) {
	if s == "" {
		return
	}
	off := e.sel.ByteOffset(e.doc)
	e.change([]text.Edit{{Start: off, End: off, Text: s}}, off+len(s))
}

// InsertRune inserts one rune; in Replace mode it overwrites the
// grapheme under the head instead (except at end of line, where
// Replace behaves like Insert).
func (e *Editor) InsertRune(r rune) {
	s := string(r)
	off := e.sel.ByteOffset(e.doc)
	end := off
	if e.mode == mode.Replace && r != '\n' {
		if next := e.nextBoundary(off); next > off && e.doc.Slice(off, next) != "\n" {
			end = next
		}
	}
	e.change([]text.Edit{{Start: off, End: end, Text: s}}, off+len(s))
}

// InsertNewline splits the line at the head.
func (e *Editor) InsertNewline() {
	e.InsertText("\n")
}

// DeleteBackward removes the grapheme before the head (or joins with
// the previous line at column zero). No-op at the very start.
func (e *Editor) DeleteBackward() {
	off := e.sel.ByteOffset(e.doc)
	if off == 0 {
		return
	}
	start := e.prevBoundary(off)
	e.change([]text.Edit{{Start: start, End: off}}, start)
}

// DeleteForward removes the grapheme under the head (or the newline at
// end of line). No-op at the very end.
func (e *Editor) DeleteForward() {
	off := e.sel.ByteOffset(e.doc)
	if off >= e.doc.Len() {
		return
	}
	end := e.nextBoundary(off)
	e.change([]text.Edit{{Start: off, End: end}}, off)
}

// DeleteByteRange removes [start, end) and leaves the head at start.
func (e *Editor) DeleteByteRange(start, end int) {
	if start >= end {
		return
	}
	e.change([]text.Edit{{Start: start, End: end}}, start)
}

// ReplaceByteRange replaces [start, end) with s, head after s.
func (e *Editor) ReplaceByteRange(start, end int, s string) {
	e.change([]text.Edit{{Start: start, End: end, Text: s}}, start+len(s))
}

// DeleteLine removes the head's whole line including its terminator
// (the preceding newline when deleting the last line). Returns the
// removed text so callers can yank it.
func (e *Editor) DeleteLine() string {
	line := e.sel.Head.Line
	start := e.doc.LineToByte(line)
	end := start + len(e.doc.Line(line))
	if line < e.doc.LineCount()-1 {
		end++ // trailing newline
	} else if start > 0 {
		start-- // last line: take the newline before it
	}
	removed := e.doc.Slice(start, end)
	e.DeleteByteRange(start, end)
	return removed
}

// --- Grapheme boundary helpers ---

// nextBoundary returns the byte offset one grapheme past off (or past
// the newline when off sits at end of line). Clamps at document end.
func (e *Editor) nextBoundary(off int) int {
	if off >= e.doc.Len() {
		return e.doc.Len()
	}
	line := e.doc.ByteToLine(off)
	rel := off - e.doc.LineToByte(line)
	lineText := e.doc.Line(line)
	if rel >= len(lineText) {
		return off + 1 // the newline
	}
	consumed := 0
	for _, cl := range grapheme.Clusters(lineText) {
		if consumed+cl.Size > rel {
			return off + (consumed + cl.Size - rel)
		}
		consumed += cl.Size
	}
	return off + 1
}

// prevBoundary returns the byte offset one grapheme before off (or
// before the newline when off sits at a line start). Clamps at zero.
func (e *Editor) prevBoundary(off int) int {
	if off <= 0 {
		return 0
	}
	line := e.doc.ByteToLine(off - 1)
	rel := off - e.doc.LineToByte(line)
	lineText := e.doc.Line(line)
	if rel > len(lineText) {
		return off - 1 // off sits just past the newline
	}
	prev := 0
	consumed := 0
	for _, cl := range grapheme.Clusters(lineText) {
		if consumed+cl.Size >= rel {
			break
		}
		prev = consumed + cl.Size
		consumed = prev
	}
	return e.doc.LineToByte(line) + prev
}

// --- Word / text-object queries ---

// WordRangeAt returns the word range containing (or starting at) the
// head, plus the absolute byte offsets of the range. ok is false on an
// empty line.
func (e *Editor) WordRangeAt(k selection.Kind) (rg words.Range, start, end int, ok bool) {
	lineText := e.doc.Line(e.sel.Head.Line)
	it := words.Forward(lineText)
	if k == selection.LongWordKind {
		it = words.ForwardLong(lineText)
	}
	base := e.doc.LineToByte(e.sel.Head.Line)
	for {
		r, more := it.Next()
		if !more {
			return words.Range{}, 0, 0, false
		}
		if e.sel.Head.Col <= r.End {
			return r, base + r.StartByte, base + r.EndByte, true
		}
	}
}

// QuoteRangeAt returns the quoted span containing the head for the
// given quote character, with absolute byte offsets.
func (e *Editor) QuoteRangeAt(quote rune) (rg words.Range, start, end int, ok bool) {
	lineText := e.doc.Line(e.sel.Head.Line)
	base := e.doc.LineToByte(e.sel.Head.Line)
	for _, r := range words.Quotes(lineText, quote) {
		if e.sel.Head.Col >= r.Start && e.sel.Head.Col <= r.End {
			return r, base + r.StartByte, base + r.EndByte, true
		}
	}
	return words.Range{}, 0, 0, false
}

// --- Movement commands ---

// MoveUp moves the head up one line.
func (e *Editor) MoveUp() { e.SetSelection(e.sel.Up(e.doc, e.mode)) }

// MoveDown moves the head down one line.
func (e *Editor) MoveDown() { e.SetSelection(e.sel.Down(e.doc, e.mode)) }

// MoveLeft moves the head left one grapheme.
func (e *Editor) MoveLeft() { e.SetSelection(e.sel.Left(e.doc, e.mode)) }

// MoveRight moves the head right one grapheme.
func (e *Editor) MoveRight() { e.SetSelection(e.sel.Right(e.doc, e.mode)) }

// MoveLineStart moves to column zero.
func (e *Editor) MoveLineStart() { e.SetSelection(e.sel.LineStart(e.doc, e.mode)) }

// MoveLineEnd moves to the last valid column of the line.
func (e *Editor) MoveLineEnd() { e.SetSelection(e.sel.LineEnd(e.doc, e.mode)) }

// MoveWordForward moves to the next word start (w / W).
func (e *Editor) MoveWordForward(k selection.Kind) {
	e.SetSelection(e.sel.NextWordStart(e.doc, e.mode, k))
}

// MoveWordEnd moves to the next word end (e / E).
func (e *Editor) MoveWordEnd(k selection.Kind) {
	e.SetSelection(e.sel.NextWordEnd(e.doc, e.mode, k))
}

// MoveWordBackward moves to the previous word start (b / B).
func (e *Editor) MoveWordBackward(k selection.Kind) {
	e.SetSelection(e.sel.PrevWordStart(e.doc, e.mode, k))
}

// MoveWordEndBackward moves to the previous word end (ge).
func (e *Editor) MoveWordEndBackward(k selection.Kind) {
	e.SetSelection(e.sel.PrevWordEnd(e.doc, e.mode, k))
}

// GotoLine jumps to a 0-based line, clamped into the document.
func (e *Editor) GotoLine(line int) {
	e.SetSelection(e.sel.MoveTo(e.doc, 0, line, e.mode))
}

// PageMove moves by whole view heights.
func (e *Editor) PageMove(pages int) {
	if e.viewHeight <= 0 {
		return
	}
	e.SetSelection(e.sel.MoveTo(e.doc, selection.UseSticky, e.sel.Head.Line+pages*e.viewHeight, e.mode))
}
