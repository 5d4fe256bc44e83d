// internal/core/put.go
//
// Register put. Linewise text (from dd / yy) goes on its own line below
// or above the head; charwise text goes at or after the head.
package core

import "github.com/ebb-editor/ebb/internal/text"

// PutAfter inserts s after the head: below the current line when
// linewise, after the grapheme under the head otherwise.
func (e *Editor) PutAfter(s string, linewise bool) {
	if s == "" {
		return
	}
	if linewise {
		line := e.sel.Head.Line
		if line == e.doc.LineCount()-1 {
			off := e.doc.Len()
			e.change([]text.Edit{{Start: off, End: off, Text: "\n" + s}}, off+1)
			return
		}
		off := e.doc.LineToByte(line + 1)
		e.change([]text.Edit{{Start: off, End: off, Text: s + "\n"}}, off)
		return
	}
	off := e.sel.ByteOffset(e.doc)
	lineText := e.doc.Line(e.sel.Head.Line)
	if rel := off - e.doc.LineToByte(e.sel.Head.Line); rel < len(lineText) {
		off = e.nextBoundary(off)
	}
	e.change([]text.Edit{{Start: off, End: off, Text: s}}, off+len(s))
}

// PutBefore inserts s at the head: above the current line when
// linewise, at the head offset otherwise.
func (e *Editor) PutBefore(s string, linewise bool) {
	if s == "" {
		return
	}
	if linewise {
		off := e.doc.LineToByte(e.sel.Head.Line)
		e.change([]text.Edit{{Start: off, End: off, Text: s + "\n"}}, off)
		return
	}
	off := e.sel.ByteOffset(e.doc)
	e.change([]text.Edit{{Start: off, End: off, Text: s}}, off+len(s))
}

// CurrentLine returns the head's line text without its newline.
func (e *Editor) CurrentLine() string {
	return e.doc.Line(e.sel.Head.Line)
}
