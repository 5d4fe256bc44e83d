// internal/core/editor.go
package core

import (
	"github.com/ebb-editor/ebb/internal/event"
	"github.com/ebb-editor/ebb/internal/history"
	"github.com/ebb-editor/ebb/internal/logger"
	"github.com/ebb-editor/ebb/internal/mode"
	"github.com/ebb-editor/ebb/internal/rope"
	"github.com/ebb-editor/ebb/internal/selection"
	"github.com/ebb-editor/ebb/internal/text"
	"github.com/ebb-editor/ebb/internal/types"
)

// Editor owns one document: its rope, its history and the active
// selection. All mutation funnels through Apply on the app's editing
// goroutine; there is a single writer by construction, so no locking.
//
// Edits accumulate into a pending transaction between commit
// boundaries (mode exits, not keystrokes). CommitTransaction records
// the composed pending transaction against the snapshot taken at the
// previous boundary, so one undo step reverts one editing "gesture".
type Editor struct {
	doc  *rope.Rope
	hist *history.History
	sel  selection.Selection
	mode mode.Mode

	pending      text.Transaction
	committed    *rope.Rope // document state at the last commit boundary
	committedSel selection.Selection

	// Select-mode anchor; nil when no selection is active.
	anchor *types.Position

	eventManager *event.Manager

	// Viewport state, managed here so movement commands can keep the
	// cursor visible (the tui only reads it).
	ViewportY  int
	ViewportX  int
	viewWidth  int
	viewHeight int
	scrollOff  int
}

// NewEditor creates an editor over the given initial text.
func NewEditor(content string) *Editor {
	doc := rope.New(content)
	sel := selection.New()
	return &Editor{
		doc:          doc,
		hist:         history.New(),
		sel:          sel,
		mode:         mode.Normal,
		pending:      text.Identity(sel),
		committed:    doc.Clone(),
		committedSel: sel,
		scrollOff:    3,
	}
}

// SetEventManager wires the event bus for change/cursor notifications.
func (e *Editor) SetEventManager(mgr *event.Manager) { e.eventManager = mgr }

// SetScrollOff sets the number of context lines kept around the cursor.
func (e *Editor) SetScrollOff(n int) {
	if n >= 0 {
		e.scrollOff = n
	}
}

// Rope returns the document's text container.
func (e *Editor) Rope() *rope.Rope { return e.doc }

// History exposes the revision tree (status bar, tests).
func (e *Editor) History() *history.History { return e.hist }

// Selection returns the active selection.
func (e *Editor) Selection() selection.Selection { return e.sel }

// SetSelection replaces the active selection, re-clamped against the
// current document and mode so the head stays grapheme-aligned.
// Movement while no gesture is pending carries the commit boundary's
// selection along, so undo restores the cursor to where the next
// gesture actually began.
func (e *Editor) SetSelection(s selection.Selection) {
	e.sel = s.MoveTo(e.doc, s.Head.Col, s.Head.Line, e.mode)
	if e.pending.IsIdentity() {
		e.committedSel = e.sel
	}
	e.ScrollToCursor()
	e.dispatchCursorMoved()
}

// Mode returns the current input mode.
func (e *Editor) Mode() mode.Mode { return e.mode }

// SetMode switches modes. Leaving Insert or Replace is a commit
// boundary; entering Select anchors a selection at the head; leaving
// it drops the anchor. The head is re-clamped because Normal mode
// forbids resting past the end of line.
func (e *Editor) SetMode(m mode.Mode) {
	if m == e.mode {
		return
	}
	old := e.mode
	if old == mode.Insert || old == mode.Replace {
		e.CommitTransaction()
	}
	e.mode = m
	switch {
	case m == mode.Select:
		head := e.sel.Head
		e.anchor = &head
	case old == mode.Select:
		e.anchor = nil
	}
	e.sel = e.sel.MoveTo(e.doc, e.sel.Head.Col, e.sel.Head.Line, m)
	if e.pending.IsIdentity() {
		e.committedSel = e.sel
	}
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{Mode: m})
	}
}

// Anchor returns the Select-mode anchor position, if any.
func (e *Editor) Anchor() (types.Position, bool) {
	if e.anchor == nil {
		return types.Position{}, false
	}
	return *e.anchor, true
}

// SelectedByteRange returns the normalized [start, end) byte range of
// the active Select-mode selection. The grapheme under the later of
// head and anchor is included.
func (e *Editor) SelectedByteRange() (int, int, bool) {
	if e.anchor == nil {
		return 0, 0, false
	}
	a := selection.Selection{Head: *e.anchor, Sticky: e.anchor.Col}
	start := a.ByteOffset(e.doc)
	end := e.sel.ByteOffset(e.doc)
	if end < start {
		start, end = end, start
	}
	end = e.nextBoundary(end)
	return start, end, true
}

// Apply runs a transaction against the document, recomputes the
// selection from the new state and composes the transaction into the
// pending gesture. This is the single mutation entry point.
func (e *Editor) Apply(tx text.Transaction) {
	tx.Apply(e.doc)
	s := tx.Selection()
	e.sel = s.MoveTo(e.doc, s.Head.Col, s.Head.Line, e.mode)
	e.pending = e.pending.Compose(tx)
	e.ScrollToCursor()
	e.dispatchModified()
}

// CommitTransaction records the pending gesture in history and opens a
// new one. A pending identity (nothing changed since the last
// boundary) commits nothing.
func (e *Editor) CommitTransaction() {
	if e.pending.IsIdentity() {
		e.pending = text.Identity(e.sel)
		return
	}
	e.hist.Commit(e.pending.WithSelection(e.sel), e.committed, e.committedSel)
	e.committed = e.doc.Clone()
	e.committedSel = e.sel
	e.pending = text.Identity(e.sel)
	logger.Debugf("core: committed revision (depth %d)", e.hist.Depth())
}

// Undo reverts the last committed revision. Returns false when there
// is nothing to undo, which callers treat as a plain no-op.
func (e *Editor) Undo() bool {
	e.CommitTransaction()
	tx, ok := e.hist.Undo()
	if !ok {
		return false
	}
	e.restore(tx)
	return true
}

// Redo reapplies the most recently created child revision, if one
// exists. Returns false when there is nothing to redo.
func (e *Editor) Redo() bool {
	e.CommitTransaction()
	tx, ok := e.hist.Redo()
	if !ok {
		return false
	}
	e.restore(tx)
	return true
}

// restore applies a history transaction and resets the commit boundary
// to the restored state.
func (e *Editor) restore(tx text.Transaction) {
	tx.Apply(e.doc)
	s := tx.Selection()
	e.sel = s.MoveTo(e.doc, s.Head.Col, s.Head.Line, e.mode)
	e.committed = e.doc.Clone()
	e.committedSel = e.sel
	e.pending = text.Identity(e.sel)
	e.ScrollToCursor()
	e.dispatchModified()
}

func (e *Editor) dispatchModified() {
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{})
	}
	e.dispatchCursorMoved()
}

func (e *Editor) dispatchCursorMoved() {
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.sel.Head})
	}
}

// --- Viewport ---

// SetViewSize updates the cached text-area dimensions.
func (e *Editor) SetViewSize(width, height int) {
	e.viewWidth = width
	e.viewHeight = height
	if e.scrollOff*2 >= e.viewHeight && e.viewHeight > 0 {
		e.scrollOff = (e.viewHeight - 1) / 2
	}
	e.ScrollToCursor()
}

// ViewHeight returns the cached text-area height.
func (e *Editor) ViewHeight() int { return e.viewHeight }

// ScrollToCursor adjusts the viewport so the head stays visible with
// scrollOff lines of context.
func (e *Editor) ScrollToCursor() {
	if e.viewHeight <= 0 {
		return
	}
	line := e.sel.Head.Line
	if line < e.ViewportY+e.scrollOff {
		e.ViewportY = line - e.scrollOff
		if e.ViewportY < 0 {
			e.ViewportY = 0
		}
	} else if line >= e.ViewportY+e.viewHeight-e.scrollOff {
		e.ViewportY = line - e.viewHeight + e.scrollOff + 1
		if e.ViewportY < 0 {
			e.ViewportY = 0
		}
	}
	col := e.sel.Head.Col
	if col < e.ViewportX {
		e.ViewportX = col
	} else if e.viewWidth > 0 && col >= e.ViewportX+e.viewWidth {
		e.ViewportX = col - e.viewWidth + 1
	}
}
