// internal/modehandler/select_mode.go
package modehandler

import (
	"github.com/ebb-editor/ebb/internal/input"
	"github.com/ebb-editor/ebb/internal/mode"
	"github.com/ebb-editor/ebb/internal/selection"
)

// handleActionSelect handles keys in Select mode. Motions move the head
// while the anchor stays put; d/x/y act on the anchored span.
func (mh *ModeHandler) handleActionSelect(ae input.ActionEvent) bool {
	if mh.pending != 0 {
		p := mh.pending
		mh.pending = 0
		if p == 'g' && ae.Action == input.ActionInsertRune {
			switch ae.Rune {
			case 'e':
				mh.editor.MoveWordEndBackward(selection.WordKind)
				return true
			case 'E':
				mh.editor.MoveWordEndBackward(selection.LongWordKind)
				return true
			}
		}
		return false
	}

	switch ae.Action {
	case input.ActionEscape:
		mh.editor.SetMode(mode.Normal)
		return true

	case input.ActionMoveUp, input.ActionMoveDown, input.ActionMoveLeft, input.ActionMoveRight,
		input.ActionMovePageUp, input.ActionMovePageDown, input.ActionMoveHome, input.ActionMoveEnd:
		return mh.handleMotionAction(ae.Action)

	case input.ActionDeleteCharForward:
		return mh.deleteSelection()

	case input.ActionInsertRune:
		return mh.handleSelectRune(ae.Rune)
	}
	return false
}

func (mh *ModeHandler) handleSelectRune(r rune) bool {
	if mh.handleMotionRune(r) {
		return true
	}

	switch r {
	case 'v':
		mh.editor.SetMode(mode.Normal)
	case 'd', 'x':
		return mh.deleteSelection()
	case 'y':
		start, end, ok := mh.editor.SelectedByteRange()
		if !ok {
			return false
		}
		mh.clipboard.Yank(mh.editor.Rope().Slice(start, end), false)
		mh.editor.SetSelection(selection.FromByteOffset(mh.editor.Rope(), start, mh.editor.Mode()))
		mh.editor.SetMode(mode.Normal)
		mh.statusBar.SetTemporaryMessage("Selection yanked")
	default:
		return false
	}
	return true
}

// deleteSelection yanks and removes the anchored span, then returns to
// Normal mode with the head at the span start.
func (mh *ModeHandler) deleteSelection() bool {
	start, end, ok := mh.editor.SelectedByteRange()
	if !ok || start >= end {
		mh.editor.SetMode(mode.Normal)
		return true
	}
	mh.clipboard.Yank(mh.editor.Rope().Slice(start, end), false)
	mh.editor.DeleteByteRange(start, end)
	mh.editor.SetMode(mode.Normal)
	mh.editor.CommitTransaction()
	return true
}
