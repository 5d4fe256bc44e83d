// internal/modehandler/motion.go
package modehandler

import (
	"github.com/ebb-editor/ebb/internal/input"
	"github.com/ebb-editor/ebb/internal/selection"
)

// handleMotionAction runs special-key motions shared by every mode.
func (mh *ModeHandler) handleMotionAction(a input.Action) bool {
	switch a {
	case input.ActionMoveUp:
		mh.editor.MoveUp()
	case input.ActionMoveDown:
		mh.editor.MoveDown()
	case input.ActionMoveLeft:
		mh.editor.MoveLeft()
	case input.ActionMoveRight:
		mh.editor.MoveRight()
	case input.ActionMovePageUp:
		mh.editor.PageMove(-1)
	case input.ActionMovePageDown:
		mh.editor.PageMove(1)
	case input.ActionMoveHome:
		mh.editor.MoveLineStart()
	case input.ActionMoveEnd:
		mh.editor.MoveLineEnd()
	default:
		return false
	}
	return true
}

// handleMotionRune runs rune motions shared by Normal and Select mode.
// 'g' arms a pending sequence (ge / gE) resolved by the caller.
func (mh *ModeHandler) handleMotionRune(r rune) bool {
	switch r {
	case 'h':
		mh.editor.MoveLeft()
	case 'j':
		mh.editor.MoveDown()
	case 'k':
		mh.editor.MoveUp()
	case 'l':
		mh.editor.MoveRight()
	case '0':
		mh.editor.MoveLineStart()
	case '$':
		mh.editor.MoveLineEnd()
	case 'w':
		mh.editor.MoveWordForward(selection.WordKind)
	case 'W':
		mh.editor.MoveWordForward(selection.LongWordKind)
	case 'b':
		mh.editor.MoveWordBackward(selection.WordKind)
	case 'B':
		mh.editor.MoveWordBackward(selection.LongWordKind)
	case 'e':
		mh.editor.MoveWordEnd(selection.WordKind)
	case 'E':
		mh.editor.MoveWordEnd(selection.LongWordKind)
	case 'g':
		mh.pending = 'g'
	default:
		return false
	}
	return true
}
