// internal/modehandler/insert_mode.go
package modehandler

import (
	"strings"

	"github.com/ebb-editor/ebb/internal/config"
	"github.com/ebb-editor/ebb/internal/input"
	"github.com/ebb-editor/ebb/internal/mode"
)

// handleActionInsert handles keys in Insert and Replace mode. Esc
// leaves the mode, which commits the whole insertion as one undo step.
func (mh *ModeHandler) handleActionInsert(ae input.ActionEvent) bool {
	switch ae.Action {
	case input.ActionEscape:
		mh.editor.SetMode(mode.Normal)
		return true

	case input.ActionInsertRune:
		mh.editor.InsertRune(ae.Rune)
		return true

	case input.ActionInsertNewLine:
		mh.editor.InsertNewline()
		return true

	case input.ActionInsertTab:
		mh.editor.InsertText(strings.Repeat(" ", config.Get().Editor.TabWidth))
		return true

	case input.ActionDeleteCharBackward:
		mh.editor.DeleteBackward()
		return true

	case input.ActionDeleteCharForward:
		mh.editor.DeleteForward()
		return true

	case input.ActionMoveUp, input.ActionMoveDown, input.ActionMoveLeft, input.ActionMoveRight,
		input.ActionMovePageUp, input.ActionMovePageDown, input.ActionMoveHome, input.ActionMoveEnd:
		return mh.handleMotionAction(ae.Action)
	}
	return false
}
