// internal/modehandler/normal_mode.go
package modehandler

import (
	"strings"

	"github.com/ebb-editor/ebb/internal/input"
	"github.com/ebb-editor/ebb/internal/mode"
	"github.com/ebb-editor/ebb/internal/selection"
)

// handleActionNormal handles keys in Normal mode.
func (mh *ModeHandler) handleActionNormal(ae input.ActionEvent) bool {
	if mh.pending != 0 {
		return mh.handlePendingNormal(ae)
	}

	switch ae.Action {
	case input.ActionEscape:
		mh.statusBar.ResetTemporaryMessage()
		return true

	case input.ActionMoveUp, input.ActionMoveDown, input.ActionMoveLeft, input.ActionMoveRight,
		input.ActionMovePageUp, input.ActionMovePageDown, input.ActionMoveHome, input.ActionMoveEnd:
		return mh.handleMotionAction(ae.Action)

	case input.ActionSave:
		mh.runCommand("w", nil)
		return true

	case input.ActionForceQuit:
		mh.quitRequest()
		return false

	case input.ActionRedo:
		if !mh.editor.Redo() {
			mh.statusBar.SetTemporaryMessage("Already at newest change")
		}
		return true

	case input.ActionDeleteCharForward:
		mh.deleteAtHead()
		return true

	case input.ActionInsertRune:
		return mh.handleNormalRune(ae.Rune)
	}
	return false
}

// handleNormalRune handles single-rune Normal-mode commands.
func (mh *ModeHandler) handleNormalRune(r rune) bool {
	if mh.handleMotionRune(r) {
		return true
	}

	switch r {
	// Mode entries. Entering Insert first so past-EOL targets are
	// reachable by the follow-up motion.
	case 'i':
		mh.editor.SetMode(mode.Insert)
	case 'a':
		mh.editor.SetMode(mode.Insert)
		mh.editor.MoveRight()
	case 'I':
		mh.editor.MoveLineStart()
		mh.editor.SetMode(mode.Insert)
	case 'A':
		mh.editor.SetMode(mode.Insert)
		mh.editor.MoveLineEnd()
	case 'o':
		mh.editor.SetMode(mode.Insert)
		mh.editor.MoveLineEnd()
		mh.editor.InsertNewline()
	case 'O':
		mh.editor.MoveLineStart()
		mh.editor.SetMode(mode.Insert)
		mh.editor.InsertNewline()
		mh.editor.MoveUp()
	case 'R':
		mh.editor.SetMode(mode.Replace)
	case 'v':
		mh.editor.SetMode(mode.Select)

	// Edits. Normal-mode edits commit immediately; each is one undo step.
	case 'x':
		mh.deleteAtHead()
	case 'd':
		mh.pending = 'd'
	case 'y':
		mh.pending = 'y'
	case 'p':
		text, linewise := mh.clipboard.Get()
		if text == "" {
			mh.statusBar.SetTemporaryMessage("Register empty")
			return true
		}
		mh.editor.PutAfter(text, linewise)
		mh.editor.CommitTransaction()
	case 'P':
		text, linewise := mh.clipboard.Get()
		if text == "" {
			mh.statusBar.SetTemporaryMessage("Register empty")
			return true
		}
		mh.editor.PutBefore(text, linewise)
		mh.editor.CommitTransaction()

	case 'u':
		if !mh.editor.Undo() {
			mh.statusBar.SetTemporaryMessage("Already at oldest change")
		}

	case ':':
		mh.inCommandLine = true
		mh.cmdBuffer = ""
		mh.statusBar.SetTemporaryMessage(":")

	default:
		return false
	}
	return true
}

// handlePendingNormal resolves the second key of d / y / g sequences.
func (mh *ModeHandler) handlePendingNormal(ae input.ActionEvent) bool {
	p := mh.pending
	mh.pending = 0

	if ae.Action == input.ActionEscape {
		return true
	}
	if ae.Action != input.ActionInsertRune {
		return false
	}
	r := ae.Rune

	switch p {
	case 'g':
		switch r {
		case 'e':
			mh.editor.MoveWordEndBackward(selection.WordKind)
			return true
		case 'E':
			mh.editor.MoveWordEndBackward(selection.LongWordKind)
			return true
		}

	case 'd':
		switch r {
		case 'd':
			removed := mh.editor.DeleteLine()
			mh.clipboard.Yank(trimLinewise(removed), true)
			mh.editor.CommitTransaction()
			return true
		case 'w':
			return mh.deleteWordAtHead(selection.WordKind)
		case 'W':
			return mh.deleteWordAtHead(selection.LongWordKind)
		case '\'', '"', '`':
			return mh.deleteQuotedAtHead(r)
		}

	case 'y':
		if r == 'y' {
			mh.clipboard.Yank(mh.editor.CurrentLine(), true)
			mh.statusBar.SetTemporaryMessage("Line yanked")
			return true
		}
	}
	return false
}

// deleteAtHead removes the grapheme under the head (x, Delete).
func (mh *ModeHandler) deleteAtHead() {
	mh.editor.DeleteForward()
	mh.editor.CommitTransaction()
}

// deleteWordAtHead removes from the head to the end of the word at or
// after the head (dw / dW).
func (mh *ModeHandler) deleteWordAtHead(k selection.Kind) bool {
	_, start, end, ok := mh.editor.WordRangeAt(k)
	if !ok {
		return false
	}
	if headOff := mh.editor.Selection().ByteOffset(mh.editor.Rope()); headOff > start {
		start = headOff
	}
	mh.yankAndDelete(start, end)
	return true
}

// deleteQuotedAtHead removes a quoted span, quotes included (d' / d").
func (mh *ModeHandler) deleteQuotedAtHead(quote rune) bool {
	_, start, end, ok := mh.editor.QuoteRangeAt(quote)
	if !ok {
		mh.statusBar.SetTemporaryMessage("No quoted text under cursor")
		return true
	}
	mh.yankAndDelete(start, end)
	return true
}

// yankAndDelete stores [start, end) in the register, removes it and
// commits.
func (mh *ModeHandler) yankAndDelete(start, end int) {
	if start >= end {
		return
	}
	mh.clipboard.Yank(mh.editor.Rope().Slice(start, end), false)
	mh.editor.DeleteByteRange(start, end)
	mh.editor.CommitTransaction()
}

// trimLinewise strips the line separator DeleteLine carries along so
// the register holds bare line content.
func trimLinewise(s string) string {
	s = strings.TrimPrefix(s, "\n")
	return strings.TrimSuffix(s, "\n")
}
