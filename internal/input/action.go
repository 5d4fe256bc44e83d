// internal/input/action.go
package input

// Action represents a decoded key event at the key level. Mode-specific
// meaning (what 'w' does in Normal mode, what Esc commits) is decided by
// the modehandler; the processor only classifies keys.
type Action int

const (
	ActionUnknown Action = iota

	// Meta
	ActionEscape
	ActionSave      // Ctrl+S
	ActionForceQuit // Ctrl+Q
	ActionRedo      // Ctrl+R

	// Cursor movement (special keys; rune motions are modal)
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome
	ActionMoveEnd

	// Text keys
	ActionInsertRune // carries Rune
	ActionInsertNewLine
	ActionInsertTab
	ActionDeleteCharForward  // Delete
	ActionDeleteCharBackward // Backspace
)

// ActionEvent is a decoded input event. Rune is set for ActionInsertRune.
type ActionEvent struct {
	Action Action
	Rune   rune
}
