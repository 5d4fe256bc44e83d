// Package mode defines the editor's input modes. Inside the editing
// core the mode only affects cursor clamping: Insert and Replace allow
// the cursor to rest one past the last grapheme of a line, Normal and
// Select keep it on a grapheme.
package mode

// Mode is the editor's current input mode.
type Mode int

const (
	Normal Mode = iota
	Insert
	Replace
	Select
)

// AllowsPastEOL reports whether the cursor may sit one column past the
// last grapheme of a line in this mode.
func (m Mode) AllowsPastEOL() bool {
	return m == Insert || m == Replace
}

// String returns the display name of the mode (used by the status bar).
func (m Mode) String() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Replace:
		return "REPLACE"
	case Select:
		return "SELECT"
	default:
		return "UNKNOWN"
	}
}
