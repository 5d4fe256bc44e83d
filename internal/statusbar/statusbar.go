// Package statusbar renders the single status line at the bottom of
// the screen: mode, file name, modified flag, cursor position and a
// temporary message slot for prompts and command feedback.
package statusbar

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ebb-editor/ebb/internal/theme"
	"github.com/ebb-editor/ebb/internal/types"
)

const messageTimeout = 4 * time.Second

// StatusBar holds the displayed state. Setters are called from the
// editing goroutine; Draw from the drawing loop (same goroutine in this
// app, so no locking).
type StatusBar struct {
	filePath string
	modified bool
	cursor   types.Position
	mode     string

	message     string
	messageTime time.Time
}

// New creates an empty status bar.
func New() *StatusBar {
	return &StatusBar{}
}

// SetFileInfo records the file path and modified flag.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.filePath = path
	sb.modified = modified
}

// SetCursorInfo records the head position.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.cursor = pos
}

// SetMode records the mode name shown on the left.
func (sb *StatusBar) SetMode(mode string) {
	sb.mode = mode
}

// SetTemporaryMessage shows a message that overrides the default text
// until the timeout elapses or ResetTemporaryMessage is called.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.message = fmt.Sprintf(format, args...)
	sb.messageTime = time.Now()
}

// ResetTemporaryMessage clears the message slot.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.message = ""
	sb.messageTime = time.Time{}
}

func (sb *StatusBar) displayText() string {
	if sb.message != "" && time.Since(sb.messageTime) <= messageTimeout {
		return sb.message
	}
	name := sb.filePath
	if name == "" {
		name = "[scratch]"
	}
	mod := ""
	if sb.modified {
		mod = " [+]"
	}
	return fmt.Sprintf(" %s  %s%s  %d:%d", sb.mode, name, mod, sb.cursor.Line+1, sb.cursor.Col+1)
}

// Draw renders the bar on the bottom row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 {
		return
	}
	y := height - 1
	style := theme.Current().GetStyle("StatusBar")
	text := []rune(sb.displayText())
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(text) {
			ch = text[x]
		}
		screen.SetContent(x, y, ch, nil, style)
	}
}
