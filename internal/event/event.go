// internal/event/event.go
package event

import (
	"github.com/ebb-editor/ebb/internal/mode"
	"github.com/ebb-editor/ebb/internal/types"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document events
	TypeBufferModified // document content changed (edit, undo, redo)
	TypeBufferLoaded   // a file was loaded into the document
	TypeBufferSaved    // the document was written to disk
	TypeCursorMoved    // the selection head moved
	TypeModeChanged    // input mode switched

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData accompanies TypeBufferModified. Subscribers
// re-read the document; no delta is carried.
type BufferModifiedData struct{}

// BufferLoadedData names the file that was loaded.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData names the file that was written.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData carries the new head position.
type CursorMovedData struct {
	NewPosition types.Position
}

// ModeChangedData carries the new input mode.
type ModeChangedData struct {
	Mode mode.Mode
}

// AppReadyData and AppQuitData mark lifecycle transitions.
type AppReadyData struct{}
type AppQuitData struct{}
