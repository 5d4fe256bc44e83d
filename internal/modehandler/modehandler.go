// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ebb-editor/ebb/internal/core"
	"github.com/ebb-editor/ebb/internal/core/clipboard"
	"github.com/ebb-editor/ebb/internal/event"
	"github.com/ebb-editor/ebb/internal/input"
	"github.com/ebb-editor/ebb/internal/logger"
	"github.com/ebb-editor/ebb/internal/mode"
	"github.com/ebb-editor/ebb/internal/statusbar"
)

// CommandFunc runs a named ':' command with its arguments.
type CommandFunc func(args []string) error

// ModeHandler routes decoded key events to the editor according to the
// current input mode, and owns the ':' command line.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	clipboard      *clipboard.Manager
	quitRequest    func()

	inCommandLine bool
	cmdBuffer     string
	commands      map[string]CommandFunc

	// First key of a two-key sequence ('d', 'y', 'g'); 0 when none.
	pending rune
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	Clipboard      *clipboard.Manager
	QuitRequest    func()
}

// New creates a ModeHandler. Missing dependencies are a setup bug.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil ||
		cfg.StatusBar == nil || cfg.Clipboard == nil || cfg.QuitRequest == nil {
		panic("modehandler.New: missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		clipboard:      cfg.Clipboard,
		quitRequest:    cfg.QuitRequest,
		commands:       make(map[string]CommandFunc),
	}
}

// HandleKeyEvent routes one key event. Returns true when the event
// changed visible state and a redraw is needed.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	actionEvent := mh.inputProcessor.ProcessEvent(ev)

	if mh.inCommandLine {
		return mh.handleActionCommand(actionEvent)
	}

	switch mh.editor.Mode() {
	case mode.Normal:
		return mh.handleActionNormal(actionEvent)
	case mode.Insert, mode.Replace:
		return mh.handleActionInsert(actionEvent)
	case mode.Select:
		return mh.handleActionSelect(actionEvent)
	}
	logger.Warnf("modehandler: unknown editor mode %v", mh.editor.Mode())
	return false
}

// RegisterCommand adds a ':' command to the registry.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command %q already registered", name)
	}
	mh.commands[name] = cmdFunc
	return nil
}

// InCommandLine reports whether the ':' prompt is active.
func (mh *ModeHandler) InCommandLine() bool { return mh.inCommandLine }

// CommandBuffer returns the command line content for display.
func (mh *ModeHandler) CommandBuffer() string {
	if mh.inCommandLine {
		return mh.cmdBuffer
	}
	return ""
}

// ModeName returns the text shown in the status bar mode field.
func (mh *ModeHandler) ModeName() string {
	if mh.inCommandLine {
		return "COMMAND"
	}
	return mh.editor.Mode().String()
}
