// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/ebb-editor/ebb/internal/config"
	"github.com/ebb-editor/ebb/internal/core"
	"github.com/ebb-editor/ebb/internal/core/clipboard"
	"github.com/ebb-editor/ebb/internal/event"
	"github.com/ebb-editor/ebb/internal/highlighter"
	"github.com/ebb-editor/ebb/internal/input"
	"github.com/ebb-editor/ebb/internal/logger"
	"github.com/ebb-editor/ebb/internal/modehandler"
	"github.com/ebb-editor/ebb/internal/statusbar"
	"github.com/ebb-editor/ebb/internal/tui"
)

// App wires the editor components together and runs the main loop.
//
// Concurrency model: the input goroutine only polls tcell and forwards
// events over a channel. The main loop is the single editing goroutine;
// it owns the editor, the mode handler and all drawing. Nothing else
// touches editor state.
type App struct {
	tuiManager   *tui.TUI
	editor       *core.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler
	clipboard    *clipboard.Manager
	highlighter  *highlighter.Highlighter

	filePath string
	modified bool

	highlights highlighter.Result

	events        chan tcell.Event
	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}
}

// NewApp creates and wires an application instance. filePath may name a
// file that does not exist yet; the document starts empty then.
func NewApp(filePath string) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	content := ""
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		switch {
		case err == nil:
			content = string(data)
		case os.IsNotExist(err):
			logger.Infof("app: %q does not exist yet, starting empty", filePath)
		default:
			tuiManager.Close()
			return nil, fmt.Errorf("failed to read %q: %w", filePath, err)
		}
	}

	editor := core.NewEditor(content)
	eventManager := event.NewManager()
	editor.SetEventManager(eventManager)

	cfg := config.Get()
	editor.SetScrollOff(cfg.Editor.ScrollOff)

	statusBar := statusbar.New()
	clip := clipboard.NewManager(cfg.Editor.SystemClipboard)

	a := &App{
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		clipboard:     clip,
		filePath:      filePath,
		events:        make(chan tcell.Event, 16),
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}

	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		Clipboard:      clip,
		QuitRequest:    a.requestQuit,
	})
	a.registerCommands()

	eventManager.Subscribe(event.TypeBufferModified, a.handleBufferModified)
	eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMoved)

	hl, err := highlighter.New(filePath)
	if err != nil {
		logger.Warnf("app: syntax highlighting disabled: %v", err)
	} else {
		a.highlighter = hl
	}
	a.refreshHighlights()

	width, height := tuiManager.Size()
	editor.SetViewSize(width, height-config.StatusBarHeight)

	return a, nil
}

// Run starts the input goroutine and the main loop. Blocks until quit.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.pollInput()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("ebb - :w save | :q quit | i insert")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("app: exiting")
			return nil

		case ev := <-a.events:
			if a.handleEvent(ev) {
				a.requestRedraw()
			}

		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// pollInput forwards terminal events to the editing goroutine. Runs
// until the screen is finalized.
func (a *App) pollInput() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent processes one terminal event on the editing goroutine.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Screen().Sync()
		width, height := a.tuiManager.Size()
		a.editor.SetViewSize(width, height-config.StatusBarHeight)
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	}
	return false
}

// draw renders the document, status bar and cursor.
func (a *App) draw() {
	a.statusBar.SetFileInfo(a.filePath, a.modified)
	a.statusBar.SetCursorInfo(a.editor.Selection().Head)
	a.statusBar.SetMode(a.modeHandler.ModeName())

	a.tuiManager.Clear()
	tui.DrawBuffer(a.tuiManager, a.editor, a.highlights)
	width, height := a.tuiManager.Size()
	a.statusBar.Draw(a.tuiManager.Screen(), width, height)
	a.tuiManager.SetCursorShape(a.modeHandler.ModeName())
	tui.DrawCursor(a.tuiManager, a.editor)
	a.tuiManager.Show()
}

// save writes the document to its file path.
func (a *App) save() error {
	if a.filePath == "" {
		return fmt.Errorf("no file name")
	}
	a.editor.CommitTransaction()
	if err := os.WriteFile(a.filePath, []byte(a.editor.Rope().String()), 0644); err != nil {
		return fmt.Errorf("write %q: %w", a.filePath, err)
	}
	a.modified = false
	a.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: a.filePath})
	a.statusBar.SetTemporaryMessage("Saved %s", a.filePath)
	return nil
}

// refreshHighlights recomputes syntax highlights for the whole document.
func (a *App) refreshHighlights() {
	if a.highlighter == nil {
		return
	}
	result, err := a.highlighter.Highlight(context.Background(), a.editor.Rope())
	if err != nil {
		logger.Warnf("app: highlight failed: %v", err)
		return
	}
	a.highlights = result
}

// --- Event handlers (run synchronously on the editing goroutine) ---

func (a *App) handleBufferModified(e event.Event) bool {
	a.modified = true
	a.refreshHighlights()
	return false
}

func (a *App) handleCursorMoved(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false
}

// requestRedraw coalesces redraw requests.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}

// requestQuit signals the main loop to exit. Safe to call repeatedly.
func (a *App) requestQuit() {
	a.quitOnce.Do(func() { close(a.quit) })
}
