// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ebb-editor/ebb/internal/theme"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen tcell.Screen
}

// New creates and initializes the tcell screen.
func New() (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	s.SetStyle(theme.Current().GetStyle("Default"))
	return &TUI{screen: s}, nil
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent retrieves the next terminal event.
func (t *TUI) PollEvent() tcell.Event { return t.screen.PollEvent() }

// Clear clears the entire screen.
func (t *TUI) Clear() { t.screen.Clear() }

// Show makes pending changes visible.
func (t *TUI) Show() { t.screen.Show() }

// Size returns the terminal dimensions.
func (t *TUI) Size() (int, int) { return t.screen.Size() }

// Screen provides direct access for the status bar.
func (t *TUI) Screen() tcell.Screen { return t.screen }
