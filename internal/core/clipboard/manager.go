// Package clipboard handles yank and put. Text goes to an internal
// register and, when enabled, to the system clipboard; put prefers the
// system clipboard so text copied in other programs can be pasted.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/ebb-editor/ebb/internal/logger"
)

// Manager holds the yank register.
type Manager struct {
	register string
	system   bool
	linewise bool // set when the register holds whole lines (dd / yy)
}

// NewManager creates a clipboard manager. system enables the OS
// clipboard via atotto/clipboard in addition to the internal register.
func NewManager(system bool) *Manager {
	return &Manager{system: system}
}

// Yank stores text in the register. linewise marks whole-line yanks so
// put can insert below the cursor line instead of at the head.
func (m *Manager) Yank(text string, linewise bool) {
	m.register = text
	m.linewise = linewise
	if m.system {
		if err := clipboard.WriteAll(text); err != nil {
			logger.Warnf("clipboard: system write failed, keeping internal register: %v", err)
		}
	}
	logger.Debugf("clipboard: yanked %d bytes (linewise=%v)", len(text), linewise)
}

// Get returns the register content and whether it is linewise. When the
// system clipboard is enabled and readable, its content wins (but a
// foreign system clipboard is never linewise).
func (m *Manager) Get() (string, bool) {
	if m.system {
		if s, err := clipboard.ReadAll(); err == nil && s != "" {
			if s != m.register {
				return s, false
			}
			return m.register, m.linewise
		}
	}
	return m.register, m.linewise
}
