// internal/modehandler/command_mode.go
package modehandler

import (
	"strconv"
	"strings"

	"github.com/ebb-editor/ebb/internal/input"
	"github.com/ebb-editor/ebb/internal/logger"
)

// handleActionCommand handles keys while the ':' prompt is active.
func (mh *ModeHandler) handleActionCommand(ae input.ActionEvent) bool {
	actionProcessed := true
	needsUpdate := false

	switch ae.Action {
	case input.ActionInsertRune:
		mh.cmdBuffer += string(ae.Rune)
		needsUpdate = true

	case input.ActionDeleteCharBackward:
		if len(mh.cmdBuffer) > 0 {
			mh.cmdBuffer = mh.cmdBuffer[:len(mh.cmdBuffer)-1]
			needsUpdate = true
		} else {
			mh.inCommandLine = false
			mh.statusBar.ResetTemporaryMessage()
		}

	case input.ActionInsertNewLine:
		mh.executeCommand()
		mh.inCommandLine = false

	case input.ActionEscape:
		mh.inCommandLine = false
		mh.cmdBuffer = ""
		mh.statusBar.ResetTemporaryMessage()

	default:
		actionProcessed = false
	}

	if needsUpdate && mh.inCommandLine {
		mh.statusBar.SetTemporaryMessage(":%s", mh.cmdBuffer)
	}
	return actionProcessed
}

// executeCommand parses and runs the command in cmdBuffer. A bare
// number jumps to that line.
func (mh *ModeHandler) executeCommand() {
	cmdStr := strings.TrimSpace(mh.cmdBuffer)
	mh.cmdBuffer = ""
	if cmdStr == "" {
		mh.statusBar.ResetTemporaryMessage()
		return
	}

	parts := strings.Fields(cmdStr)
	cmdName := parts[0]
	args := parts[1:]

	if n, err := strconv.Atoi(cmdName); err == nil {
		mh.editor.GotoLine(n - 1)
		mh.statusBar.ResetTemporaryMessage()
		return
	}

	mh.runCommand(cmdName, args)
}

// runCommand looks up and runs a registered command.
func (mh *ModeHandler) runCommand(name string, args []string) {
	cmdFunc, exists := mh.commands[name]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", name)
		return
	}
	logger.Debugf("modehandler: executing :%s %v", name, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetTemporaryMessage("Error: %s: %v", name, err)
	}
}
