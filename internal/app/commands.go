// internal/app/commands.go
package app

import "fmt"

// registerCommands installs the built-in ':' commands.
func (a *App) registerCommands() {
	must := func(err error) {
		if err != nil {
			panic(fmt.Sprintf("app: command registration failed: %v", err))
		}
	}

	must(a.modeHandler.RegisterCommand("w", func(args []string) error {
		if len(args) > 0 {
			a.filePath = args[0]
		}
		return a.save()
	}))

	must(a.modeHandler.RegisterCommand("q", func(args []string) error {
		if a.modified {
			return fmt.Errorf("unsaved changes (:q! to discard)")
		}
		a.requestQuit()
		return nil
	}))

	must(a.modeHandler.RegisterCommand("q!", func(args []string) error {
		a.requestQuit()
		return nil
	}))

	must(a.modeHandler.RegisterCommand("wq", func(args []string) error {
		if err := a.save(); err != nil {
			return err
		}
		a.requestQuit()
		return nil
	}))
}
