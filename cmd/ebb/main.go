// cmd/ebb/main.go
package main

import (
	stlog "log"
	"os"

	"github.com/ebb-editor/ebb/internal/app"
	"github.com/ebb-editor/ebb/internal/config"
	"github.com/ebb-editor/ebb/internal/logger"
)

func main() {
	flags := &config.Flags{}
	args := flags.ParseFlags()

	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Logs go to a file when configured; never to the terminal the TUI
	// owns.
	var logOutput *os.File
	if cfg.Logger.LogFilePath != "" {
		logOutput, err = os.OpenFile(cfg.Logger.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file %q: %v", cfg.Logger.LogFilePath, err)
		}
		defer logOutput.Close()
	}
	if logOutput != nil {
		logger.Init(logger.ParseLevel(cfg.Logger.LogLevel), logOutput)
	}

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	logger.Infof("starting ebb (file=%q)", filePath)

	ebbApp, err := app.NewApp(filePath)
	if err != nil {
		logger.Errorf("initialization failed: %v", err)
		stlog.Fatalf("ebb: %v", err)
	}
	if err := ebbApp.Run(); err != nil {
		logger.Errorf("exited with error: %v", err)
		os.Exit(1)
	}
	logger.Infof("ebb finished")
}
