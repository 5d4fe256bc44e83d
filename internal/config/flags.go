// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
)

// Flags holds values parsed from command-line flags. Pointers
// distinguish unset flags from zero-value flags.
type Flags struct {
	ConfigFilePath  *string
	LogLevel        *string
	LogFilePath     *string
	TabWidth        *int
	ScrollOff       *int
	SystemClipboard *bool
}

// DefineFlags registers the command-line flags.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file - overrides config file")
	f.TabWidth = flag.Int("tabwidth", 0, "Number of spaces per tab - overrides config file")
	f.ScrollOff = flag.Int("scrolloff", -1, "Lines of context above/below cursor - overrides config file")
	f.SystemClipboard = flag.Bool("system-clipboard", false, "Use the system clipboard for yank/put")
}

// ParseFlags parses the command line and returns the non-flag
// arguments (the file to open).
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides copies flag values over cfg for flags that were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			cfg.Logger.LogLevel = *f.LogLevel
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "tabwidth":
			cfg.Editor.TabWidth = *f.TabWidth
		case "scrolloff":
			cfg.Editor.ScrollOff = *f.ScrollOff
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		}
	})
}
