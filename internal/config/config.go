// Package config loads the editor configuration: defaults, then the
// TOML config file, then command-line flag overrides, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger LoggerConfig `toml:"logger"`
	Editor EditorConfig `toml:"editor"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	LogLevel    string `toml:"log_level"`
	LogFilePath string `toml:"log_file"`
}

// EditorConfig holds editor behavior settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	ScrollOff       int  `toml:"scroll_off"`
	SystemClipboard bool `toml:"system_clipboard"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: LoggerConfig{
			LogLevel:    "info",
			LogFilePath: "",
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: DefaultSystemClipboard,
		},
	}
}

// loadFromFile decodes a TOML config file into cfg. A missing file is
// not an error; the defaults simply stand.
func loadFromFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("error checking config file %q: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return nil
}

// validate resets out-of-range values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()
	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig loads defaults, the config file (the explicit path or the
// user config dir), and flag overrides. Called once from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" {
			if dir, err := os.UserConfigDir(); err == nil {
				effectivePath = filepath.Join(dir, ConfigDirName, DefaultConfigFileName)
			}
		}
		if effectivePath != "" {
			if err := loadFromFile(effectivePath, cfg); err != nil {
				loadErr = err
				return
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg)
		}
		cfg.validate()
		loadedConfig = cfg
	})
	return loadedConfig, loadErr
}

// Get returns the loaded configuration, or defaults when LoadConfig was
// never called (tests).
func Get() *Config {
	if loadedConfig == nil {
		return NewDefaultConfig()
	}
	return loadedConfig
}
