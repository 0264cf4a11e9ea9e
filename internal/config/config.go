package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

// Default settings values.
const (
	DefaultMaxHistorySize = 1000
	DefaultPrecision      = 10
	DefaultAutoSave       = true
	DefaultLogLevel       = "info"

	// EnvPrefix is the prefix for all environment overrides.
	EnvPrefix = "RECKON_"

	// SettingsFileName is the name of the settings file in the base dir.
	SettingsFileName = "settings.toml"
)

// DefaultMaxInputValue is the input magnitude ceiling when none is
// configured. Effectively unbounded for interactive use.
var DefaultMaxInputValue = decimal.RequireFromString("1e999")

// Settings holds the calculator configuration. The core treats a loaded
// Settings value as read-only.
type Settings struct {
	// MaxHistorySize is the maximum number of retained calculations.
	MaxHistorySize int `toml:"max_history_size"`

	// AutoSave persists history after every calculation when true.
	AutoSave bool `toml:"auto_save"`

	// Precision is the number of decimal places used for display rounding.
	Precision int `toml:"precision"`

	// MaxInputValue is the magnitude ceiling for operands.
	MaxInputValue decimal.Decimal `toml:"max_input_value"`

	// HistoryFile is the CSV file history is saved to and loaded from.
	HistoryFile string `toml:"history_file"`

	// LogFile receives the application log. Empty logs to stderr.
	LogFile string `toml:"log_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// PluginDir holds Lua operation plugins. Empty disables plugins.
	PluginDir string `toml:"plugin_dir"`
}

// BaseDir returns the directory settings and data default into:
// RECKON_BASE_DIR if set, otherwise <user config dir>/reckon.
func BaseDir() string {
	if dir := os.Getenv(EnvPrefix + "BASE_DIR"); dir != "" {
		return dir
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "reckon"
	}
	return filepath.Join(configDir, "reckon")
}

// Defaults returns the built-in settings layer.
func Defaults() Settings {
	base := BaseDir()
	return Settings{
		MaxHistorySize: DefaultMaxHistorySize,
		AutoSave:       DefaultAutoSave,
		Precision:      DefaultPrecision,
		MaxInputValue:  DefaultMaxInputValue,
		HistoryFile:    filepath.Join(base, "history.csv"),
		LogFile:        filepath.Join(base, "reckon.log"),
		LogLevel:       DefaultLogLevel,
		PluginDir:      filepath.Join(base, "plugins"),
	}
}

// Load resolves settings from defaults, the settings file, and
// environment overrides, then validates. An empty path uses the default
// location; a missing file is not an error.
func Load(path string) (Settings, error) {
	s := Defaults()

	if path == "" {
		path = filepath.Join(BaseDir(), SettingsFileName)
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults apply.
	case err != nil:
		return Settings{}, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, path, err)
	default:
		if err := toml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if err := applyEnv(&s); err != nil {
		return Settings{}, err
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that all numeric limits are positive.
func (s Settings) Validate() error {
	if s.MaxHistorySize <= 0 {
		return fmt.Errorf("%w: max_history_size must be positive, got %d", ErrInvalidConfig, s.MaxHistorySize)
	}
	if s.Precision <= 0 {
		return fmt.Errorf("%w: precision must be positive, got %d", ErrInvalidConfig, s.Precision)
	}
	if s.MaxInputValue.Sign() <= 0 {
		return fmt.Errorf("%w: max_input_value must be positive, got %s", ErrInvalidConfig, s.MaxInputValue)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level must be debug, info, warn, or error, got %q", ErrInvalidConfig, s.LogLevel)
	}
	return nil
}
