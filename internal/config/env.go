package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// applyEnv overlays RECKON_* environment variables onto the settings.
// Values that fail to parse are fatal configuration errors.
func applyEnv(s *Settings) error {
	if v, ok := lookup("MAX_HISTORY_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envErr("MAX_HISTORY_SIZE", v)
		}
		s.MaxHistorySize = n
	}

	if v, ok := lookup("AUTO_SAVE"); ok {
		b, err := parseBool(v)
		if err != nil {
			return envErr("AUTO_SAVE", v)
		}
		s.AutoSave = b
	}

	if v, ok := lookup("PRECISION"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envErr("PRECISION", v)
		}
		s.Precision = n
	}

	if v, ok := lookup("MAX_INPUT_VALUE"); ok {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return envErr("MAX_INPUT_VALUE", v)
		}
		s.MaxInputValue = d
	}

	if v, ok := lookup("HISTORY_FILE"); ok {
		s.HistoryFile = v
	}
	if v, ok := lookup("LOG_FILE"); ok {
		s.LogFile = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		s.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup("PLUGIN_DIR"); ok {
		s.PluginDir = v
	}

	return nil
}

func lookup(name string) (string, bool) {
	return os.LookupEnv(EnvPrefix + name)
}

func envErr(name, value string) error {
	return fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, EnvPrefix, name, value)
}

// parseBool accepts the usual spellings of booleans.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}
