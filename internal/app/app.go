package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dshills/reckon/internal/config"
	"github.com/dshills/reckon/internal/engine"
	"github.com/dshills/reckon/internal/event"
	"github.com/dshills/reckon/internal/operation"
	"github.com/dshills/reckon/internal/plugin"
	"github.com/dshills/reckon/internal/repl"
	"github.com/dshills/reckon/internal/store"
)

// Options configures application startup.
type Options struct {
	// ConfigPath overrides the default settings file location.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// NoSave keeps history in memory only; nothing touches the disk.
	NoSave bool

	// Input and Output override stdin/stdout, mainly for tests.
	Input  io.Reader
	Output io.Writer
}

// App owns the wired-up application: settings, logger, calculator,
// plugin loader, settings watcher, and the REPL.
type App struct {
	settings config.Settings
	logger   *Logger
	logFile  *os.File
	calc     *engine.Calculator
	loader   *plugin.Loader
	watcher  *config.Watcher
	repl     *repl.REPL

	shutdownOnce sync.Once
}

// New loads settings and builds the application. Invalid settings or
// an unopenable log file abort startup.
func New(opts Options) (*App, error) {
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		settings.LogLevel = strings.ToLower(opts.LogLevel)
		if err := settings.Validate(); err != nil {
			return nil, err
		}
	}

	a := &App{settings: settings}

	logOut := io.Writer(os.Stderr)
	if settings.LogFile != "" {
		if dir := filepath.Dir(settings.LogFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating log directory: %w", err)
			}
		}
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		a.logFile = f
		logOut = f
	}
	a.logger = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(settings.LogLevel),
		Output: logOut,
		Prefix: "reckon",
	})

	reg := operation.NewDefaultRegistry()
	if settings.PluginDir != "" {
		a.loader = plugin.NewLoader(settings.PluginDir, a.logger.WithComponent("plugin"))
		if n, err := a.loader.LoadInto(reg); err != nil {
			a.logger.Warn("plugin scan failed", "error", err.Error())
		} else if n > 0 {
			a.logger.Info("plugins loaded", "count", n)
		}
	}

	var st store.Store
	if opts.NoSave {
		st = store.NewMemStore()
	} else {
		st = store.NewCSVStore(settings.HistoryFile, reg, a.logger.WithComponent("store"))
	}

	a.calc = engine.New(
		engine.WithRegistry(reg),
		engine.WithStore(st),
		engine.WithBus(event.NewBus(a.logger.WithComponent("event"))),
		engine.WithMaxHistorySize(settings.MaxHistorySize),
		engine.WithMaxInputValue(settings.MaxInputValue),
		engine.WithAutoSave(settings.AutoSave),
	)

	logObs, err := event.NewLoggingObserver(a.logger.WithComponent("observer"))
	if err != nil {
		return nil, err
	}
	if err := a.calc.AddObserver(logObs); err != nil {
		return nil, err
	}
	saveObs, err := event.NewAutoSaveObserver(a.calc, a.logger.WithComponent("observer"))
	if err != nil {
		return nil, err
	}
	if err := a.calc.AddObserver(saveObs); err != nil {
		return nil, err
	}

	if err := a.calc.LoadHistory(); err != nil {
		a.logger.Warn("loading history", "error", err.Error())
	}

	a.repl = repl.New(a.calc,
		repl.WithPrecision(settings.Precision),
		repl.WithLogger(a.logger.WithComponent("repl")),
		repl.WithInput(opts.Input),
		repl.WithOutput(opts.Output),
	)

	settingsPath := opts.ConfigPath
	if settingsPath == "" {
		settingsPath = filepath.Join(config.BaseDir(), config.SettingsFileName)
	}
	w, err := config.Watch(settingsPath, a.onReload, func(err error) {
		a.logger.Warn("settings watch", "error", err.Error())
	})
	if err != nil {
		a.logger.Warn("settings watch unavailable", "error", err.Error())
	} else {
		a.watcher = w
	}

	return a, nil
}

// onReload applies a changed settings file to the running session.
func (a *App) onReload(s config.Settings) {
	a.logger.Info("settings reloaded",
		"max_history_size", s.MaxHistorySize,
		"auto_save", s.AutoSave,
		"precision", s.Precision)
	a.calc.UpdateLimits(s.MaxHistorySize, s.MaxInputValue, s.AutoSave)
	a.repl.SetPrecision(s.Precision)
	a.logger.SetLevel(ParseLogLevel(s.LogLevel))
}

// Run drives the REPL until the session ends, then shuts down.
func (a *App) Run() error {
	a.logger.Info("starting",
		"operations", a.calc.Registry().Count(),
		"history", a.calc.Len())
	err := a.repl.Run()
	a.Shutdown()
	return err
}

// Shutdown releases the watcher, plugin states, and log file. Safe to
// call more than once.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(func() {
		if a.watcher != nil {
			if err := a.watcher.Close(); err != nil {
				a.logger.Warn("closing settings watcher", "error", err.Error())
			}
		}
		if a.loader != nil {
			a.loader.Close()
		}
		a.logger.Info("shutdown complete")
		if a.logFile != nil {
			_ = a.logFile.Close()
		}
	})
}

// Calculator exposes the engine, mainly for tests.
func (a *App) Calculator() *engine.Calculator { return a.calc }

// Settings returns the settings the application started with.
func (a *App) Settings() config.Settings { return a.settings }
