package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/numrush/internal/config"
	"github.com/vovakirdan/numrush/internal/leaderboard"
	"github.com/vovakirdan/numrush/internal/prefs"
	"github.com/vovakirdan/numrush/internal/storage"
)

// env holds what every subcommand needs: settings, rules, a logger and
// the key/value store.
type env struct {
	settings   config.Settings
	rules      config.Rules
	logger     *log.Logger
	store      storage.KV
	persistent bool // store is the database rather than the in-memory fallback
	closers    []io.Closer
}

// setup loads settings and rules and opens the database. Logs go to the log
// file when toFile is set (the TUI owns the terminal), otherwise to stderr.
// A database that cannot be opened is logged and replaced by an in-memory
// store, so the game stays playable without persistence.
func setup(cmd *cobra.Command, toFile bool) (*env, error) {
	settings, err := config.LoadSettings(cmd.Flags(), flagSettings)
	if err != nil {
		return nil, err
	}

	e := &env{settings: settings}

	var out io.Writer = os.Stderr
	if toFile && settings.LogFile != "" {
		if f, err := openLogFile(settings.LogFile); err == nil {
			out = f
			e.closers = append(e.closers, f)
		}
	}
	e.logger = newLogger(out, settings.LogLevel)

	rules, err := config.LoadRules(settings.RulesPath)
	if err != nil {
		e.close()
		return nil, err
	}
	e.rules = rules

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		e.logger.Warn("database unavailable, records will not be kept", "db", settings.DBPath, "err", err)
		e.store = storage.NewMemory()
	} else {
		e.store = store
		e.persistent = true
		e.closers = append(e.closers, store)
	}

	e.logger.Debug("environment ready", "db", settings.DBPath, "rules", settings.RulesPath)
	return e, nil
}

func (e *env) board() *leaderboard.Board {
	return leaderboard.New(e.store, e.rules.LeaderboardCap, e.logger)
}

func (e *env) prefs() *prefs.Prefs {
	return prefs.New(e.store)
}

// requirePersistent fails when the database could not be opened. Commands
// that only change stored data use it, since the fallback would drop the
// change silently.
func (e *env) requirePersistent() error {
	if !e.persistent {
		return fmt.Errorf("cannot open database %s", e.settings.DBPath)
	}
	return nil
}

func (e *env) close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i].Close()
	}
	e.closers = nil
}

func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "numrush",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", level)
	}
	return logger
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// fail prints an error in the CLI's format and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
