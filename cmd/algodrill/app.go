package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/algodrill/internal/analyzer"
	"github.com/felixgeelhaar/algodrill/internal/catalog"
	"github.com/felixgeelhaar/algodrill/internal/config"
	"github.com/felixgeelhaar/algodrill/internal/logging"
	"github.com/felixgeelhaar/algodrill/internal/practice"
	"github.com/felixgeelhaar/algodrill/internal/render"
	"github.com/felixgeelhaar/algodrill/internal/storage/sqlite"
)

// errAnswerMismatch makes check exit non-zero without an error message
var errAnswerMismatch = errors.New("answer mismatch")

// app holds what the commands share once setup has run
type app struct {
	verbose   bool
	noHistory bool

	dir      string
	cfg      *config.Config
	logger   *slog.Logger
	registry *catalog.Registry
	history  practice.HistoryStore
	closers  []io.Closer
}

func newApp() *app {
	return &app{}
}

// setup loads config, logging and the catalog. The console log handler is
// only attached with --verbose, and never for the TUI.
func (a *app) setup(cmd *cobra.Command, interactive bool) error {
	if a.registry != nil {
		return nil
	}

	dir, err := config.EnsureDir()
	if err != nil {
		return err
	}
	cfg, err := config.LoadFrom(dir)
	if err != nil {
		return err
	}
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	var console io.Writer
	if a.verbose && !interactive {
		console = cmd.ErrOrStderr()
	}
	logger, logFile, err := logging.Setup(filepath.Join(dir, "logs"), level, console)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, logFile)

	registry := catalog.NewRegistry(catalog.NewLoader(cfg.CatalogPath))
	if err := registry.Load(); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	stats := registry.Stats()
	logger.Debug("catalog loaded", "version", stats.Version, "algorithms", stats.AlgorithmCount, "override", cfg.CatalogPath)

	a.dir = dir
	a.cfg = cfg
	a.logger = logger
	a.registry = registry
	return nil
}

// openHistory opens the configured history backend; nil means disabled
func (a *app) openHistory() (practice.HistoryStore, error) {
	if a.history != nil || a.noHistory {
		return a.history, nil
	}

	var store practice.HistoryStore
	switch a.cfg.History.Backend {
	case config.HistorySQLite:
		if err := os.MkdirAll(filepath.Dir(a.cfg.History.Path), 0755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
		s, err := sqlite.OpenHistoryStore(a.cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		store = s
	case config.HistoryJSON:
		s, err := practice.NewStore(a.cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		store = s
	default:
		return nil, nil
	}

	a.history = store
	a.closers = append(a.closers, store)
	a.logger.Debug("history opened", "backend", a.cfg.History.Backend, "path", a.cfg.History.Path)
	return store, nil
}

// service builds a practice service. A history store that fails to open is
// logged and skipped so practice still works.
func (a *app) service() *practice.Service {
	store, err := a.openHistory()
	if err != nil {
		a.logger.Warn("history disabled", "error", err)
	}
	return practice.NewService(a.registry, analyzer.New(), practice.Options{
		Sizes:    a.cfg.CatalogSizes(),
		Seed:     a.cfg.Practice.Seed,
		Language: a.cfg.Language(),
		Store:    store,
		Logger:   a.logger,
	})
}

// renderer picks colors only when w is a terminal
func (a *app) renderer(w io.Writer) *render.Renderer {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return render.New(render.ColorTheme())
	}
	return render.New(render.PlainTheme())
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && a.logger != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
	a.closers = nil
}
