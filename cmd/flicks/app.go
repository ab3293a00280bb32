package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mmcdole/flicks/internal/adapter"
	"github.com/mmcdole/flicks/internal/adapter/source"
	"github.com/mmcdole/flicks/internal/controller"
	"github.com/mmcdole/flicks/internal/domain"
	"github.com/mmcdole/flicks/internal/history"
	"github.com/mmcdole/flicks/internal/service"
	"github.com/mmcdole/flicks/internal/store"
)

// app holds the wired components shared by every command
type app struct {
	cfg    *adapter.Config
	logger *slog.Logger

	store   *store.HistoryStore
	ledger  *history.Ledger
	gateway *service.Gateway

	closers []io.Closer
}

// newApp loads configuration and sets up logging. Stores and clients are opened on demand.
func newApp() (*app, error) {
	cfg, err := adapter.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := adapter.SetupLogger(&cfg.Logging, debug)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	a := &app{cfg: cfg, logger: logger}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}
	return a, nil
}

// openHistory opens the history store and restores the ledger.
// A database held by another process degrades to in-memory history.
func (a *app) openHistory() *history.Ledger {
	if a.ledger != nil {
		return a.ledger
	}

	hs, err := store.NewHistoryStore(a.cfg.HistoryPath())
	if err != nil {
		a.logger.Warn("history database unavailable, keeping history in memory", "error", err)
		hs, _ = store.NewHistoryStore("")
	}
	a.store = hs
	a.ledger = history.NewLedger(hs, a.logger.With("component", "history"))
	return a.ledger
}

// openGateway validates the configuration and creates the upstream clients
func (a *app) openGateway() (*service.Gateway, error) {
	if a.gateway != nil {
		return a.gateway, nil
	}
	if !a.cfg.IsConfigured() {
		return nil, fmt.Errorf("no OMDb API key configured, run 'flicks setup' or set FLICKS_OMDB_API_KEY")
	}
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	sources, err := source.NewSources(a.cfg, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create clients: %w", err)
	}

	a.gateway = service.NewGateway(sources.Catalog, sources.Reviews, a.logger.With("component", "gateway"))
	return a.gateway, nil
}

// newController wires the content controller for the TUI
func (a *app) newController() (*controller.Controller, error) {
	gateway, err := a.openGateway()
	if err != nil {
		return nil, err
	}

	category, ok := domain.ParseCategory(a.cfg.UI.DefaultCategory)
	if !ok {
		category = domain.CategoryMovie
	}
	return controller.New(gateway, a.openHistory(), category, a.logger.With("component", "controller")), nil
}

// Close releases the history database and the log file
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("failed to close history database", "error", err)
		}
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i].Close()
	}
}
