package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/supporthub/helpdesk/internal/config"
	"github.com/supporthub/helpdesk/internal/events"
	"github.com/supporthub/helpdesk/internal/observability"
	"github.com/supporthub/helpdesk/internal/persistence"
	"github.com/supporthub/helpdesk/internal/service"
	"github.com/supporthub/helpdesk/internal/state"
	"github.com/supporthub/helpdesk/internal/worker"
)

// App bundles the wired engine for command handlers.
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Store     persistence.Store
	State     *state.State
	Metrics   *observability.Metrics
	Tickets   *service.TicketService
	Canned    *service.CannedService
	Workspace *service.WorkspaceService
}

var app *App

func newApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	st := state.Load(ctx, store, logger)
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditLog(dispatcher, logger)
	metrics := observability.NewMetrics()

	tickets := service.NewTicketService(service.TicketDependencies{
		State:      st,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	})
	canned := service.NewCannedService(service.CannedDependencies{
		State:      st,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	})
	workspace := service.NewWorkspaceService(service.WorkspaceDependencies{
		State:      st,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	})

	if cfg.App.SeedDemoData {
		tickets.SeedDemoData(ctx)
	}

	return &App{
		Config:    cfg,
		Logger:    logger,
		Store:     store,
		State:     st,
		Metrics:   metrics,
		Tickets:   tickets,
		Canned:    canned,
		Workspace: workspace,
	}, nil
}

func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (persistence.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		return persistence.OpenSQLite(cfg.Storage.SQLitePath, logger)
	case config.DriverPostgres:
		return persistence.NewPostgres(ctx, cfg.Postgres, logger)
	case config.DriverRedis:
		return persistence.NewRedis(ctx, cfg.Redis, logger)
	case config.DriverMemory:
		return persistence.NewMemoryStore(logger), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Close flushes the logger and releases the store.
func (a *App) Close() {
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Logger.Warn("close store", zap.Error(err))
		}
	}
	_ = a.Logger.Sync()
}
