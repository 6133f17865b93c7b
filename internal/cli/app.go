package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/qrkeeper/internal/analytics"
	"github.com/dmitrijs2005/qrkeeper/internal/config"
	"github.com/dmitrijs2005/qrkeeper/internal/entitlement"
	"github.com/dmitrijs2005/qrkeeper/internal/logging"
	"github.com/dmitrijs2005/qrkeeper/internal/persist"
	"github.com/dmitrijs2005/qrkeeper/internal/qrgen"
	"github.com/dmitrijs2005/qrkeeper/internal/repositories/kvstore"
	"github.com/dmitrijs2005/qrkeeper/internal/services"
	"github.com/dmitrijs2005/qrkeeper/internal/storage"
)

// persistQueueSize bounds the background write queue; writes are small blobs
// so the queue rarely fills.
const persistQueueSize = 32

type App struct {
	config       *config.Config
	log          logging.Logger
	history      *services.HistoryService
	catalog      *services.CatalogService
	quota        *services.QuotaService
	entitlements *entitlement.TokenSource
	generator    qrgen.ImageGenerator
	tracker      analytics.Tracker
	worker       *persist.Worker
	db           *sql.DB
	reader       *bufio.Reader
	out          io.Writer
}

// NewApp opens the local database and wires all services. The returned app
// owns the database handle and the persistence worker; call Close when done.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := kvstore.NewSQLiteStore(db)
	worker := persist.NewWorker(persistQueueSize, log)

	history := services.NewHistoryService(store, worker, log)
	catalog := services.NewCatalogService(store, worker, history, log)
	quota := services.NewQuotaService(store, worker, log)
	entitlements := entitlement.NewTokenSource(store, []byte(cfg.EntitlementSecret), log)

	history.Load(ctx)
	catalog.Load(ctx)
	quota.Load(ctx)
	entitlements.Load(ctx)

	// entitlement may have been granted while the app was not running
	if entitlements.IsEntitled(ctx) {
		quota.Reset()
	}

	return &App{
		config:       cfg,
		log:          log,
		history:      history,
		catalog:      catalog,
		quota:        quota,
		entitlements: entitlements,
		generator:    qrgen.NewPNGGenerator(),
		tracker:      analytics.NewLogTracker(log),
		worker:       worker,
		db:           db,
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}, nil
}

// Run starts the interactive shell and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close flushes pending writes and releases the database handle.
func (a *App) Close() {
	a.worker.Close()
	_ = a.db.Close()
}
