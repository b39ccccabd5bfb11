// Package server initializes and runs the fileblock server: it opens the
// database, applies migrations, wires the services, and starts the HTTP
// endpoint with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/fileblock/internal/logging"
	"github.com/dmitrijs2005/fileblock/internal/server/config"
	"github.com/dmitrijs2005/fileblock/internal/server/httpapi"
	"github.com/dmitrijs2005/fileblock/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/fileblock/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	fixed   *services.FixedExtensionService
	custom  *services.CustomExtensionService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	fs := services.NewFixedExtensionService(db, rm)
	cs := services.NewCustomExtensionService(db, rm)

	return &App{config: c, logger: logger, db: db, fixed: fs, custom: cs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.fixed, app.custom, app.config.CORSAllowedOrigins)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
