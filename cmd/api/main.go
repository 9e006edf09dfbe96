// @title Pet Adoption API
// @version 1.0.0
// @description CRUD de mascotas, solicitudes de adopción e historia clínica, con flujo de aprobación.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption-api/internal/adapters/storage/memory"
	pg "pet-adoption-api/internal/adapters/storage/postgres"
	"pet-adoption-api/internal/adapters/storage/postgrest"
	"pet-adoption-api/internal/config"
	"pet-adoption-api/internal/platform/httpclient"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/platform/metrics"
	"pet-adoption-api/internal/ports/recordstore"
	"pet-adoption-api/internal/router"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})
	defer func() {
		if s, ok := log.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gw, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	r := router.NewRouter(router.Options{
		Gateway: gw,
		Logger:  log,
		Metrics: metrics.New(),
		Dev:     cfg.IsDevelopment(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":   srv.Addr,
			"env":    cfg.App.Env,
			"driver": cfg.Store.Driver,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore elige el record store según STORE_DRIVER.
func openStore(ctx context.Context, cfg config.Config, log logger.Logger) (recordstore.Gateway, func(), error) {
	noop := func() {}

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.Store.DSN, pg.DefaultPoolOptions())
		if err != nil {
			return nil, noop, fmt.Errorf("postgres: %w", err)
		}
		if cfg.Store.AutoMigrate {
			if err := pg.Migrate(ctx, db); err != nil {
				_ = db.Close()
				return nil, noop, err
			}
			log.Info("schema migrated", nil)
		}
		return pg.NewStore(db), closeDB(db, log), nil

	case config.DriverPostgREST:
		s, err := postgrest.New(cfg.Store.SupabaseURL, cfg.Store.SupabaseKey, httpclient.Options{
			Timeout:    cfg.Store.Timeout,
			MaxRetries: cfg.Store.MaxRetries,
			Logger:     log.With(map[string]any{"component": "postgrest"}),
		})
		if err != nil {
			return nil, noop, fmt.Errorf("postgrest: %w", err)
		}
		return s, noop, nil

	default:
		log.Warn("using in-memory store; data is lost on restart", nil)
		return memory.New(), noop, nil
	}
}

func closeDB(db *sql.DB, log logger.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			log.Error("closing database", map[string]any{"error": err})
		}
	}
}
