// Package server wires the development backend: configuration, the
// in-memory store, the seeded administrator and the fiber HTTP API.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/craftstore/internal/filex"
	"github.com/dmitrijs2005/craftstore/internal/logging"
	"github.com/dmitrijs2005/craftstore/internal/server/config"
	"github.com/dmitrijs2005/craftstore/internal/server/httpapi"
	"github.com/dmitrijs2005/craftstore/internal/server/store"
	"github.com/dmitrijs2005/craftstore/internal/server/users"
	"github.com/gofiber/fiber/v2"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	store       *store.Store
	userService *users.Service
	http        *fiber.App
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(c.LogFormat, c.LogLevel, os.Stdout)

	uploadDir, err := filex.EnsureSubdDir(c.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("upload dir: %w", err)
	}

	st := store.New()
	us := users.NewService(st, c, logger)
	if err := us.SeedAdmin(context.Background(), c.SeedAdminNombre, c.SeedAdminTelefono, c.SeedAdminPassword); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	h := httpapi.NewApp(httpapi.Deps{
		Users:     us,
		Store:     st,
		Logger:    logger,
		JWTSecret: []byte(c.SecretKey),
		UploadDir: uploadDir,
	})

	return &App{config: c, logger: logger, store: st, userService: us, http: h}, nil
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

// Run serves until ctx is cancelled or a signal arrives, then shuts the
// listener down.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)
	app.logger.Info(ctx, "Starting app...", "addr", app.config.ListenAddr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.http.Listen(app.config.ListenAddr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.http.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
