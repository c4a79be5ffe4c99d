package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/campuschat-server/internal/config"
	"github.com/campushub/campuschat-server/internal/contact"
	"github.com/campushub/campuschat-server/internal/core"
	"github.com/campushub/campuschat-server/internal/store"
	"github.com/campushub/campuschat-server/internal/store/sqlite"
	transporthttp "github.com/campushub/campuschat-server/internal/transport/http"
)

// App wires together core, contact and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	hub             *core.Hub
	store           store.Store
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) (*App, error) {
	st, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	logger.Info().Str("db_path", cfg.DatabasePath).Msg("database initialized")

	directory := core.NewDirectory(cfg.Rooms...)
	registry := core.NewRegistry(directory)
	hub := core.NewHub(registry, directory, logger)

	var sender contact.Sender
	if smtp := contact.NewSMTPSender(cfg.SMTP); smtp != nil {
		sender = smtp
	} else {
		logger.Warn().Msg("smtp host not configured, contact mail disabled")
	}
	contactSvc := contact.NewService(st, sender, logger)

	server := transporthttp.NewServer(hub, contactSvc, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		hub:             hub,
		store:           st,
		log:             logger,
	}, nil
}

// Run starts the hub and HTTP server and blocks until context
// cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go a.hub.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.cleanup()
			return err
		}

		a.cleanup()
		return <-serverErr
	}
}

// cleanup closes database and other resources.
func (a *App) cleanup() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close store")
		} else {
			a.log.Info().Msg("store closed")
		}
	}
}
