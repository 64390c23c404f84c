package server

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"WebHub/internal/usecase"
	"WebHub/pkg/config"
	xhttp "WebHub/pkg/http"
	applogger "WebHub/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	httpServer *xhttp.Server
	journal    *usecase.JournalRecorder
	closers    []io.Closer
}

// New creates a new App. closers are closed last, in order, on shutdown.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	httpServer *xhttp.Server,
	journal *usecase.JournalRecorder,
	closers []io.Closer,
) *App {
	if log == nil {
		log = applogger.NewNop()
	}
	return &App{
		cfg:        cfg,
		log:        log,
		httpServer: httpServer,
		journal:    journal,
		closers:    closers,
	}
}

// Server returns the HTTP server.
func (a *App) Server() *xhttp.Server { return a.httpServer }

// Run starts the HTTP server and blocks until ctx is done or SIGINT/SIGTERM arrives.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("webhub started",
		applogger.String("env", a.cfg.Environment),
		applogger.String("addr", a.httpServer.Addr()),
		applogger.String("journal", a.journal.Backend()),
	)

	<-ctx.Done()
	a.log.Info("shutdown signal received")
	return a.shutdown(context.WithoutCancel(ctx))
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	var firstErr error

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		firstErr = err
	}

	// The collector may publish through the journal's producer, so it goes first.
	a.log.RemoveCollector()

	if err := a.journal.Close(); err != nil {
		a.log.Warn("journal close error", applogger.String("backend", a.journal.Backend()), applogger.Error(err))
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Warn("resource close error", applogger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return firstErr
}
