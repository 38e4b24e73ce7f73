package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thisisamank/thisisamank.in/internal/config"
	"github.com/thisisamank/thisisamank.in/internal/httpserver"
	"github.com/thisisamank/thisisamank.in/internal/httpserver/deps"
	"github.com/thisisamank/thisisamank.in/internal/index"
	"github.com/thisisamank/thisisamank.in/internal/logger"
	"github.com/thisisamank/thisisamank.in/internal/scheduler"
	"github.com/thisisamank/thisisamank.in/internal/version"
)

type App struct {
	cfg      *config.Config
	logger   logger.Logger
	server   *httpserver.Server
	reloader *scheduler.ContentReloader
}

// New loads the site configuration and wires the reloader and preview server.
// A configuration error is returned before any content is read.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	current := &index.Current{}
	reloadTrigger := make(chan struct{}, 1)

	reloader := scheduler.NewContentReloader(
		os.DirFS(cfg.ContentDir),
		current,
		loggerClient.With(logger.String("content_dir", cfg.ContentDir)),
		scheduler.ContentReloaderOptions{
			Extensions:  cfg.ContentExtensions,
			Workers:     cfg.ParseWorkers,
			SkipInvalid: cfg.SkipInvalid,
			Interval:    cfg.ReloadInterval,
		},
		reloadTrigger,
	)

	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		Site:          cfg.Site,
		Current:       current,
		PreviewDrafts: cfg.PreviewDrafts,
		ReloadTrigger: reloadTrigger,
	}

	return &App{
		cfg:      cfg,
		logger:   loggerClient,
		server:   httpserver.New(cfg, loggerClient, d),
		reloader: reloader,
	}, nil
}

// Run performs the initial load cycle, serves the preview API and blocks
// until SIGINT/SIGTERM or a server error.
func (a *App) Run() error {
	defer func() { _ = a.logger.Sync() }()

	a.logger.Infof("Starting %s %s on %s", a.cfg.Site.Title, version.String(), a.cfg.ListenAddr)
	a.logger.Info("site configured",
		logger.String("base_url", a.cfg.Site.BaseURL),
		logger.String("content_dir", a.cfg.ContentDir),
		logger.Bool("skip_invalid", a.cfg.SkipInvalid),
		logger.Bool("preview_drafts", a.cfg.PreviewDrafts))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}
	defer a.reloader.Stop()
	a.logger.Info("content reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("stopped cleanly")
	return nil
}
