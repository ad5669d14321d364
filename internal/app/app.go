// Package app wires configuration, the ephemeris provider, and the
// output controllers together.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/chrissnell/radecbot/internal/controllers"
	"github.com/chrissnell/radecbot/internal/controllers/restserver"
	"github.com/chrissnell/radecbot/internal/controllers/twitter"
	"github.com/chrissnell/radecbot/internal/log"
	"github.com/chrissnell/radecbot/pkg/config"
	"github.com/chrissnell/radecbot/pkg/ephemeris"
	"github.com/chrissnell/radecbot/pkg/report"
	"go.uber.org/zap"
)

// App represents the main application
type App struct {
	configProvider config.ConfigProvider
	logger         *zap.SugaredLogger
}

// New creates a new application instance
func New(configProvider config.ConfigProvider, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		logger:         logger,
	}
}

// newReportGenerator builds the ephemeris stack from configuration:
// the VSOP87 data cache is filled if needed, then a provider reading
// from it is wrapped in a report generator.
func (a *App) newReportGenerator(ctx context.Context, cfg *config.ConfigData) (*report.Generator, error) {
	cacheDir := cfg.Ephemeris.CacheDir
	if cacheDir == "" {
		var err error
		cacheDir, err = ephemeris.DefaultCacheDir()
		if err != nil {
			return nil, err
		}
	}

	fetcher := ephemeris.NewFetcher(cfg.Ephemeris.BaseURL, cacheDir)
	dir, err := fetcher.Ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("preparing ephemeris data: %w", err)
	}

	return report.NewGenerator(ephemeris.NewVSOP87Provider(dir)), nil
}

// RunOnce composes both reports for instant t and either posts them or,
// with dryRun, prints them to stdout. This is the cron-style mode.
func (a *App) RunOnce(ctx context.Context, t time.Time, dryRun bool) error {
	cfg, err := a.configProvider.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	gen, err := a.newReportGenerator(ctx, cfg)
	if err != nil {
		return err
	}

	if dryRun {
		planets, err := gen.PlanetaryReport(t)
		if err != nil {
			return err
		}
		sunMoon, err := gen.SunMoonReport(t)
		if err != nil {
			return err
		}
		fmt.Println(planets)
		fmt.Println()
		fmt.Println(sunMoon)
		return nil
	}

	if cfg.Twitter == nil {
		return fmt.Errorf("no twitter credentials in config; use -dry-run to print reports instead")
	}

	var wg sync.WaitGroup
	poster, err := twitter.NewController(ctx, &wg, a.configProvider, *cfg.Twitter, gen, a.logger)
	if err != nil {
		return err
	}
	return poster.PostReportsAt(t)
}

// Run starts serve mode and blocks until shutdown: the report server
// if an http section is configured, and the posting schedule if
// twitter credentials are configured.
func (a *App) Run(ctx context.Context) error {
	cfg, err := a.configProvider.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	gen, err := a.newReportGenerator(ctx, cfg)
	if err != nil {
		return err
	}

	var started []controllers.Controller

	if cfg.Twitter != nil {
		poster, err := twitter.NewController(ctx, &wg, a.configProvider, *cfg.Twitter, gen, a.logger)
		if err != nil {
			return err
		}
		started = append(started, poster)
	}

	if cfg.HTTP != nil {
		server, err := restserver.NewController(ctx, &wg, a.configProvider, *cfg.HTTP, gen, a.logger)
		if err != nil {
			return err
		}
		started = append(started, server)
	}

	if len(started) == 0 {
		return fmt.Errorf("nothing to serve: config has neither twitter nor http sections")
	}

	for _, c := range started {
		if err := c.StartController(); err != nil {
			return err
		}
	}

	log.Info("Application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	// Cancel context to signal all goroutines to stop
	cancel()

	// Wait for all workers to terminate
	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}
