// Package controllers holds the bot's output controllers and the
// plumbing they share.
package controllers

import (
	"context"
	"sync"
	"time"

	"github.com/chrissnell/radecbot/pkg/config"
	"go.uber.org/zap"
)

// Controller is anything the app can start.
type Controller interface {
	StartController() error
}

// ReportSource computes the two report texts for an instant. The
// report.Generator satisfies this.
type ReportSource interface {
	PlanetaryReport(t time.Time) (string, error)
	SunMoonReport(t time.Time) (string, error)
}

// ReportController is the embedded base for output controllers.
type ReportController struct {
	Ctx            context.Context
	WG             *sync.WaitGroup
	ConfigProvider config.ConfigProvider
	Logger         *zap.SugaredLogger
}

// NewReportController creates the shared controller base.
func NewReportController(ctx context.Context, wg *sync.WaitGroup, configProvider config.ConfigProvider, logger *zap.SugaredLogger) *ReportController {
	return &ReportController{
		Ctx:            ctx,
		WG:             wg,
		ConfigProvider: configProvider,
		Logger:         logger,
	}
}

// RunPeriodic runs fn immediately and then once per interval until the
// controller context is cancelled. Failures are logged and the loop
// keeps going; a transient outage should not stop the schedule.
func (rc *ReportController) RunPeriodic(interval time.Duration, name string, fn func() error) {
	rc.WG.Add(1)
	defer rc.WG.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := fn(); err != nil {
			rc.Logger.Errorf("error sending %s report: %v", name, err)
		}

		select {
		case <-ticker.C:
		case <-rc.Ctx.Done():
			return
		}
	}
}
