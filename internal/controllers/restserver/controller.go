// Package restserver serves the bot's reports over HTTP for callers
// that want the text without going through the posting schedule.
package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/chrissnell/radecbot/internal/controllers"
	"github.com/chrissnell/radecbot/internal/log"
	"github.com/chrissnell/radecbot/pkg/config"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Controller is the HTTP report server.
type Controller struct {
	*controllers.ReportController
	HTTPConfig config.HTTPData

	reports controllers.ReportSource
	server  *http.Server
}

// NewController creates the report server for the configured listen
// address.
func NewController(ctx context.Context, wg *sync.WaitGroup, configProvider config.ConfigProvider, hcfg config.HTTPData, reports controllers.ReportSource, logger *zap.SugaredLogger) (*Controller, error) {
	if hcfg.ListenAddr == "" {
		return nil, fmt.Errorf("http listen_addr must be set in config")
	}

	c := &Controller{
		ReportController: controllers.NewReportController(ctx, wg, configProvider, logger),
		HTTPConfig:       hcfg,
		reports:          reports,
	}

	c.server = &http.Server{
		Addr:         hcfg.ListenAddr,
		Handler:      c.router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return c, nil
}

func (c *Controller) router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/report/planets", c.handlePlanets).Methods("GET")
	router.HandleFunc("/report/sunmoon", c.handleSunMoon).Methods("GET")
	router.HandleFunc("/healthz", c.handleHealth).Methods("GET")
	return router
}

// StartController begins serving and arranges a graceful shutdown when
// the controller context is cancelled.
func (c *Controller) StartController() error {
	log.Infof("Starting report server on %s...", c.HTTPConfig.ListenAddr)

	c.WG.Add(1)
	go func() {
		defer c.WG.Done()
		if err := c.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			c.Logger.Errorf("report server error: %v", err)
		}
	}()

	go func() {
		<-c.Ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.server.Shutdown(shutdownCtx); err != nil {
			c.Logger.Errorf("report server shutdown error: %v", err)
		}
	}()

	return nil
}

// reportInstant returns the instant a request asks for: an RFC3339
// "time" query parameter, or the current UTC time.
func reportInstant(r *http.Request) (time.Time, error) {
	param := r.URL.Query().Get("time")
	if param == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, param)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time parameter: %v", err)
	}
	return t.UTC(), nil
}

func (c *Controller) serveReport(w http.ResponseWriter, r *http.Request, compose func(time.Time) (string, error)) {
	t, err := reportInstant(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	text, err := compose(t)
	if err != nil {
		c.Logger.Errorf("error composing report: %v", err)
		http.Error(w, "report unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, text)
}

func (c *Controller) handlePlanets(w http.ResponseWriter, r *http.Request) {
	c.serveReport(w, r, c.reports.PlanetaryReport)
}

func (c *Controller) handleSunMoon(w http.ResponseWriter, r *http.Request) {
	c.serveReport(w, r, c.reports.SunMoonReport)
}

func (c *Controller) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}
