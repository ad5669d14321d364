// Package twitter posts the bot's reports to the X API v2 using OAuth1
// user-context authentication.
package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/chrissnell/radecbot/internal/controllers"
	"github.com/chrissnell/radecbot/internal/log"
	"github.com/chrissnell/radecbot/pkg/config"
	"github.com/dghubble/oauth1"
	"go.uber.org/zap"
)

const (
	defaultAPIEndpoint  = "https://api.twitter.com/2/tweets"
	defaultPostInterval = "24h"
)

// Controller composes both reports on a schedule and posts each as an
// independent status.
type Controller struct {
	*controllers.ReportController
	TwitterConfig config.TwitterData

	reports    controllers.ReportSource
	httpClient *http.Client
}

// NewController creates a posting controller from validated credentials.
func NewController(ctx context.Context, wg *sync.WaitGroup, configProvider config.ConfigProvider, tcfg config.TwitterData, reports controllers.ReportSource, logger *zap.SugaredLogger) (*Controller, error) {
	base := controllers.NewReportController(ctx, wg, configProvider, logger)

	err := controllers.ValidateRequiredFields(map[string]string{
		"api key":             tcfg.APIKey,
		"api secret key":      tcfg.APISecretKey,
		"access token":        tcfg.AccessToken,
		"access token secret": tcfg.AccessTokenSecret,
	})
	if err != nil {
		return nil, err
	}

	// Set defaults
	if tcfg.APIEndpoint == "" {
		tcfg.APIEndpoint = defaultAPIEndpoint
	}
	if tcfg.PostInterval == "" {
		tcfg.PostInterval = defaultPostInterval
	}

	oauthConfig := oauth1.NewConfig(tcfg.APIKey, tcfg.APISecretKey)
	token := oauth1.NewToken(tcfg.AccessToken, tcfg.AccessTokenSecret)
	httpClient := oauthConfig.Client(ctx, token)
	httpClient.Timeout = 30 * time.Second

	return &Controller{
		ReportController: base,
		TwitterConfig:    tcfg,
		reports:          reports,
		httpClient:       httpClient,
	}, nil
}

// StartController begins the periodic posting schedule.
func (c *Controller) StartController() error {
	log.Info("Starting Twitter controller...")
	go c.sendPeriodicReports()
	return nil
}

func (c *Controller) sendPeriodicReports() {
	interval, err := time.ParseDuration(c.TwitterConfig.PostInterval)
	if err != nil {
		c.Logger.Errorf("error parsing post_interval: %v", err)
		return
	}
	c.RunPeriodic(interval, "twitter", c.PostReports)
}

// PostReports composes and posts both reports for the current instant.
func (c *Controller) PostReports() error {
	return c.PostReportsAt(time.Now().UTC())
}

// PostReportsAt composes both reports for t and posts them in fixed
// order: planetary first, then Sun & Moon. A composition failure of
// either report aborts the whole posting round.
func (c *Controller) PostReportsAt(t time.Time) error {
	planets, err := c.reports.PlanetaryReport(t)
	if err != nil {
		return fmt.Errorf("composing planetary report: %w", err)
	}
	sunMoon, err := c.reports.SunMoonReport(t)
	if err != nil {
		return fmt.Errorf("composing sun/moon report: %w", err)
	}

	if err := c.postStatus(planets); err != nil {
		return fmt.Errorf("posting planetary report: %w", err)
	}
	if err := c.postStatus(sunMoon); err != nil {
		return fmt.Errorf("posting sun/moon report: %w", err)
	}

	c.Logger.Infof("posted both reports for %v", t.Format(time.RFC3339))
	return nil
}

func (c *Controller) postStatus(text string) error {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("encoding status: %v", err)
	}

	req, err := http.NewRequestWithContext(c.Ctx, http.MethodPost, c.TwitterConfig.APIEndpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating HTTP request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending HTTP request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}

	c.Logger.Debugf("Response body: %s", string(body))

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad response from server (status %d): %v", resp.StatusCode, string(body))
	}
	return nil
}
