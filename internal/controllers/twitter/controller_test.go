package twitter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/chrissnell/radecbot/pkg/config"
	"go.uber.org/zap"
)

// fakeSource returns canned report texts.
type fakeSource struct {
	planets string
	sunMoon string
	err     error
}

func (f *fakeSource) PlanetaryReport(t time.Time) (string, error) { return f.planets, f.err }
func (f *fakeSource) SunMoonReport(t time.Time) (string, error)   { return f.sunMoon, f.err }

func newTestController(t *testing.T, endpoint string, source *fakeSource) *Controller {
	t.Helper()

	var wg sync.WaitGroup
	c, err := NewController(context.Background(), &wg, nil, config.TwitterData{
		APIKey:            "ck",
		APISecretKey:      "cs",
		AccessToken:       "at",
		AccessTokenSecret: "ats",
		APIEndpoint:       endpoint,
	}, source, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("NewController returned error: %v", err)
	}
	return c
}

func TestPostReportsAt(t *testing.T) {
	type posted struct {
		auth string
		text string
	}
	var mu sync.Mutex
	var statuses []posted

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("request method = %s, expected POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, expected application/json", ct)
		}

		body, _ := io.ReadAll(r.Body)
		var payload struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}

		mu.Lock()
		statuses = append(statuses, posted{auth: r.Header.Get("Authorization"), text: payload.Text})
		mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"1"}}`))
	}))
	defer server.Close()

	source := &fakeSource{planets: "planet report", sunMoon: "sun/moon report"}
	c := newTestController(t, server.URL, source)

	if err := c.PostReportsAt(time.Now()); err != nil {
		t.Fatalf("PostReportsAt returned error: %v", err)
	}

	if len(statuses) != 2 {
		t.Fatalf("server saw %d statuses, expected 2", len(statuses))
	}
	if statuses[0].text != "planet report" || statuses[1].text != "sun/moon report" {
		t.Errorf("statuses posted out of order: %+v", statuses)
	}
	for i, s := range statuses {
		if !strings.HasPrefix(s.auth, "OAuth ") {
			t.Errorf("status %d missing OAuth authorization header: %q", i, s.auth)
		}
	}
}

func TestPostReportsAtServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"title":"Forbidden"}`, http.StatusForbidden)
	}))
	defer server.Close()

	c := newTestController(t, server.URL, &fakeSource{planets: "p", sunMoon: "s"})
	if err := c.PostReportsAt(time.Now()); err == nil {
		t.Error("PostReportsAt succeeded against a 403 server, expected error")
	}
}

func TestPostReportsAtCompositionFailure(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := newTestController(t, server.URL, &fakeSource{err: errors.New("no ephemeris data")})
	if err := c.PostReportsAt(time.Now()); err == nil {
		t.Error("PostReportsAt succeeded with failing composition, expected error")
	}
	if requests != 0 {
		t.Errorf("server saw %d requests for a failed composition, expected 0", requests)
	}
}

func TestNewControllerValidatesCredentials(t *testing.T) {
	var wg sync.WaitGroup
	_, err := NewController(context.Background(), &wg, nil, config.TwitterData{
		APIKey: "ck",
	}, &fakeSource{}, zap.NewNop().Sugar())
	if err == nil {
		t.Error("NewController accepted incomplete credentials, expected error")
	}
}

func TestDefaultsApplied(t *testing.T) {
	var wg sync.WaitGroup
	c, err := NewController(context.Background(), &wg, nil, config.TwitterData{
		APIKey:            "ck",
		APISecretKey:      "cs",
		AccessToken:       "at",
		AccessTokenSecret: "ats",
	}, &fakeSource{}, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("NewController returned error: %v", err)
	}
	if c.TwitterConfig.APIEndpoint != defaultAPIEndpoint {
		t.Errorf("APIEndpoint = %q, expected %q", c.TwitterConfig.APIEndpoint, defaultAPIEndpoint)
	}
	if c.TwitterConfig.PostInterval != defaultPostInterval {
		t.Errorf("PostInterval = %q, expected %q", c.TwitterConfig.PostInterval, defaultPostInterval)
	}
}
