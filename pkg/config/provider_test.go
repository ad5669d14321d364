package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
twitter:
  api_key: key
  api_secret_key: secret
  access_token: token
  access_token_secret: token-secret
  post_interval: 24h
ephemeris:
  cache_dir: /var/cache/radecbot
  base_url: https://example.com/vsop87
http:
  listen_addr: ":8080"
`

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestYAMLProviderLoadConfig(t *testing.T) {
	provider := NewYAMLProvider(writeTempConfig(t, sampleYAML))
	defer provider.Close()

	cfg, err := provider.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Twitter == nil {
		t.Fatal("Twitter section missing")
	}
	if cfg.Twitter.APIKey != "key" || cfg.Twitter.APISecretKey != "secret" {
		t.Errorf("unexpected twitter credentials: %+v", cfg.Twitter)
	}
	if cfg.Twitter.AccessToken != "token" || cfg.Twitter.AccessTokenSecret != "token-secret" {
		t.Errorf("unexpected twitter tokens: %+v", cfg.Twitter)
	}
	if cfg.Twitter.PostInterval != "24h" {
		t.Errorf("PostInterval = %q, expected %q", cfg.Twitter.PostInterval, "24h")
	}
	if cfg.Ephemeris.CacheDir != "/var/cache/radecbot" {
		t.Errorf("CacheDir = %q, expected %q", cfg.Ephemeris.CacheDir, "/var/cache/radecbot")
	}
	if cfg.Ephemeris.BaseURL != "https://example.com/vsop87" {
		t.Errorf("BaseURL = %q, expected %q", cfg.Ephemeris.BaseURL, "https://example.com/vsop87")
	}
	if cfg.HTTP == nil || cfg.HTTP.ListenAddr != ":8080" {
		t.Errorf("unexpected http config: %+v", cfg.HTTP)
	}
}

func TestYAMLProviderOmittedSections(t *testing.T) {
	provider := NewYAMLProvider(writeTempConfig(t, "ephemeris:\n  cache_dir: /tmp/eph\n"))

	cfg, err := provider.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Twitter != nil {
		t.Errorf("Twitter = %+v, expected nil for omitted section", cfg.Twitter)
	}
	if cfg.HTTP != nil {
		t.Errorf("HTTP = %+v, expected nil for omitted section", cfg.HTTP)
	}
	if cfg.Ephemeris.CacheDir != "/tmp/eph" {
		t.Errorf("CacheDir = %q, expected %q", cfg.Ephemeris.CacheDir, "/tmp/eph")
	}
}

func TestYAMLProviderMissingFile(t *testing.T) {
	provider := NewYAMLProvider(filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := provider.LoadConfig(); err == nil {
		t.Error("LoadConfig succeeded for a missing file, expected error")
	}
}

func TestSQLiteProviderRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "config.db")

	provider, err := NewSQLiteProvider(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteProvider returned error: %v", err)
	}
	defer provider.Close()

	// A fresh database has the schema but no rows: optional sections
	// come back nil.
	cfg, err := provider.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig on empty database returned error: %v", err)
	}
	if cfg.Twitter != nil || cfg.HTTP != nil {
		t.Errorf("empty database produced non-nil sections: %+v", cfg)
	}

	_, err = provider.db.Exec(`INSERT INTO twitter_config
		(api_key, api_secret_key, access_token, access_token_secret, post_interval)
		VALUES ('k', 's', 'at', 'ats', '12h')`)
	if err != nil {
		t.Fatalf("seeding twitter_config: %v", err)
	}
	_, err = provider.db.Exec(`INSERT INTO ephemeris_config (cache_dir, base_url)
		VALUES ('/tmp/eph', 'https://example.com')`)
	if err != nil {
		t.Fatalf("seeding ephemeris_config: %v", err)
	}

	cfg, err = provider.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Twitter == nil || cfg.Twitter.APIKey != "k" || cfg.Twitter.PostInterval != "12h" {
		t.Errorf("unexpected twitter config: %+v", cfg.Twitter)
	}
	if cfg.Ephemeris.CacheDir != "/tmp/eph" || cfg.Ephemeris.BaseURL != "https://example.com" {
		t.Errorf("unexpected ephemeris config: %+v", cfg.Ephemeris)
	}

	if provider.IsReadOnly() {
		t.Error("SQLite provider reports read-only")
	}
}
