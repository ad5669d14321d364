package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// schema holds one row per section; rowid 1 is the active row.
const schema = `
CREATE TABLE IF NOT EXISTS twitter_config (
	api_key TEXT NOT NULL,
	api_secret_key TEXT NOT NULL,
	access_token TEXT NOT NULL,
	access_token_secret TEXT NOT NULL,
	api_endpoint TEXT NOT NULL DEFAULT '',
	post_interval TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS ephemeris_config (
	cache_dir TEXT NOT NULL DEFAULT '',
	base_url TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS http_config (
	listen_addr TEXT NOT NULL DEFAULT ''
);
`

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure config schema: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from the SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	twitter, err := s.getTwitterConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load twitter config: %w", err)
	}
	config.Twitter = twitter

	ephemeris, err := s.getEphemerisConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load ephemeris config: %w", err)
	}
	config.Ephemeris = ephemeris

	httpCfg, err := s.getHTTPConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load http config: %w", err)
	}
	config.HTTP = httpCfg

	return config, nil
}

func (s *SQLiteProvider) getTwitterConfig() (*TwitterData, error) {
	row := s.db.QueryRow(`SELECT api_key, api_secret_key, access_token, access_token_secret,
		api_endpoint, post_interval FROM twitter_config LIMIT 1`)

	t := &TwitterData{}
	err := row.Scan(&t.APIKey, &t.APISecretKey, &t.AccessToken, &t.AccessTokenSecret,
		&t.APIEndpoint, &t.PostInterval)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *SQLiteProvider) getEphemerisConfig() (EphemerisData, error) {
	row := s.db.QueryRow(`SELECT cache_dir, base_url FROM ephemeris_config LIMIT 1`)

	var e EphemerisData
	err := row.Scan(&e.CacheDir, &e.BaseURL)
	if err == sql.ErrNoRows {
		return EphemerisData{}, nil
	}
	if err != nil {
		return EphemerisData{}, err
	}
	return e, nil
}

func (s *SQLiteProvider) getHTTPConfig() (*HTTPData, error) {
	row := s.db.QueryRow(`SELECT listen_addr FROM http_config LIMIT 1`)

	h := &HTTPData{}
	err := row.Scan(&h.ListenAddr)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

// IsReadOnly returns false since SQLite databases support writes
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	return s.db.Close()
}
