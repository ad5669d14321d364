// Package config loads radecbot configuration from YAML files or
// SQLite databases behind a common provider interface.
package config

// ConfigProvider defines the interface for configuration data sources.
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure.
type ConfigData struct {
	Twitter   *TwitterData  `json:"twitter,omitempty"`
	Ephemeris EphemerisData `json:"ephemeris,omitempty"`
	HTTP      *HTTPData     `json:"http,omitempty"`
}

// TwitterData holds the posting credentials and schedule. The key names
// match the OAuth1 user-context credential set for the X API.
type TwitterData struct {
	APIKey            string `json:"api_key"`
	APISecretKey      string `json:"api_secret_key"`
	AccessToken       string `json:"access_token"`
	AccessTokenSecret string `json:"access_token_secret"`
	APIEndpoint       string `json:"api_endpoint,omitempty"`
	PostInterval      string `json:"post_interval,omitempty"`
}

// EphemerisData holds the VSOP87 data cache location and mirror URL.
// Empty fields select the built-in defaults.
type EphemerisData struct {
	CacheDir string `json:"cache_dir,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
}

// HTTPData holds the optional report server configuration.
type HTTPData struct {
	ListenAddr string `json:"listen_addr,omitempty"`
}
