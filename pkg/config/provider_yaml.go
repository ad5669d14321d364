package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from the YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into a temporary struct with YAML tags
	var yamlConfig struct {
		Twitter *struct {
			APIKey            string `yaml:"api_key"`
			APISecretKey      string `yaml:"api_secret_key"`
			AccessToken       string `yaml:"access_token"`
			AccessTokenSecret string `yaml:"access_token_secret"`
			APIEndpoint       string `yaml:"api_endpoint"`
			PostInterval      string `yaml:"post_interval"`
		} `yaml:"twitter"`
		Ephemeris struct {
			CacheDir string `yaml:"cache_dir"`
			BaseURL  string `yaml:"base_url"`
		} `yaml:"ephemeris"`
		HTTP *struct {
			ListenAddr string `yaml:"listen_addr"`
		} `yaml:"http"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{
		Ephemeris: EphemerisData{
			CacheDir: yamlConfig.Ephemeris.CacheDir,
			BaseURL:  yamlConfig.Ephemeris.BaseURL,
		},
	}

	if yamlConfig.Twitter != nil {
		config.Twitter = &TwitterData{
			APIKey:            yamlConfig.Twitter.APIKey,
			APISecretKey:      yamlConfig.Twitter.APISecretKey,
			AccessToken:       yamlConfig.Twitter.AccessToken,
			AccessTokenSecret: yamlConfig.Twitter.AccessTokenSecret,
			APIEndpoint:       yamlConfig.Twitter.APIEndpoint,
			PostInterval:      yamlConfig.Twitter.PostInterval,
		}
	}

	if yamlConfig.HTTP != nil {
		config.HTTP = &HTTPData{
			ListenAddr: yamlConfig.HTTP.ListenAddr,
		}
	}

	return config, nil
}

// IsReadOnly returns true since YAML files are read-only configuration sources
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML providers
func (y *YAMLProvider) Close() error {
	return nil
}
