// Package config loads the demo binary configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the consumer settings of the demo binary
type Config struct {
	AppName         string `yaml:"app_name"`
	ConsumerKey     string `yaml:"consumer_key"`
	ConsumerSecret  string `yaml:"consumer_secret"`
	RequestTokenURL string `yaml:"request_token_url"`
	AuthorizeURL    string `yaml:"authorize_url"`
	AccessTokenURL  string `yaml:"access_token_url"`
	CallbackURL     string `yaml:"callback_url"`
	Scope           string `yaml:"scope"`
	Realm           string `yaml:"realm"`
}

// Load reads the configuration file when path is non-empty, then applies
// environment variable overrides on top.
func Load(path string) (Config, error) {
	cfg := Config{
		AppName:     "OAuth1 Demo",
		CallbackURL: "oob",
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config.Load: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config.Load: %w", err)
		}
	}

	cfg.AppName = GetEnv("APP_NAME", cfg.AppName)
	cfg.ConsumerKey = GetEnv("OAUTH_CONSUMER_KEY", cfg.ConsumerKey)
	cfg.ConsumerSecret = GetEnv("OAUTH_CONSUMER_SECRET", cfg.ConsumerSecret)
	cfg.RequestTokenURL = GetEnv("OAUTH_REQUEST_TOKEN_URL", cfg.RequestTokenURL)
	cfg.AuthorizeURL = GetEnv("OAUTH_AUTHORIZE_URL", cfg.AuthorizeURL)
	cfg.AccessTokenURL = GetEnv("OAUTH_ACCESS_TOKEN_URL", cfg.AccessTokenURL)
	cfg.CallbackURL = GetEnv("OAUTH_CALLBACK_URL", cfg.CallbackURL)
	cfg.Scope = GetEnv("OAUTH_SCOPE", cfg.Scope)
	cfg.Realm = GetEnv("OAUTH_REALM", cfg.Realm)
	return cfg, nil
}

// GetEnv returns the environment variable value or a default when unset
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
