// Package config loads the server configuration from an optional YAML file
// and environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // time_zone must resolve on hosts without a zoneinfo database

	"gopkg.in/yaml.v3"

	"github.com/biggame27/stock-checker/internal/platform/externalapi/yahoo"
)

// DefaultPath is read when CONFIG_FILE is not set.
const DefaultPath = "config.yaml"

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port             string   `yaml:"port"`
		GinMode          string   `yaml:"gin_mode"`
		CORSAllowOrigins []string `yaml:"cors_allow_origins"`
		Title            string   `yaml:"title"`
		TimeZone         string   `yaml:"time_zone"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Yahoo struct {
		BaseURL   string        `yaml:"base_url"`
		CookieURL string        `yaml:"cookie_url"`
		UserAgent string        `yaml:"user_agent"`
		Timeout   time.Duration `yaml:"timeout"`
	} `yaml:"yahoo"`
}

// Path returns the config file named by CONFIG_FILE, or DefaultPath.
func Path() string {
	if v := os.Getenv("CONFIG_FILE"); v != "" {
		return v
	}
	return DefaultPath
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.Server.GinMode = v
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		cfg.Server.CORSAllowOrigins = splitList(v)
	}
	if v := os.Getenv("DISPLAY_TIMEZONE"); v != "" {
		cfg.Server.TimeZone = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.Yahoo.BaseURL = v
	}
	// An explicitly empty YAHOO_COOKIE_URL disables the cookie visit.
	cookieURL, cookieSet := os.LookupEnv("YAHOO_COOKIE_URL")
	if cookieSet {
		cfg.Yahoo.CookieURL = cookieURL
	}
	if v := os.Getenv("YAHOO_USER_AGENT"); v != "" {
		cfg.Yahoo.UserAgent = v
	}
	if v := os.Getenv("YAHOO_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse YAHOO_TIMEOUT: %w", err)
		}
		cfg.Yahoo.Timeout = d
	}

	// Defaults
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if len(cfg.Server.CORSAllowOrigins) == 0 {
		cfg.Server.CORSAllowOrigins = []string{"*"}
	}
	if cfg.Server.Title == "" {
		cfg.Server.Title = "Stock Checker"
	}
	if cfg.Server.TimeZone == "" {
		cfg.Server.TimeZone = "UTC"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Yahoo.CookieURL == "" && !cookieSet {
		cfg.Yahoo.CookieURL = yahoo.DefaultCookieURL
	}
	if cfg.Yahoo.Timeout <= 0 {
		cfg.Yahoo.Timeout = yahoo.DefaultTimeout
	}

	return cfg, nil
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.Server.TimeZone); err != nil {
		return fmt.Errorf("server.time_zone: %w", err)
	}
	switch c.Server.GinMode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("server.gin_mode must be debug, release or test, got %q", c.Server.GinMode)
	}
	return nil
}

// YahooConfig returns the provider client configuration with defaults applied.
func (c *Config) YahooConfig() yahoo.Config {
	return yahoo.Config{
		BaseURL:   c.Yahoo.BaseURL,
		CookieURL: c.Yahoo.CookieURL,
		UserAgent: c.Yahoo.UserAgent,
		Timeout:   c.Yahoo.Timeout,
	}.WithDefaults()
}

// Location returns the display time zone. Validate must have succeeded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Server.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
