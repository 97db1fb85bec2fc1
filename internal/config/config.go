package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
)

// Config is the full server configuration, sourced from the environment.
type Config struct {
	ListenAddr         string
	ConferenceEndpoint string
	ConferenceAPIKey   string
	AppVariant         string
	StaticDir          string
	Debug              bool
	AccessLogPath      string
}

const (
	defaultListenAddr    = ":8080"
	defaultAppVariant    = "meeting"
	defaultStaticDir     = "./static"
	defaultAccessLogPath = "./logs/access.log"
)

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:         envOr("LISTEN_ADDR", defaultListenAddr),
		ConferenceEndpoint: os.Getenv("CONFERENCE_ENDPOINT"),
		ConferenceAPIKey:   os.Getenv("CONFERENCE_API_KEY"),
		AppVariant:         envOr("APP_VARIANT", defaultAppVariant),
		StaticDir:          envOr("STATIC_DIR", defaultStaticDir),
		AccessLogPath:      envOr("ACCESS_LOG", defaultAccessLogPath),
	}

	if raw := os.Getenv("DEBUG"); raw != "" {
		debug, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid DEBUG value %q: %w", raw, err)
		}
		cfg.Debug = debug
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for startup-fatal problems.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("LISTEN_ADDR must not be empty")
	}
	if c.ConferenceEndpoint == "" {
		return fmt.Errorf("CONFERENCE_ENDPOINT is required")
	}
	u, err := url.Parse(c.ConferenceEndpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("CONFERENCE_ENDPOINT %q is not a valid URL", c.ConferenceEndpoint)
	}
	if _, err := os.Stat(c.IndexPath()); err != nil {
		return fmt.Errorf("static page for variant %q: %w", c.AppVariant, err)
	}
	return nil
}

// IndexPath is the static page served for the configured app variant.
func (c *Config) IndexPath() string {
	return filepath.Join(c.StaticDir, c.AppVariant, "index.html")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
