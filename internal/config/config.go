package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"github.com/zhubert/botconsole/internal/errors"
)

// Defaults applied before the config file and environment are read
const (
	DefaultAPIURL         = "http://localhost:8000"
	DefaultTestUserID     = "test_user_123"
	DefaultStatsInterval  = 5 * time.Second
	MinStatsInterval      = time.Second
	DefaultDotEnvFilename = ".env"
)

// Environment variables that override the config file
const (
	EnvAPIURL       = "BOTCONSOLE_API_URL"
	EnvLegacyAPIURL = "REACT_APP_API_URL"
	EnvTestUserID   = "BOTCONSOLE_USER_ID"
)

// Config holds the console configuration
type Config struct {
	APIURL                string `json:"api_url,omitempty"`                 // Base URL of the chat backend
	TestUserID            string `json:"test_user_id,omitempty"`            // Recipient id used by the chat simulator
	StatsIntervalSeconds  int    `json:"stats_interval_seconds,omitempty"`  // Stats poll period
	RequestTimeoutSeconds int    `json:"request_timeout_seconds,omitempty"` // 0 keeps the transport default
	NotificationsEnabled  bool   `json:"notifications_enabled,omitempty"`   // Desktop notifications for settings results

	mu sync.RWMutex
}

// Default returns a config populated with built-in defaults and no backing file
func Default() *Config {
	return &Config{
		APIURL:               DefaultAPIURL,
		TestUserID:           DefaultTestUserID,
		StatsIntervalSeconds: int(DefaultStatsInterval / time.Second),
	}
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".botconsole"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads ~/.botconsole/config.json, then overlays .env and the process
// environment. A missing config file is not an error. The result is not
// validated so callers can apply flag overrides first.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		return nil, err
	}

	// godotenv never overrides variables already set in the environment
	if err := godotenv.Load(DefaultDotEnvFilename); err != nil && !os.IsNotExist(err) {
		return nil, errors.ConfigLoadFailed(DefaultDotEnvFilename, err)
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// LoadFrom reads the config file at path on top of the defaults.
// Environment overrides are not applied.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	cfg.ensureDefaults()
	return cfg, nil
}

// ensureDefaults restores defaults for fields an existing file left empty
func (c *Config) ensureDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.TestUserID == "" {
		c.TestUserID = DefaultTestUserID
	}
	if c.StatsIntervalSeconds == 0 {
		c.StatsIntervalSeconds = int(DefaultStatsInterval / time.Second)
	}
}

// ApplyEnv overrides fields from environment variables using lookup.
// BOTCONSOLE_API_URL takes precedence over REACT_APP_API_URL.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := lookup(EnvLegacyAPIURL); ok && v != "" {
		c.APIURL = v
	}
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		c.APIURL = v
	}
	if v, ok := lookup(EnvTestUserID); ok && v != "" {
		c.TestUserID = v
	}
}

// Validate checks that the config can be used to reach the backend.
// It also normalizes the API URL by trimming trailing slashes.
func (c *Config) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.ConfigInvalid(fmt.Sprintf("invalid api url %q", c.APIURL))
	}
	if strings.TrimSpace(c.TestUserID) == "" {
		return errors.ConfigInvalid("test user id is empty")
	}
	if time.Duration(c.StatsIntervalSeconds)*time.Second < MinStatsInterval {
		return errors.ConfigInvalid(fmt.Sprintf("stats interval must be at least %s", MinStatsInterval))
	}
	if c.RequestTimeoutSeconds < 0 {
		return errors.ConfigInvalid("request timeout cannot be negative")
	}
	return nil
}

// GetAPIURL returns the backend base URL
func (c *Config) GetAPIURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.APIURL
}

// SetAPIURL sets the backend base URL
func (c *Config) SetAPIURL(u string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.APIURL = u
}

// GetTestUserID returns the recipient id used by the chat simulator
func (c *Config) GetTestUserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.TestUserID
}

// SetTestUserID sets the recipient id used by the chat simulator
func (c *Config) SetTestUserID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.TestUserID = id
}

// StatsInterval returns the stats poll period
func (c *Config) StatsInterval() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.StatsIntervalSeconds) * time.Second
}

// RequestTimeout returns the HTTP client timeout; zero means no explicit timeout
func (c *Config) RequestTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}
