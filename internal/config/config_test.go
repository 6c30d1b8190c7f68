package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/zhubert/botconsole/internal/errors"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.GetAPIURL() != "http://localhost:8000" {
		t.Errorf("APIURL = %q", cfg.GetAPIURL())
	}
	if cfg.GetTestUserID() != "test_user_123" {
		t.Errorf("TestUserID = %q", cfg.GetTestUserID())
	}
	if cfg.StatsInterval() != 5*time.Second {
		t.Errorf("StatsInterval = %v", cfg.StatsInterval())
	}
	if cfg.RequestTimeout() != 0 {
		t.Errorf("RequestTimeout = %v, want 0", cfg.RequestTimeout())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg.GetAPIURL() != DefaultAPIURL {
		t.Errorf("expected default api url, got %q", cfg.GetAPIURL())
	}
}

func TestLoadFrom_LeavesNoFileBehind(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".botconsole")
	cfg, err := LoadFrom(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	cfg.SetTestUserID("changed")
	cfg.SetNotificationsEnabled(true)

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("loading and changing the config should not create anything on disk")
	}
}

func TestLoadFrom_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"api_url": "https://bot.example.com/", "stats_interval_seconds": 10, "notifications_enabled": true}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if cfg.GetAPIURL() != "https://bot.example.com/" {
		t.Errorf("APIURL = %q", cfg.GetAPIURL())
	}
	if cfg.GetTestUserID() != DefaultTestUserID {
		t.Errorf("empty test user id should fall back to default, got %q", cfg.GetTestUserID())
	}
	if cfg.StatsInterval() != 10*time.Second {
		t.Errorf("StatsInterval = %v", cfg.StatsInterval())
	}
	if !cfg.GetNotificationsEnabled() {
		t.Error("NotificationsEnabled should be true")
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("expected KindConfig, got %v", errors.GetKind(err))
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantURL  string
		wantUser string
	}{
		{"no overrides", map[string]string{}, DefaultAPIURL, DefaultTestUserID},
		{"legacy url", map[string]string{EnvLegacyAPIURL: "http://legacy:1"}, "http://legacy:1", DefaultTestUserID},
		{"new url wins", map[string]string{EnvLegacyAPIURL: "http://legacy:1", EnvAPIURL: "http://new:2"}, "http://new:2", DefaultTestUserID},
		{"empty value ignored", map[string]string{EnvAPIURL: ""}, DefaultAPIURL, DefaultTestUserID},
		{"user id", map[string]string{EnvTestUserID: "ig_42"}, DefaultAPIURL, "ig_42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.ApplyEnv(envMap(tt.env))
			if cfg.GetAPIURL() != tt.wantURL {
				t.Errorf("APIURL = %q, want %q", cfg.GetAPIURL(), tt.wantURL)
			}
			if cfg.GetTestUserID() != tt.wantUser {
				t.Errorf("TestUserID = %q, want %q", cfg.GetTestUserID(), tt.wantUser)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"no scheme", func(c *Config) { c.APIURL = "localhost:8000" }, true},
		{"no host", func(c *Config) { c.APIURL = "http://" }, true},
		{"garbage", func(c *Config) { c.APIURL = "::::" }, true},
		{"blank user", func(c *Config) { c.TestUserID = "   " }, true},
		{"interval too small", func(c *Config) { c.StatsIntervalSeconds = 0 }, true},
		{"negative timeout", func(c *Config) { c.RequestTimeoutSeconds = -1 }, true},
		{"positive timeout", func(c *Config) { c.RequestTimeoutSeconds = 30 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.KindInvalid) {
				t.Errorf("expected KindInvalid, got %v", errors.GetKind(err))
			}
		})
	}
}

func TestValidate_TrimsTrailingSlash(t *testing.T) {
	cfg := Default()
	cfg.SetAPIURL("http://localhost:8000///")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if cfg.GetAPIURL() != "http://localhost:8000" {
		t.Errorf("APIURL = %q, want trailing slashes trimmed", cfg.GetAPIURL())
	}
}

func TestLoad_UsesHomeAndEnv(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)
	t.Setenv(EnvAPIURL, "http://from-env:9000/")
	t.Setenv(EnvTestUserID, "")
	t.Chdir(t.TempDir()) // no .env in the working directory

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if cfg.GetAPIURL() != "http://from-env:9000" {
		t.Errorf("APIURL = %q", cfg.GetAPIURL())
	}
	if cfg.GetTestUserID() != DefaultTestUserID {
		t.Errorf("TestUserID = %q", cfg.GetTestUserID())
	}
}

func TestLoad_DefersValidation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvLegacyAPIURL, "")
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".botconsole")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"api_url": "not a url"}`), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not validate, got %v", err)
	}
	if cfg.Validate() == nil {
		t.Fatal("expected the file's api url to fail validation")
	}

	cfg.SetAPIURL("http://override:1")
	if err := cfg.Validate(); err != nil {
		t.Errorf("override should make the config valid: %v", err)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvAPIURL, "")
	os.Unsetenv(EnvAPIURL)
	t.Setenv(EnvTestUserID, "")
	os.Unsetenv(EnvTestUserID)
	t.Setenv(EnvLegacyAPIURL, "")
	os.Unsetenv(EnvLegacyAPIURL)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BOTCONSOLE_USER_ID=dotenv_user\n"), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv(EnvTestUserID) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.GetTestUserID() != "dotenv_user" {
		t.Errorf("TestUserID = %q, want value from .env", cfg.GetTestUserID())
	}
}
