package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataSource.Provider != "yahoo" {
		t.Errorf("expected yahoo provider, got %q", cfg.DataSource.Provider)
	}
	if cfg.DataSource.Period != "1y" || cfg.DataSource.Interval != "1d" {
		t.Errorf("unexpected period/interval defaults: %s/%s", cfg.DataSource.Period, cfg.DataSource.Interval)
	}
	if cfg.Analysis.TrendWindow != 10 {
		t.Errorf("expected trend window 10, got %d", cfg.Analysis.TrendWindow)
	}
	if cfg.Cache.TTL != 30*time.Minute {
		t.Errorf("expected 30m cache ttl, got %v", cfg.Cache.TTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_YAMLAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
data_source:
  provider: vstrader
  base_url: http://example.invalid
  symbol: AAPL
  period: 6mo
analysis:
  require_full_window: true
  trend_window: 12
cache:
  ttl: 5m
telegram:
  bot_token: from-file
  chat_id: 1001
`)
	t.Setenv("TRENDSCOPE_SYMBOL", "TSLA")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataSource.Symbol != "TSLA" {
		t.Errorf("env should override symbol, got %q", cfg.DataSource.Symbol)
	}
	if cfg.DataSource.Period != "6mo" {
		t.Errorf("expected period from file, got %q", cfg.DataSource.Period)
	}
	if !cfg.Analysis.RequireFullWindow || cfg.Analysis.TrendWindow != 12 {
		t.Errorf("analysis section not loaded: %+v", cfg.Analysis)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("expected 5m ttl, got %v", cfg.Cache.TTL)
	}
	if cfg.Telegram.ChatID != 42 || cfg.Telegram.BotToken != "from-file" {
		t.Errorf("unexpected telegram section: %+v", cfg.Telegram)
	}
	if err := cfg.ValidateWatch(); err != nil {
		t.Errorf("expected watch config to validate: %v", err)
	}
}

func TestLoad_BadChatID(t *testing.T) {
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for malformed TELEGRAM_CHAT_ID")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "data_source: [unterminated")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"unknown provider", func(c *Config) { c.DataSource.Provider = "bloomberg" }, false},
		{"vstrader without url", func(c *Config) { c.DataSource.Provider = "vstrader"; c.DataSource.BaseURL = "" }, false},
		{"tiny trend window", func(c *Config) { c.Analysis.TrendWindow = 1 }, false},
	}
	for _, tt := range tests {
		cfg := &Config{}
		cfg.applyDefaults()
		tt.mutate(cfg)
		err := cfg.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestValidateWatch_RequiresTelegram(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.DataSource.Symbol = "AAPL"
	if err := cfg.ValidateWatch(); err == nil {
		t.Fatal("expected error without telegram settings")
	}
	cfg.Telegram.BotToken = "token"
	cfg.Telegram.ChatID = 7
	if err := cfg.ValidateWatch(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
