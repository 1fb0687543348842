package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Audit configures the translation audit.
type Audit struct {
	Root           string `env:"I18N_AUDIT_ROOT"            envDefault:"apps/web/src/app/admin"`
	Pattern        string `env:"I18N_AUDIT_PATTERN"         envDefault:"page.tsx"`
	CatalogPath    string `env:"I18N_AUDIT_CATALOG"         envDefault:"apps/web/messages/en.json"`
	OutputPath     string `env:"I18N_AUDIT_OUTPUT"          envDefault:"translation-audit-report.json"`
	Locale         string `env:"I18N_AUDIT_LOCALE"          envDefault:"en"`
	Timezone       string `env:"I18N_AUDIT_TIMEZONE"        envDefault:"UTC"`
	DiscordWebhook string `env:"I18N_AUDIT_DISCORD_WEBHOOK"`
	LogLevel       string `env:"LOG_LEVEL"                  envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT"                 envDefault:"text"`
}

// Smoke configures the settings smoke test.
type Smoke struct {
	BaseURL   string        `env:"SETTINGS_SMOKE_BASE_URL" envDefault:"http://localhost:4000/api/v1"`
	Email     string        `env:"SETTINGS_SMOKE_EMAIL"`
	Password  string        `env:"SETTINGS_SMOKE_PASSWORD"`
	Key       string        `env:"SETTINGS_SMOKE_KEY"      envDefault:"escrow_hold_period_days"`
	Value     string        `env:"SETTINGS_SMOKE_VALUE"    envDefault:"14"`
	Timeout   time.Duration `env:"SETTINGS_SMOKE_TIMEOUT"  envDefault:"10s"`
	Locale    string        `env:"SETTINGS_SMOKE_LOCALE"   envDefault:"en"`
	Strict    bool          `env:"SETTINGS_SMOKE_STRICT"`
	LogLevel  string        `env:"LOG_LEVEL"               envDefault:"info"`
	LogFormat string        `env:"LOG_FORMAT"              envDefault:"text"`
}

// loadDotEnv reads .env when present; variables may come from the
// environment alone (CI, containers).
func loadDotEnv() {
	_ = godotenv.Load()
}

// LoadAudit reads the audit configuration from .env and the environment.
// Call Validate after applying flag overrides.
func LoadAudit() (*Audit, error) {
	loadDotEnv()
	cfg := &Audit{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoadSmoke reads the smoke test configuration from .env and the environment.
// Call Validate after applying flag overrides.
func LoadSmoke() (*Smoke, error) {
	loadDotEnv()
	cfg := &Smoke{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate checks the audit configuration.
func (c *Audit) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("config: I18N_AUDIT_ROOT is required")
	}
	if strings.TrimSpace(c.Pattern) == "" {
		return fmt.Errorf("config: I18N_AUDIT_PATTERN is required")
	}
	if strings.TrimSpace(c.CatalogPath) == "" {
		return fmt.Errorf("config: I18N_AUDIT_CATALOG is required")
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("config: I18N_AUDIT_OUTPUT is required")
	}
	switch strings.ToLower(filepath.Ext(c.CatalogPath)) {
	case ".json", ".toml", ".yaml", ".yml":
	default:
		return fmt.Errorf("config: I18N_AUDIT_CATALOG must be a .json, .toml, .yaml or .yml file (%q)", c.CatalogPath)
	}
	if c.DiscordWebhook != "" {
		if err := validateURL("I18N_AUDIT_DISCORD_WEBHOOK", c.DiscordWebhook); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the smoke test configuration.
func (c *Smoke) Validate() error {
	if err := validateURL("SETTINGS_SMOKE_BASE_URL", c.BaseURL); err != nil {
		return err
	}
	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("config: SETTINGS_SMOKE_EMAIL is required")
	}
	if c.Password == "" {
		return fmt.Errorf("config: SETTINGS_SMOKE_PASSWORD is required")
	}
	if strings.TrimSpace(c.Key) == "" {
		return fmt.Errorf("config: SETTINGS_SMOKE_KEY is required")
	}
	if !json.Valid([]byte(c.Value)) {
		return fmt.Errorf("config: SETTINGS_SMOKE_VALUE must be a JSON literal (%q)", c.Value)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: SETTINGS_SMOKE_TIMEOUT must be positive")
	}
	return nil
}

// TestValue is the configured value as raw JSON.
func (c *Smoke) TestValue() json.RawMessage {
	return json.RawMessage(c.Value)
}

func validateURL(name, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: %s invalid (%q): %w", name, raw, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: %s invalid (%q): missing scheme or host", name, raw)
	}
	return nil
}
