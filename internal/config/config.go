package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override. A double underscore
// separates nesting levels: INKWELL_TYPING__TOKEN_DELAY_MS sets
// typing.token_delay_ms.
const EnvPrefix = "INKWELL_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (INKWELL_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// A configured plan list replaces the defaults instead of merging into them.
	if k.Exists("plans") {
		cfg.Plans = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps INKWELL_TYPING__CURSOR to typing.cursor.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if err := ValidateEndpoint(c.Endpoint); err != nil {
		return err
	}

	if c.PrefsDB == "" {
		return fmt.Errorf("prefs_db is required")
	}

	delays := map[string]int{
		"default_delay_ms":  c.Typing.DefaultDelayMs,
		"greeting_delay_ms": c.Typing.GreetingDelayMs,
		"boot_delay_ms":     c.Typing.BootDelayMs,
		"token_delay_ms":    c.Typing.TokenDelayMs,
		"notice_delay_ms":   c.Typing.NoticeDelayMs,
	}
	for name, v := range delays {
		if v < 0 {
			return fmt.Errorf("typing.%s must be non-negative", name)
		}
	}

	for i, p := range c.Plans {
		if p.Name == "" {
			return fmt.Errorf("plans[%d]: name is required", i)
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(p.MonthlyPrice), 64); err != nil {
			return fmt.Errorf("plans[%d] (%s): invalid monthly_price %q", i, p.Name, p.MonthlyPrice)
		}
	}

	return nil
}

// ValidateEndpoint checks that endpoint is a websocket URL.
func ValidateEndpoint(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("invalid endpoint %q: scheme must be ws or wss", endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: missing host", endpoint)
	}
	return nil
}
