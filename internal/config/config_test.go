package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("expected default endpoint %q, got %q", DefaultEndpoint, cfg.Endpoint)
	}
	if cfg.Typing.DefaultDelayMs != 50 {
		t.Errorf("expected default delay 50, got %d", cfg.Typing.DefaultDelayMs)
	}
	if cfg.Typing.TokenDelayMs != 10 {
		t.Errorf("expected token delay 10, got %d", cfg.Typing.TokenDelayMs)
	}
	if cfg.Typing.Cursor != "_" {
		t.Errorf("expected cursor %q, got %q", "_", cfg.Typing.Cursor)
	}
	if len(cfg.Plans) != len(DefaultPlans) {
		t.Errorf("expected %d plans, got %d", len(DefaultPlans), len(cfg.Plans))
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.inkwell.yml")

	original := DefaultConfig()
	original.Endpoint = "ws://localhost:9000/demo"
	original.PrefersDark = true
	original.Typing.TokenDelayMs = 3
	original.Plans = []PlanConfig{{Name: "Solo", MonthlyPrice: "4.50"}}

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Endpoint != original.Endpoint {
		t.Errorf("endpoint: got %q, want %q", loaded.Endpoint, original.Endpoint)
	}
	if !loaded.PrefersDark {
		t.Error("prefers_dark: got false, want true")
	}
	if loaded.Typing.TokenDelayMs != 3 {
		t.Errorf("token_delay_ms: got %d, want 3", loaded.Typing.TokenDelayMs)
	}
	if len(loaded.Plans) != 1 {
		t.Fatalf("plans length: got %d, want 1", len(loaded.Plans))
	}
	if loaded.Plans[0] != original.Plans[0] {
		t.Errorf("plans[0]: got %+v, want %+v", loaded.Plans[0], original.Plans[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("expected default endpoint, got %q", cfg.Endpoint)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("INKWELL_ENDPOINT", "wss://staging.example.com/ws")
	t.Setenv("INKWELL_TYPING__CURSOR", "|")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Endpoint != "wss://staging.example.com/ws" {
		t.Errorf("env override failed: got %q", loaded.Endpoint)
	}
	if loaded.Typing.Cursor != "|" {
		t.Errorf("nested env override failed: got %q", loaded.Typing.Cursor)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("endpoint: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		ok       bool
	}{
		{"wss://example.com/production/", true},
		{"ws://localhost:8080", true},
		{"https://example.com", false},
		{"", false},
		{"ws://", false},
		{"::not a url", false},
	}
	for _, tt := range tests {
		err := ValidateEndpoint(tt.endpoint)
		if (err == nil) != tt.ok {
			t.Errorf("ValidateEndpoint(%q) error = %v, want ok=%v", tt.endpoint, err, tt.ok)
		}
	}
}

func TestValidateEmptyPrefsDB(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PrefsDB = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty prefs_db")
	}
}

func TestValidateNegativeDelay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Typing.BootDelayMs = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative boot_delay_ms")
	}
}

func TestValidateBadPlan(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Plans = []PlanConfig{{Name: "Broken", MonthlyPrice: "cheap"}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for non-numeric price")
	}

	cfg.Plans = []PlanConfig{{MonthlyPrice: "1"}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unnamed plan")
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"INKWELL_ENDPOINT", "endpoint"},
		{"INKWELL_PREFS_DB", "prefs_db"},
		{"INKWELL_TYPING__TOKEN_DELAY_MS", "typing.token_delay_ms"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
