package config

// Config is the top-level inkwell configuration, corresponding to .inkwell.yml.
type Config struct {
	Endpoint    string       `yaml:"endpoint" koanf:"endpoint"`
	PrefsDB     string       `yaml:"prefs_db" koanf:"prefs_db"`
	PrefersDark bool         `yaml:"prefers_dark" koanf:"prefers_dark"`
	Typing      TypingConfig `yaml:"typing" koanf:"typing"`
	Plans       []PlanConfig `yaml:"plans" koanf:"plans"`
}

// TypingConfig holds the typewriter cursor and per-character delays in
// milliseconds.
type TypingConfig struct {
	Cursor          string `yaml:"cursor" koanf:"cursor"`
	DefaultDelayMs  int    `yaml:"default_delay_ms" koanf:"default_delay_ms"`
	GreetingDelayMs int    `yaml:"greeting_delay_ms" koanf:"greeting_delay_ms"`
	BootDelayMs     int    `yaml:"boot_delay_ms" koanf:"boot_delay_ms"`
	TokenDelayMs    int    `yaml:"token_delay_ms" koanf:"token_delay_ms"`
	NoticeDelayMs   int    `yaml:"notice_delay_ms" koanf:"notice_delay_ms"`
}

// PlanConfig is a pricing plan. MonthlyPrice is kept as written so that it
// is displayed exactly as configured.
type PlanConfig struct {
	Name         string `yaml:"name" koanf:"name"`
	MonthlyPrice string `yaml:"monthly_price" koanf:"monthly_price"`
}
