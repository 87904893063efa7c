package config

// DefaultEndpoint is the production demo backend.
const DefaultEndpoint = "wss://dtgesfopsa.execute-api.eu-west-2.amazonaws.com/production/"

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".inkwell.yml"

// DefaultPlans are the plans listed on the pricing section.
var DefaultPlans = []PlanConfig{
	{Name: "Starter", MonthlyPrice: "9.99"},
	{Name: "Professional", MonthlyPrice: "24.99"},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Endpoint: DefaultEndpoint,
		PrefsDB:  ".inkwell/prefs.db",
		Typing: TypingConfig{
			Cursor:          "_",
			DefaultDelayMs:  50,
			GreetingDelayMs: 20,
			BootDelayMs:     40,
			TokenDelayMs:    10,
			NoticeDelayMs:   20,
		},
		Plans: append([]PlanConfig(nil), DefaultPlans...),
	}
}
