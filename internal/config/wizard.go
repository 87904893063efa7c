package config

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path, and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to inkwell! Let's configure the demo client.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Backend endpoint.
	endpointPrompt := promptui.Prompt{
		Label:    "Demo backend websocket URL",
		Default:  cfg.Endpoint,
		Validate: ValidateEndpoint,
	}
	endpoint, err := endpointPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("endpoint: %w", err)
	}
	cfg.Endpoint = endpoint

	// 2. System colour scheme, used when no theme has been chosen yet.
	schemePrompt := promptui.Select{
		Label: "Terminal colour scheme",
		Items: []string{"light", "dark"},
	}
	schemeIdx, _, err := schemePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("colour scheme: %w", err)
	}
	cfg.PrefersDark = schemeIdx == 1

	// 3. Preference database.
	dbPrompt := promptui.Prompt{
		Label:   "Preference database path",
		Default: cfg.PrefsDB,
	}
	prefsDB, err := dbPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("preference database: %w", err)
	}
	cfg.PrefsDB = prefsDB

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
