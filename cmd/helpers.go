package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ziadkadry99/inkwell/internal/config"
	"github.com/ziadkadry99/inkwell/internal/db"
	"github.com/ziadkadry99/inkwell/internal/demo"
	"github.com/ziadkadry99/inkwell/internal/page"
	"github.com/ziadkadry99/inkwell/internal/prefs"
	"github.com/ziadkadry99/inkwell/internal/typewriter"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `inkwell init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger returns the diagnostic logger. Diagnostics would interleave with
// the typed output, so they are only shown with --verbose.
func newLogger() *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// newSchedulerFromConfig creates the typing scheduler for a session.
func newSchedulerFromConfig(cfg *config.Config, logger *log.Logger) *typewriter.Scheduler {
	return typewriter.NewScheduler(
		typewriter.WithDefaultDelay(ms(cfg.Typing.DefaultDelayMs)),
		typewriter.WithCursor(cfg.Typing.Cursor),
		typewriter.WithLogger(logger),
	)
}

// delaysFromConfig converts the configured typing delays.
func delaysFromConfig(cfg *config.Config) demo.Delays {
	return demo.Delays{
		Greeting: ms(cfg.Typing.GreetingDelayMs),
		Booting:  ms(cfg.Typing.BootDelayMs),
		Token:    ms(cfg.Typing.TokenDelayMs),
		Notice:   ms(cfg.Typing.NoticeDelayMs),
	}
}

// plansFromConfig converts the configured pricing plans.
func plansFromConfig(cfg *config.Config) []page.Plan {
	plans := make([]page.Plan, len(cfg.Plans))
	for i, p := range cfg.Plans {
		plans[i] = page.Plan{Name: p.Name, MonthlyPrice: p.MonthlyPrice}
	}
	return plans
}

// openPrefs opens the preference store. The caller closes the returned DB.
func openPrefs(cfg *config.Config) (*prefs.Store, *db.DB, error) {
	database, err := db.Open(cfg.PrefsDB)
	if err != nil {
		return nil, nil, fmt.Errorf("opening preferences %s: %w", cfg.PrefsDB, err)
	}
	return prefs.NewStore(database), database, nil
}
