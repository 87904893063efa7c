package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/inkwell/internal/config"
	"github.com/ziadkadry99/inkwell/internal/demo"
	"github.com/ziadkadry99/inkwell/internal/stream"
	"github.com/ziadkadry99/inkwell/internal/typewriter"
)

var demoCmd = &cobra.Command{
	Use:   "demo [profile-url]",
	Short: "Generate a personalised email for a LinkedIn profile",
	Long: `Connects to the demo backend, sends the profile URL, and types the generated
email as it streams in. Without an argument the URL is prompted for; the prompt
only accepts linkedin.com/in/<profile> URLs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().String("endpoint", "", "websocket URL of the demo backend (overrides config)")
	demoCmd.Flags().Duration("timeout", 0, "give up after this long (0 waits until the stream ends)")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if endpoint, _ := cmd.Flags().GetString("endpoint"); endpoint != "" {
		if err := config.ValidateEndpoint(endpoint); err != nil {
			return err
		}
		cfg.Endpoint = endpoint
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger := newLogger()
	out := cmd.OutOrStdout()

	client, err := stream.Dial(ctx, cfg.Endpoint, stream.Options{})
	if err != nil {
		return fmt.Errorf("connecting to demo backend: %w", err)
	}
	defer client.Close()
	logger.Printf("demo: connected to %s", cfg.Endpoint)

	sched := newSchedulerFromConfig(cfg, logger)
	defer sched.Close()
	display := typewriter.NewTerminalSink(out)

	ctrl := demo.NewController(sched, display, client,
		demo.WithDelays(delaysFromConfig(cfg)),
		demo.WithLogger(logger),
	)

	listenErr := make(chan error, 1)
	go func() { listenErr <- client.Listen(ctx, ctrl.HandleMessage) }()

	var profileURL string
	if len(args) == 1 {
		profileURL = args[0]
	} else {
		// Let the greeting finish before the prompt takes over the terminal.
		ctrl.Greet()
		if err := sched.Wait(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out)
		if profileURL, err = promptProfileURL(); err != nil {
			return err
		}
	}

	ctrl.InputChanged(profileURL)
	if !ctrl.Trigger().Enabled() {
		_, err := demo.ValidateProfileURL(profileURL)
		return err
	}
	if err := ctrl.Submit(ctx, profileURL); err != nil {
		return err
	}

	select {
	case <-ctrl.Ended():
	case err := <-listenErr:
		if err != nil {
			logger.Printf("demo: %v", err)
		}
		ctrl.Closed()
	case <-ctx.Done():
		sched.CancelCurrent()
		fmt.Fprintln(out)
		return ctx.Err()
	}

	if err := sched.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for output: %w", err)
	}
	fmt.Fprintln(out)
	return nil
}

// promptProfileURL asks for a profile URL, refusing anything that does not
// match the profile pattern.
func promptProfileURL() (string, error) {
	prompt := promptui.Prompt{
		Label: "LinkedIn profile URL",
		Validate: func(s string) error {
			_, err := demo.ValidateProfileURL(s)
			return err
		},
	}
	value, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("profile URL: %w", err)
	}
	return value, nil
}
