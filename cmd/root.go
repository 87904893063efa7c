package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ziadkadry99/inkwell/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "Personalised emails from LinkedIn profiles, typed out live",
	Long: `inkwell is the terminal client for the inkwell demo. Give it a LinkedIn
profile URL and it asks the generation backend for a personalised email,
typing the reply out character by character as it streams in.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
