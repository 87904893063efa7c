package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/inkwell/internal/page"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the colour scheme",
	Long: `Shows the colour scheme in effect. A stored choice wins; without one the
prefers_dark setting from the config decides.`,
	Args: cobra.NoArgs,
	RunE: runTheme,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between the light and dark colour scheme",
	Args:  cobra.NoArgs,
	RunE:  runThemeToggle,
}

func init() {
	themeCmd.AddCommand(themeToggleCmd)
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, database, err := openPrefs(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	dark, err := page.ResolveTheme(cmd.Context(), store, cfg.PrefersDark)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), schemeName(dark))
	return nil
}

func runThemeToggle(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, database, err := openPrefs(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	dark, err := page.ResolveTheme(cmd.Context(), store, cfg.PrefersDark)
	if err != nil {
		return err
	}
	root := page.NewClassList()
	page.ApplyTheme(root, dark)

	dark, err = page.ToggleTheme(cmd.Context(), store, root)
	if err != nil {
		return err
	}
	newLogger().Printf("theme: root classes now %q", root.String())
	fmt.Fprintln(cmd.OutOrStdout(), schemeName(dark))
	return nil
}

func schemeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
