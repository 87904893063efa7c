package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/inkwell/internal/page"
)

var pricingCmd = &cobra.Command{
	Use:   "pricing [Monthly|Yearly]",
	Short: "List plan prices for a billing period",
	Long: `Lists the configured plans with their price for the chosen billing period.
Yearly prices are ten months of the monthly price.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(page.Monthly), string(page.Yearly)},
	RunE:      runPricing,
}

func init() {
	rootCmd.AddCommand(pricingCmd)
}

func runPricing(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	period := page.Monthly
	if len(args) == 1 {
		if period, err = page.ParsePeriod(args[0]); err != nil {
			return err
		}
	}

	pricing := page.NewPricing(plansFromConfig(cfg))
	if err := pricing.Switch(period); err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "PLAN\tPRICE\n")
	for i, plan := range pricing.Plans {
		fmt.Fprintf(w, "%s\t%s %s\n", plan.Name, pricing.Prices[i], pricing.PeriodLabel)
	}
	return w.Flush()
}
