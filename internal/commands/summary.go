package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Markwang0203/Money-Notes-App/internal/analytics"
)

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals, budget usage and top categories for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, svc, err := opts.open()
			if err != nil {
				return err
			}

			txns, err := svc.List()
			if err != nil {
				return err
			}
			version, err := svc.Version()
			if err != nil {
				return err
			}

			if month == "" {
				month = currentMonth()
			}

			// One snapshot feeds several views; the cache keys them all
			// under the same log version.
			views := analytics.NewCache()

			totals := views.Totals(version, txns)
			fmt.Printf("All time: income %s, expenses %s, net %s\n\n",
				totals.Income.StringFixed(2), totals.Expense.StringFixed(2), totals.Net.StringFixed(2))

			fmt.Printf("Top categories for %s:\n", month)
			breakdown := views.Breakdown(version, txns, month)
			if len(breakdown) == 0 {
				fmt.Println("  (no expenses)")
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, ct := range breakdown {
				attrs := ct.Category.Attributes()
				fmt.Fprintf(tw, "  %s %s\t%s\n", attrs.Icon, attrs.Label, ct.Total.StringFixed(2))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			lines := views.BudgetStatus(version, txns, cfg.Budgets, month)
			if len(lines) > 0 {
				fmt.Println("\nBudgets:")
				printBudgetLines(lines)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month key YYYY-MM (default current month)")

	return cmd
}
