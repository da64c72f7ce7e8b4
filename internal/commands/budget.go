package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Markwang0203/Money-Notes-App/internal/analytics"
	"github.com/Markwang0203/Money-Notes-App/internal/config"
)

func newBudgetCommand(opts *rootOptions) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Compare category spending against configured limits",
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

			if month == "" {
				month = currentMonth()
			}

			lines := analytics.BudgetStatus(txns, cfg.Budgets, month)
			if len(lines) == 0 {
				fmt.Printf("No budgets configured. Add limits under 'budgets:' in %s\n", config.FileName)
				return nil
			}

			printBudgetLines(lines)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month key YYYY-MM (default current month)")

	return cmd
}

func printBudgetLines(lines []analytics.BudgetLine) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tSPENT\tLIMIT\tUSED")
	for _, l := range lines {
		marker := ""
		if l.Over {
			marker = "  OVER"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s%%%s\n",
			l.Category, l.Spent.StringFixed(2), l.Limit.StringFixed(2), l.RawPercent.StringFixed(0), marker)
	}
	tw.Flush()
}
