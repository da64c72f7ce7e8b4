package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Markwang0203/Money-Notes-App/internal/analytics"
)

func newHistoryCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the per-month income/expense/net rollup, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, svc, err := opts.open()
			if err != nil {
				return err
			}

			txns, err := svc.List()
			if err != nil {
				return err
			}

			months := analytics.History(txns)
			if len(months) == 0 {
				fmt.Println("No transactions.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MONTH\tINCOME\tEXPENSE\tNET")
			for _, m := range months {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					m.Month, m.Income.StringFixed(2), m.Expense.StringFixed(2), m.Net.StringFixed(2))
			}
			return tw.Flush()
		},
	}

	return cmd
}
