package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Markwang0203/Money-Notes-App/internal/analytics"
)

func newCategoriesCommand(opts *rootOptions) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Break down expenses by category",
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

			breakdown := analytics.Breakdown(txns, month)
			if len(breakdown) == 0 {
				fmt.Println("No expenses in scope.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tTOTAL")
			for _, ct := range breakdown {
				attrs := ct.Category.Attributes()
				fmt.Fprintf(tw, "%s %s\t%s\n", attrs.Icon, attrs.Label, ct.Total.StringFixed(2))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "restrict to a month key YYYY-MM")

	return cmd
}
