package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Markwang0203/Money-Notes-App/internal/analytics"
	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

func newItemsCommand(opts *rootOptions) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "items <category>",
		Short: "Drill a category down to item-level totals",
		Long: `Drill a category down to item-level totals, reconciling itemized
receipts against transaction amounts. Amount not attributable to any
named item lands in the Unclassified bucket, so the bucket totals always
add up to the category's spending.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, svc, err := opts.open()
			if err != nil {
				return err
			}

			txns, err := svc.List()
			if err != nil {
				return err
			}

			category := model.NormalizeCategory(model.KindExpense, args[0])
			scope := analytics.FilterScope(txns, category, month)
			buckets := analytics.DrillDown(scope, cfg.Tolerance)
			if len(buckets) == 0 {
				fmt.Println("Nothing in scope.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ITEM\tTOTAL")
			for _, b := range buckets {
				fmt.Fprintf(tw, "%s\t%s\n", b.Name, b.Total.StringFixed(2))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "restrict to a month key YYYY-MM")

	return cmd
}
