package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Markwang0203/Money-Notes-App/internal/analytics"
)

func newPricesCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Show price statistics for items seen across receipts",
		Long: `Show per-item price history across all itemized transactions:
minimum, maximum and average price, the most recent price, and the
source (the transaction note, typically the merchant) of the cheapest
observation. Items are ranked by how often they appear.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, svc, err := opts.open()
			if err != nil {
				return err
			}

			txns, err := svc.List()
			if err != nil {
				return err
			}

			stats := analytics.PriceWatch(txns)
			if len(stats) == 0 {
				fmt.Println("No itemized transactions yet.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ITEM\tSEEN\tMIN\tMAX\tAVG\tLAST\tBEST SOURCE")
			for _, st := range stats {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
					st.Name, st.Observations,
					st.Min.StringFixed(2), st.Max.StringFixed(2),
					st.Avg.StringFixed(2), st.Last.StringFixed(2),
					st.BestSource)
			}
			return tw.Flush()
		},
	}

	return cmd
}
