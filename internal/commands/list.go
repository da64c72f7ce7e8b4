package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, svc, err := opts.open()
			if err != nil {
				return err
			}

			var txns []model.Transaction
			if month != "" {
				txns, err = svc.Month(month)
			} else {
				txns, err = svc.List()
			}
			if err != nil {
				return err
			}

			if len(txns) == 0 {
				fmt.Println("No transactions.")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tKIND\tCATEGORY\tAMOUNT\tNOTE\tITEMS\tID")
			for _, t := range txns {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
					t.Date, t.Kind, t.Category, t.AmountPrimary.StringFixed(2), t.Note, len(t.Items), t.ID)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "restrict to a month key YYYY-MM")

	return cmd
}
