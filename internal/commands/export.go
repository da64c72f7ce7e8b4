package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Markwang0203/Money-Notes-App/internal/export"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <month>",
		Short: "Export a month's transactions as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, svc, err := opts.open()
			if err != nil {
				return err
			}

			txns, err := svc.Month(args[0])
			if err != nil {
				return err
			}
			if len(txns) == 0 {
				return fmt.Errorf("no transactions for %s", args[0])
			}

			w := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			if err := export.WriteMonth(w, txns); err != nil {
				return fmt.Errorf("exporting %s: %w", args[0], err)
			}
			if output != "" {
				fmt.Printf("Exported %d transactions to %s\n", len(txns), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")

	return cmd
}
