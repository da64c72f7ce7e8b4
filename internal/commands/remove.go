package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCommand(opts *rootOptions) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "remove [id]",
		Short: "Remove a transaction by ID, or a whole month with --month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, svc, err := opts.open()
			if err != nil {
				return err
			}

			switch {
			case month != "" && len(args) > 0:
				return errors.New("give either an ID or --month, not both")

			case month != "":
				if err := svc.RemoveMonth(month); err != nil {
					return err
				}
				if err := opts.recordMutation(cfg, "remove-month", "", "removed month "+month); err != nil {
					return err
				}
				fmt.Printf("Removed all transactions for %s\n", month)
				return nil

			case len(args) == 1:
				if err := svc.Remove(args[0]); err != nil {
					return err
				}
				if err := opts.recordMutation(cfg, "remove", args[0], "removed transaction"); err != nil {
					return err
				}
				fmt.Printf("Removed %s\n", args[0])
				return nil

			default:
				return errors.New("give a transaction ID or --month")
			}
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "remove every transaction in a month key YYYY-MM")

	return cmd
}
