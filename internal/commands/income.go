package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Markwang0203/Money-Notes-App/internal/id"
	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

func newIncomeCommand(opts *rootOptions) *cobra.Command {
	var date string
	var note string
	var taxFlag string
	var superFlag string

	cmd := &cobra.Command{
		Use:   "income <amount> <category>",
		Short: "Record an income",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, svc, err := opts.open()
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", args[0], err)
			}
			if amount.IsNegative() {
				return fmt.Errorf("amount must be non-negative, got %s", amount)
			}

			tax, err := parseOptionalAmount(taxFlag, "tax")
			if err != nil {
				return err
			}
			super, err := parseOptionalAmount(superFlag, "super")
			if err != nil {
				return err
			}

			if date == "" {
				date = today()
			}

			t := model.NewIncome(id.New(), amount, model.Category(args[1]), date, note, nil, tax, super, cfg.ExchangeRate)
			if err := svc.Append(t); err != nil {
				return fmt.Errorf("appending income: %w", err)
			}

			details := fmt.Sprintf("income %s %s on %s", amount.StringFixed(2), t.Category, date)
			if err := opts.recordMutation(cfg, "append", t.ID, details); err != nil {
				return err
			}

			fmt.Printf("Recorded %s (%s)\n", details, t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&note, "note", "", "free-text note, e.g. the payer")
	cmd.Flags().StringVar(&taxFlag, "tax", "", "tax withheld")
	cmd.Flags().StringVar(&superFlag, "super", "", "superannuation contribution")

	return cmd
}

func parseOptionalAmount(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must be non-negative, got %s", field, d)
	}
	return d, nil
}
