package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Markwang0203/Money-Notes-App/internal/id"
	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

func newAddCommand(opts *rootOptions) *cobra.Command {
	var date string
	var note string
	var itemFlags []string

	cmd := &cobra.Command{
		Use:   "add <amount> <category>",
		Short: "Record an expense",
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

			items, err := parseItemFlags(itemFlags)
			if err != nil {
				return err
			}

			if date == "" {
				date = today()
			}

			t := model.NewExpense(id.New(), amount, model.Category(args[1]), date, note, items, cfg.ExchangeRate)
			if err := svc.Append(t); err != nil {
				return fmt.Errorf("appending expense: %w", err)
			}

			details := fmt.Sprintf("expense %s %s on %s", amount.StringFixed(2), t.Category, date)
			if err := opts.recordMutation(cfg, "append", t.ID, details); err != nil {
				return err
			}

			fmt.Printf("Recorded %s (%s)\n", details, t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&note, "note", "", "free-text note, used as merchant for price tracking")
	cmd.Flags().StringArrayVar(&itemFlags, "item", nil, "receipt item as name=price[@qty], repeatable")

	return cmd
}

// parseItemFlags parses repeated --item name=price[@qty] flags into
// receipt items. Prices are already-extended line totals.
func parseItemFlags(flags []string) ([]model.ReceiptItem, error) {
	if len(flags) == 0 {
		return nil, nil
	}

	var items []model.ReceiptItem
	for _, f := range flags {
		name, rest, ok := strings.Cut(f, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("item %q must be name=price[@qty]", f)
		}

		qty := 0
		priceStr := rest
		if at := strings.LastIndex(rest, "@"); at >= 0 {
			q, err := strconv.Atoi(rest[at+1:])
			if err != nil || q <= 0 {
				return nil, fmt.Errorf("item %q has an invalid quantity", f)
			}
			qty = q
			priceStr = rest[:at]
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return nil, fmt.Errorf("item %q: parsing price: %w", f, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("item %q has a negative price", f)
		}

		items = append(items, model.ReceiptItem{Name: name, Price: price, Quantity: qty})
	}
	return items, nil
}
