// Package commands wires the cobra CLI over the ledger, config and
// analytics packages. Commands resolve wall-clock defaults (today's
// date, the current month) here at the boundary; the analytics engine
// itself only ever sees caller-supplied parameters.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Markwang0203/Money-Notes-App/internal/auditlog"
	"github.com/Markwang0203/Money-Notes-App/internal/buildinfo"
	"github.com/Markwang0203/Money-Notes-App/internal/config"
	"github.com/Markwang0203/Money-Notes-App/internal/gitops"
	"github.com/Markwang0203/Money-Notes-App/internal/ledger"
)

// ledgerDir is the subdirectory holding month-sharded transaction files.
const ledgerDir = "ledger"

// rootOptions carries flags shared by every subcommand.
type rootOptions struct {
	dir string
}

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "moneynotes",
		Short:   "Personal finance tracking with itemized analytics",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Optional .env next to the working directory; absence is fine.
			_ = godotenv.Load()
			if opts.dir == "" {
				opts.dir = os.Getenv("MONEYNOTES_DIR")
			}
			if opts.dir == "" {
				opts.dir = "."
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dir, "dir", "", "data directory (default $MONEYNOTES_DIR or .)")

	rootCmd.AddCommand(
		newInitCommand(opts),
		newAddCommand(opts),
		newIncomeCommand(opts),
		newListCommand(opts),
		newRemoveCommand(opts),
		newSummaryCommand(opts),
		newHistoryCommand(opts),
		newCategoriesCommand(opts),
		newBudgetCommand(opts),
		newPricesCommand(opts),
		newItemsCommand(opts),
		newExportCommand(opts),
	)

	return rootCmd
}

// open loads the config and the ledger service for the data directory.
func (o *rootOptions) open() (*config.Config, *ledger.Service, error) {
	cfg, err := config.Load(filepath.Join(o.dir, config.FileName))
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s (run 'moneynotes init' first?): %w", config.FileName, err)
	}
	return cfg, ledger.NewService(filepath.Join(o.dir, ledgerDir)), nil
}

// recordMutation appends an audit entry and, when configured, commits
// the data directory.
func (o *rootOptions) recordMutation(cfg *config.Config, action, txnID, details string) error {
	entry := auditlog.Entry{
		Timestamp:     time.Now(),
		Action:        action,
		TransactionID: txnID,
		Details:       details,
	}
	if err := auditlog.Append(o.dir, []auditlog.Entry{entry}); err != nil {
		return fmt.Errorf("writing audit log: %w", err)
	}

	if cfg.Git.AutoCommit && gitops.IsRepo(o.dir) {
		msg := action + ": " + details
		if _, err := gitops.CommitAll(o.dir, msg, cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			return fmt.Errorf("auto-commit: %w", err)
		}
	}
	return nil
}

// today returns the wall-clock date in the fixed-width ledger form.
func today() string {
	return time.Now().Format("2006-01-02")
}

// currentMonth returns the wall-clock month key.
func currentMonth() string {
	return time.Now().Format("2006-01")
}
