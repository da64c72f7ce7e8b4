package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Markwang0203/Money-Notes-App/internal/config"
	"github.com/Markwang0203/Money-Notes-App/internal/gitops"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	var rate string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new Money Notes data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := opts.dir
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, rate, useGit)
		},
	}

	cmd.Flags().StringVar(&rate, "rate", "1", "exchange rate for the secondary currency")
	cmd.Flags().BoolVar(&useGit, "git", false, "initialize git and auto-commit mutations")

	return cmd
}

func runInit(dir, rate string, useGit bool) error {
	for _, d := range []string{ledgerDir, "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default()
	r, err := decimal.NewFromString(rate)
	if err != nil {
		return fmt.Errorf("parsing rate: %w", err)
	}
	cfg.ExchangeRate = r
	cfg.Git.AutoCommit = useGit

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	gitignore := "exports/\n*.swp\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if useGit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		hash, err := gitops.CommitAll(dir, "init: new data directory", cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Printf("Initialized Money Notes data directory at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Printf("Initialized Money Notes data directory at %s\n", dir)
	return nil
}
