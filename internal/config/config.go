package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

// FileName is the config file kept at the data directory root.
const FileName = "moneynotes.yaml"

// Config is the parsed moneynotes.yaml configuration. Amounts are
// decimals in memory; on disk they are plain strings so the YAML stays
// hand-editable.
type Config struct {
	// Budgets maps expense categories to monthly limits. A zero limit
	// means the category is untracked.
	Budgets map[model.Category]decimal.Decimal

	// ExchangeRate converts the primary amount into the secondary
	// currency at transaction creation time. It is never applied
	// retroactively to existing transactions.
	ExchangeRate decimal.Decimal

	// Tolerance is the drill-down discrepancy threshold.
	Tolerance decimal.Decimal

	Git GitConfig
}

// GitConfig controls git integration for the data directory.
type GitConfig struct {
	AutoCommit  bool
	AuthorName  string
	AuthorEmail string
}

// fileConfig is the on-disk YAML shape.
type fileConfig struct {
	Budgets      map[string]string `yaml:"budgets,omitempty"`
	ExchangeRate string            `yaml:"exchange_rate"`
	Tolerance    string            `yaml:"tolerance"`
	Git          fileGitConfig     `yaml:"git"`
}

type fileGitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a moneynotes.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg := &Config{
		Budgets: make(map[model.Category]decimal.Decimal, len(fc.Budgets)),
		Git: GitConfig{
			AutoCommit:  fc.Git.AutoCommit,
			AuthorName:  fc.Git.AuthorName,
			AuthorEmail: fc.Git.AuthorEmail,
		},
	}

	for cat, limit := range fc.Budgets {
		d, err := decimal.NewFromString(limit)
		if err != nil {
			return nil, fmt.Errorf("parsing budget for %q: %w", cat, err)
		}
		cfg.Budgets[model.Category(cat)] = d
	}

	cfg.ExchangeRate, err = decimal.NewFromString(fc.ExchangeRate)
	if err != nil {
		return nil, fmt.Errorf("parsing exchange_rate: %w", err)
	}

	cfg.Tolerance, err = decimal.NewFromString(fc.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("parsing tolerance: %w", err)
	}

	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	fc := fileConfig{
		Budgets:      make(map[string]string, len(cfg.Budgets)),
		ExchangeRate: cfg.ExchangeRate.String(),
		Tolerance:    cfg.Tolerance.String(),
		Git: fileGitConfig{
			AutoCommit:  cfg.Git.AutoCommit,
			AuthorName:  cfg.Git.AuthorName,
			AuthorEmail: cfg.Git.AuthorEmail,
		},
	}
	for cat, limit := range cfg.Budgets {
		fc.Budgets[string(cat)] = limit.String()
	}

	data, err := yaml.Marshal(&fc)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data
// directory: no budgets, rate 1 (same currency), the standard
// drill-down tolerance, git disabled.
func Default() *Config {
	return &Config{
		Budgets:      map[model.Category]decimal.Decimal{},
		ExchangeRate: decimal.NewFromInt(1),
		Tolerance:    decimal.RequireFromString("0.1"),
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Money Notes",
			AuthorEmail: "notes@localhost",
		},
	}
}
