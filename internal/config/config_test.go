package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Markwang0203/Money-Notes-App/internal/model"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	cfg := Default()
	cfg.Budgets[model.CategoryGroceries] = decimal.NewFromInt(400)
	cfg.Budgets[model.CategoryDining] = decimal.RequireFromString("150.50")
	cfg.ExchangeRate = decimal.RequireFromString("0.65")
	cfg.Git.AutoCommit = true

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.True(t, loaded.ExchangeRate.Equal(decimal.RequireFromString("0.65")))
	assert.True(t, loaded.Tolerance.Equal(decimal.RequireFromString("0.1")))
	assert.True(t, loaded.Budgets[model.CategoryGroceries].Equal(decimal.NewFromInt(400)))
	assert.True(t, loaded.Budgets[model.CategoryDining].Equal(decimal.RequireFromString("150.50")))
	assert.True(t, loaded.Git.AutoCommit)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
}

func TestLoad_BadBudgetAmount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	yaml := "budgets:\n  Groceries: lots\nexchange_rate: \"1\"\ntolerance: \"0.1\"\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Groceries")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.ExchangeRate.Equal(decimal.NewFromInt(1)))
	assert.Empty(t, cfg.Budgets)
	assert.False(t, cfg.Git.AutoCommit)
}
