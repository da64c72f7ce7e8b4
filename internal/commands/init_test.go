package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Markwang0203/Money-Notes-App/internal/config"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, "0.65", false))

	for _, d := range []string{ledgerDir, "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "0.65", cfg.ExchangeRate.String())
	assert.False(t, cfg.Git.AutoCommit)

	_, err = os.Stat(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
}

func TestRunInit_BadRate(t *testing.T) {
	err := runInit(t.TempDir(), "cheap", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing rate")
}

func TestRunInit_WithGit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, "1", true))

	_, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, "git repository should be initialized")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.True(t, cfg.Git.AutoCommit)
}
