package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaryscope/salaryscope/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Empty(t, cfg.DatasetPath)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SALARYSCOPE_DATASET", "/data/postings.csv")
	t.Setenv("SALARYSCOPE_TOP_N", "5")
	t.Setenv("SALARYSCOPE_DEBUG", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/data/postings.csv", cfg.DatasetPath)
	assert.Equal(t, 5, cfg.TopN)
	assert.True(t, cfg.Debug)
}

func TestLoadFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SALARYSCOPE_OUTPUT_DIR=/tmp/reports\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("SALARYSCOPE_OUTPUT_DIR") })

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/reports", cfg.OutputDir)
}

func TestLoadMissingEnvFileIsNotAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoadRejectsBadTopN(t *testing.T) {
	t.Setenv("SALARYSCOPE_TOP_N", "0")

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeInvalidInput))
}
