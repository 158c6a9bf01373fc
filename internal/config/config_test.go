package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.GenSeed)
}

func TestOverrides(t *testing.T) {
	t.Setenv("SUDOKU_ADDR", ":9999")
	t.Setenv("SUDOKU_LOG_LEVEL", "debug")
	t.Setenv("SUDOKU_GEN_SEED", "42")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(42), cfg.GenSeed)
}

func TestBadValue(t *testing.T) {
	t.Setenv("SUDOKU_GEN_SEED", "not-a-number")
	_, err := ParseEnv()
	require.Error(t, err)
}
