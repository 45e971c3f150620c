package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minpress/gf2"
	"github.com/katalvlaran/minpress/intlin"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSolverConfig_Defaults(t *testing.T) {
	cfg, err := loadSolverConfig("")
	require.NoError(t, err)
	require.Equal(t, gf2.DefaultMaxFreeVars, cfg.MaxFreeVars)
	require.Equal(t, intlin.DefaultMaxCandidates, cfg.MaxCandidates)
	require.Zero(t, cfg.TimeLimit)
}

func TestLoadSolverConfig_Overlay(t *testing.T) {
	path := writeConfig(t, "max_free_vars = 12\ntime_limit_ms = 250\n")
	cfg, err := loadSolverConfig(path)
	require.NoError(t, err)
	require.Equal(t, 12, cfg.MaxFreeVars)
	require.Equal(t, 250*time.Millisecond, cfg.TimeLimit)
	// Undefined keys keep their defaults.
	require.Equal(t, intlin.DefaultMaxCandidates, cfg.MaxCandidates)
}

func TestLoadSolverConfig_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"free vars too small", "max_free_vars = 0\n"},
		{"free vars too large", "max_free_vars = 70\n"},
		{"candidates non-positive", "max_candidates = 0\n"},
		{"negative time limit", "time_limit_ms = -5\n"},
		{"not toml", "max_free_vars: 12\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadSolverConfig(writeConfig(t, tc.body))
			require.Error(t, err)
		})
	}
}

func TestLoadSolverConfig_MissingFile(t *testing.T) {
	_, err := loadSolverConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
