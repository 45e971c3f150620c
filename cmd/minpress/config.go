package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/minpress/gf2"
	"github.com/katalvlaran/minpress/intlin"
)

// solverConfig carries the solver budgets the CLI can override.
type solverConfig struct {
	MaxFreeVars   int           // toggle mode: free-variable enumeration cap
	MaxCandidates int64         // counter mode: hard candidate ceiling
	TimeLimit     time.Duration // counter mode: soft per-machine budget, 0 = none
}

// minpress config.toml key mapping to solver budgets.
type fileConfig struct {
	MaxFreeVars   int   `toml:"max_free_vars"`
	MaxCandidates int64 `toml:"max_candidates"`
	TimeLimitMS   int64 `toml:"time_limit_ms"`
}

func defaultSolverConfig() solverConfig {
	return solverConfig{
		MaxFreeVars:   gf2.DefaultMaxFreeVars,
		MaxCandidates: intlin.DefaultMaxCandidates,
		TimeLimit:     0,
	}
}

// loadSolverConfig overlays a TOML file (when path is non-empty) onto the
// defaults, validating each defined key so a bad config fails here with a
// message instead of panicking inside an Option constructor.
func loadSolverConfig(path string) (solverConfig, error) {
	cfg := defaultSolverConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return solverConfig{}, fmt.Errorf("load solver config: %w", err)
	}

	if meta.IsDefined("max_free_vars") {
		if raw.MaxFreeVars < 1 || raw.MaxFreeVars > 62 {
			return solverConfig{}, fmt.Errorf("config %s: max_free_vars must be in [1,62], got %d", path, raw.MaxFreeVars)
		}
		cfg.MaxFreeVars = raw.MaxFreeVars
	}
	if meta.IsDefined("max_candidates") {
		if raw.MaxCandidates < 1 {
			return solverConfig{}, fmt.Errorf("config %s: max_candidates must be positive, got %d", path, raw.MaxCandidates)
		}
		cfg.MaxCandidates = raw.MaxCandidates
	}
	if meta.IsDefined("time_limit_ms") {
		if raw.TimeLimitMS < 0 {
			return solverConfig{}, fmt.Errorf("config %s: time_limit_ms must be non-negative, got %d", path, raw.TimeLimitMS)
		}
		cfg.TimeLimit = time.Duration(raw.TimeLimitMS) * time.Millisecond
	}
	return cfg, nil
}
