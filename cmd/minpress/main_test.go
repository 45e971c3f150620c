package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRun_EndToEnd(t *testing.T) {
	input := filepath.Join(t.TempDir(), "puzzle.txt")
	body := "[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}\n[#] (0) {1}\n"
	require.NoError(t, os.WriteFile(input, []byte(body), 0o600))

	log := zerolog.Nop()
	require.NoError(t, run(log, defaultSolverConfig(), "both", input))
	require.NoError(t, run(log, defaultSolverConfig(), "toggle", input))
	require.NoError(t, run(log, defaultSolverConfig(), "counter", input))
}

func TestRun_BadInput(t *testing.T) {
	input := filepath.Join(t.TempDir(), "puzzle.txt")
	require.NoError(t, os.WriteFile(input, []byte("garbage\n"), 0o600))
	require.Error(t, run(zerolog.Nop(), defaultSolverConfig(), "both", input))
}

func TestRun_MissingFile(t *testing.T) {
	require.Error(t, run(zerolog.Nop(), defaultSolverConfig(), "both", filepath.Join(t.TempDir(), "absent")))
}
