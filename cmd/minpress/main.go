// Command minpress solves a button-press puzzle file: every non-blank
// line is one machine, solved in toggle mode (lights, GF(2)) and counter
// mode (joltage, non-negative integers), with the per-mode totals printed
// to stdout. Diagnostics go to stderr via zerolog.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/minpress/batch"
	"github.com/katalvlaran/minpress/gf2"
	"github.com/katalvlaran/minpress/intlin"
	"github.com/katalvlaran/minpress/machine"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "minpress: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		mode    string
		cfgPath string
		debug   bool
	)
	cmd := &cobra.Command{
		Use:          "minpress INPUT",
		Short:        "Minimum button presses for light/counter machines",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode != "toggle" && mode != "counter" && mode != "both" {
				return fmt.Errorf("unknown mode %q (want toggle, counter or both)", mode)
			}
			cfg, err := loadSolverConfig(cfgPath)
			if err != nil {
				return err
			}
			return run(newLogger(debug), cfg, mode, args[0])
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "both", "Solving mode: toggle, counter or both")
	cmd.Flags().StringVar(&cfgPath, "config", "", "Optional TOML file with solver budgets")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable per-machine debug logging")
	return cmd
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func run(log zerolog.Logger, cfg solverConfig, mode, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	pairs, err := machine.Parse(f)
	if err != nil {
		return err
	}
	log.Debug().Int("machines", len(pairs)).Str("input", path).Msg("parsed input")

	if mode == "toggle" || mode == "both" {
		lights := make([]*machine.Machine, len(pairs))
		for i, p := range pairs {
			lights[i] = p.Lights
		}
		total, err := batch.SumToggle(lights, gf2.WithMaxFreeVars(cfg.MaxFreeVars))
		if err != nil {
			return err
		}
		log.Info().
			Int64("presses", total.Presses).
			Int("solved", total.Solved).
			Int("unsolved", total.Unsolved).
			Msg("toggle mode done")
		fmt.Printf("toggle: %d\n", total.Presses)
	}

	if mode == "counter" || mode == "both" {
		counters := make([]*machine.Machine, len(pairs))
		for i, p := range pairs {
			counters[i] = p.Counters
		}
		opts := []intlin.Option{intlin.WithMaxCandidates(cfg.MaxCandidates)}
		if cfg.TimeLimit > 0 {
			opts = append(opts, intlin.WithTimeLimit(cfg.TimeLimit))
		}
		total, err := batch.SumCounter(counters, opts...)
		if err != nil {
			return err
		}
		log.Info().
			Int64("presses", total.Presses).
			Int("solved", total.Solved).
			Int("unsolved", total.Unsolved).
			Msg("counter mode done")
		fmt.Printf("counter: %d\n", total.Presses)
	}
	return nil
}
