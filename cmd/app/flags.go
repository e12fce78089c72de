package main

import (
	"os"

	"github.com/urfave/cli/v3"

	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	"github.com/allisson/aeadbench/internal/config"
)

// planFlags override the BENCH_* environment values when set.
func planFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "algorithms",
			Aliases: []string{"a"},
			Usage:   "Comma-separated algorithms in campaign order (overrides BENCH_ALGORITHMS)",
		},
		&cli.StringFlag{
			Name:    "sizes",
			Aliases: []string{"s"},
			Usage:   "Comma-separated message sizes in bytes (overrides BENCH_SIZES)",
		},
		&cli.IntFlag{
			Name:    "reps",
			Aliases: []string{"r"},
			Usage:   "Repetitions per cell (overrides BENCH_REPS)",
		},
		&cli.StringFlag{
			Name:    "direction",
			Aliases: []string{"d"},
			Usage:   "Benchmarked direction: 'encrypt' or 'decrypt' (overrides BENCH_DIRECTION)",
		},
		&cli.FloatFlag{
			Name:  "clock-mhz",
			Usage: "Target clock in MHz used for the cycle estimate (overrides BENCH_CLOCK_MHZ)",
		},
		&cli.IntFlag{
			Name:  "max-message-size",
			Usage: "Size of the static message arena in bytes (overrides BENCH_MAX_MESSAGE_SIZE)",
		},
		&cli.BoolFlag{
			Name:  "quiesce",
			Usage: "Pause the garbage collector and pin the OS thread while timing (overrides BENCH_QUIESCE)",
		},
	}
}

// loadConfig loads the environment configuration and applies the plan flags that were set
// on the command line.
func loadConfig(cmd *cli.Command) *config.Config {
	cfg := config.Load()

	if cmd.IsSet("algorithms") {
		cfg.BenchAlgorithms = cmd.String("algorithms")
	}
	if cmd.IsSet("sizes") {
		cfg.BenchSizes = cmd.String("sizes")
	}
	if cmd.IsSet("reps") {
		cfg.BenchRepetitions = int(cmd.Int("reps"))
	}
	if cmd.IsSet("direction") {
		cfg.BenchDirection = cmd.String("direction")
	}
	if cmd.IsSet("clock-mhz") {
		cfg.BenchClockMHz = cmd.Float("clock-mhz")
	}
	if cmd.IsSet("max-message-size") {
		cfg.BenchMaxMessageSize = int(cmd.Int("max-message-size"))
	}
	if cmd.IsSet("quiesce") {
		cfg.BenchQuiesce = cmd.Bool("quiesce")
	}
	return cfg
}

// applySingleShotDefaults makes a power capture one operation per size unless --reps or
// BENCH_REPS asks for more.
func applySingleShotDefaults(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet("reps") {
		return
	}
	if _, ok := os.LookupEnv("BENCH_REPS"); ok {
		return
	}
	cfg.BenchRepetitions = 1
}

// loadPlan validates cfg and parses its plan.
func loadPlan(cfg *config.Config) (benchDomain.Plan, error) {
	if err := cfg.Validate(); err != nil {
		return benchDomain.Plan{}, err
	}
	return cfg.Plan()
}
