package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/aeadbench/cmd/app/commands"
	"github.com/allisson/aeadbench/internal/app"
	"github.com/allisson/aeadbench/internal/config"
)

func getResultsCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "show-run",
			Usage: "Print a stored benchmark run",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "id",
					Aliases: []string{"i"},
					Value:   "latest",
					Usage:   "Run ID, or 'latest' for the most recent run",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				cfg.ResultsStoreEnabled = true
				if err := cfg.Validate(); err != nil {
					return err
				}

				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				resultUseCase, err := container.ResultUseCase()
				if err != nil {
					return err
				}

				return commands.RunShowRun(
					ctx,
					resultUseCase,
					commands.DefaultIO().Writer,
					cmd.String("id"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "list-runs",
			Usage: "List stored benchmark runs, newest first",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "offset",
					Value: 0,
					Usage: "Number of runs to skip",
				},
				&cli.IntFlag{
					Name:    "limit",
					Aliases: []string{"l"},
					Value:   20,
					Usage:   "Maximum number of runs to print",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				cfg.ResultsStoreEnabled = true
				if err := cfg.Validate(); err != nil {
					return err
				}

				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				resultUseCase, err := container.ResultUseCase()
				if err != nil {
					return err
				}

				return commands.RunListRuns(
					ctx,
					resultUseCase,
					commands.DefaultIO().Writer,
					int(cmd.Int("offset")),
					int(cmd.Int("limit")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "summarize",
			Usage:     "Summarize CSV reports per algorithm and size (reads stdin without files)",
			ArgsUsage: "[report.csv ...]",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				paths := cmd.Args().Slice()
				if len(paths) == 0 {
					return commands.RunSummarize(commands.DefaultIO().Writer, commands.DefaultIO().Reader)
				}

				inputs := make([]io.Reader, 0, len(paths))
				for _, path := range paths {
					f, err := os.Open(path) //nolint:gosec
					if err != nil {
						return fmt.Errorf("failed to open %s: %w", path, err)
					}
					defer func() { _ = f.Close() }()
					inputs = append(inputs, f)
				}

				return commands.RunSummarize(commands.DefaultIO().Writer, inputs...)
			},
		},
	}
}
