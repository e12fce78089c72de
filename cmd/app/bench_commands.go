package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"

	"github.com/allisson/aeadbench/cmd/app/commands"
	"github.com/allisson/aeadbench/internal/app"
	benchDomain "github.com/allisson/aeadbench/internal/bench/domain"
	resultsUsecase "github.com/allisson/aeadbench/internal/results/usecase"
)

const serverShutdownTimeout = 10 * time.Second

func getBenchCommands(version string) []*cli.Command {
	runFlags := append(planFlags(),
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "csv",
			Usage:   "Report format: 'csv' or 'json'",
		},
		&cli.BoolFlag{
			Name:  "store",
			Usage: "Persist the campaign to the results database (overrides RESULTS_STORE_ENABLED)",
		},
		&cli.BoolFlag{
			Name:  "serve",
			Usage: "Run the metrics server while the campaign runs (overrides METRICS_ENABLED)",
		},
		&cli.BoolFlag{
			Name:  "linger",
			Usage: "Keep the metrics server up after the campaign until interrupted",
		},
	)

	return []*cli.Command{
		{
			Name:  "run",
			Usage: "Run a throughput-average campaign and print the report",
			Flags: runFlags,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := loadConfig(cmd)
				cfg.BenchMode = string(benchDomain.ModeThroughputAverage)
				if cmd.IsSet("store") {
					cfg.ResultsStoreEnabled = cmd.Bool("store")
				}
				if cmd.IsSet("serve") {
					cfg.MetricsEnabled = cmd.Bool("serve")
				}

				plan, err := loadPlan(cfg)
				if err != nil {
					return err
				}

				gin.SetMode(cfg.GetGinMode())
				container := app.NewContainer(cfg)
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)
				logger.Info("aeadbench", slog.String("version", version))

				ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer cancel()

				campaignUseCase, err := container.CampaignUseCase()
				if err != nil {
					return err
				}

				var store resultsUsecase.ResultUseCase
				if cfg.ResultsStoreEnabled {
					store, err = container.ResultUseCase()
					if err != nil {
						return err
					}
				}

				run := func(ctx context.Context) error {
					return commands.RunCampaign(
						ctx,
						campaignUseCase,
						store,
						container.LatestCampaign(),
						logger,
						commands.DefaultIO().Writer,
						plan,
						cmd.String("format"),
					)
				}

				if !cfg.MetricsEnabled {
					return run(ctx)
				}

				server, err := container.MetricsServer()
				if err != nil {
					return fmt.Errorf("failed to initialize metrics server: %w", err)
				}
				return commands.RunWithServer(ctx, server, logger, serverShutdownTimeout, cmd.Bool("linger"), run)
			},
		},
		{
			Name:  "single-shot",
			Usage: "Run one algorithm for an external power capture (one repetition per size unless --reps is set)",
			Flags: planFlags(),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := loadConfig(cmd)
				applySingleShotDefaults(cmd, cfg)
				cfg.BenchMode = string(benchDomain.ModeSingleShotPowerProfile)
				// Metrics would add background work next to the capture.
				cfg.MetricsEnabled = false

				plan, err := loadPlan(cfg)
				if err != nil {
					return err
				}

				container := app.NewContainer(cfg)
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)

				ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer cancel()

				singleShotUseCase, err := container.SingleShotUseCase()
				if err != nil {
					return err
				}

				return commands.RunSingleShot(ctx, singleShotUseCase, logger, commands.DefaultIO().Writer, plan)
			},
		},
		{
			Name:  "baseline",
			Usage: "Emit the trigger marker and power down without running any cell",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := loadConfig(cmd)
				if err := cfg.Validate(); err != nil {
					return err
				}

				container := app.NewContainer(cfg)
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)

				ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer cancel()

				power, err := container.PowerManager()
				if err != nil {
					return err
				}

				return commands.RunBaseline(ctx, power, logger, commands.DefaultIO().Writer)
			},
		},
		{
			Name:  "list-algorithms",
			Usage: "List the compiled-in algorithms and their constants",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunListAlgorithms(commands.DefaultIO().Writer, cmd.String("format"))
			},
		},
	}
}
