package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/aeadbench/cmd/app/commands"
	"github.com/allisson/aeadbench/internal/app"
	"github.com/allisson/aeadbench/internal/config"
)

func getSystemCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "migrate",
			Usage: "Run database migrations for the results store",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
			},
		},
	}
}
