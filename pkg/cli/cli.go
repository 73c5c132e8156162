package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/demote/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return newApp().Run(ctx, args)
}

func newApp() *cli.Command {
	var loggerCfg config.Logger

	return &cli.Command{
		Name:    "demote",
		Usage:   "Bulk role demotion for workspace members",
		Version: "0.1.0",
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		ExitErrHandler: func(ctx context.Context, c *cli.Command, err error) {
			if err != nil {
				ctxlog.From(ctx).Error("Command failed", "error", goerr.Wrap(err, "CLI execution failed"))
			}
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdRun(),
		},
	}
}
