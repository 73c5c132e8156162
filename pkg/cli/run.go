package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/demote/pkg/cli/config"
	"github.com/secmon-lab/demote/pkg/domain/interfaces"
	"github.com/secmon-lab/demote/pkg/domain/model"
	"github.com/secmon-lab/demote/pkg/service/jwtclaims"
	"github.com/secmon-lab/demote/pkg/usecase"
	"github.com/secmon-lab/demote/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdRun() *cli.Command {
	var (
		role        string
		inputPath   string
		upstreamCfg config.Upstream
		dispatchCfg config.Dispatch
		notifyCfg   config.Notify
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "role",
				Usage:       "Target role (account-admin, standard-user)",
				Value:       model.DefaultTargetRole.String(),
				Sources:     cli.EnvVars("DEMOTE_ROLE"),
				Destination: &role,
			},
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "File with one token or session JSON per line. Reads stdin when empty",
				Destination: &inputPath,
			},
		},
		upstreamCfg.Flags(),
		dispatchCfg.Flags(),
		notifyCfg.Flags(),
	)

	return &cli.Command{
		Name:  "run",
		Usage: "Demote every credential in the input, one at a time",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			targetRole, err := model.ParseTargetRole(role)
			if err != nil {
				return err
			}

			input, err := readInput(inputPath)
			if err != nil {
				return err
			}

			var local interfaces.DemoteClient
			if !dispatchCfg.Remote() {
				accountAPI, err := upstreamCfg.Configure()
				if err != nil {
					return err
				}
				local = usecase.NewDemote(accountAPI, jwtclaims.New())
			}

			client, err := dispatchCfg.Configure(local)
			if err != nil {
				return err
			}

			notifier, err := notifyCfg.Configure()
			if err != nil {
				return err
			}

			runOpts := []usecase.RunOption{usecase.WithThrottleInterval(dispatchCfg.Throttle)}
			if notifier != nil {
				runOpts = append(runOpts, usecase.WithNotifier(notifier))
			}
			runner := usecase.NewRunController(client, runOpts...)

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("Starting batch run",
				"role", targetRole,
				"dispatch", dispatchCfg,
			)

			out := c.Root().Writer
			if out == nil {
				out = os.Stdout
			}

			summary, err := runner.Run(ctx, input, targetRole, func(ctx context.Context, item *model.IndexedResult) {
				printResult(out, item)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s (total %d)\n", summary.Message(), summary.Stats.Total)
			if !summary.Succeeded() {
				return goerr.New("run finished with failures",
					goerr.V("run_id", summary.RunID),
					goerr.V("failed", summary.Stats.Failed),
					goerr.V("canceled", summary.Canceled))
			}
			return nil
		},
	}
}

func readInput(path string) (string, error) {
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", goerr.Wrap(err, "failed to read input file", goerr.V("path", path))
		}
		return string(raw), nil
	}

	if logging.IsTerminal(os.Stdin) {
		return "", goerr.New("no input: pass --input or pipe tokens on stdin")
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read stdin")
	}
	return string(raw), nil
}

func printResult(w io.Writer, item *model.IndexedResult) {
	r := item.Result
	status := "OK"
	if !r.Success {
		status = "NG"
	}

	line := fmt.Sprintf("[%d] %s %s", item.Index, status, r.Email)
	if r.Message != "" {
		line += " " + r.Message
	}
	if r.Error != "" {
		line += " (" + r.Error + ")"
	}
	fmt.Fprintln(w, line)
}
