package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/demote/pkg/cli/config"
	controller "github.com/secmon-lab/demote/pkg/controller/http"
	"github.com/secmon-lab/demote/pkg/repository"
	"github.com/secmon-lab/demote/pkg/service/jwtclaims"
	"github.com/secmon-lab/demote/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		authCfg     config.Auth
		upstreamCfg config.Upstream
		dispatchCfg config.Dispatch
		notifyCfg   config.Notify
	)

	flags := joinFlags(
		serverCfg.Flags(),
		authCfg.Flags(),
		upstreamCfg.Flags(),
		dispatchCfg.Flags(),
		notifyCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting demote server",
				slog.Any("server", serverCfg),
				slog.Any("auth", authCfg),
				slog.Any("upstream", upstreamCfg),
				slog.Any("dispatch", dispatchCfg),
				slog.Any("notify", notifyCfg),
			)

			repo := repository.NewMemory()
			defer repo.Close()

			accountAPI, err := upstreamCfg.Configure()
			if err != nil {
				return err
			}
			demoteUC := usecase.NewDemote(accountAPI, jwtclaims.New())

			client, err := dispatchCfg.Configure(demoteUC)
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

			httpCfg := controller.NewConfig(serverCfg.Addr, authCfg.RequireAPILogin, authCfg.SessionHTTPSOnly)
			httpCfg.CORSAllowOrigin = serverCfg.CORSAllowOrigin

			server, err := controller.NewServer(ctx, httpCfg,
				controller.NewUseCases(authCfg.Configure(repo), demoteUC, runner),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- goerr.Wrap(err, "HTTP server error")
				}
				close(errCh)
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err, ok := <-errCh:
				if ok {
					return err
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if runner.Cancel(ctx) == nil {
				logger.Warn("Active run canceled by shutdown")
			}
			if err := runner.Wait(shutdownCtx); err != nil {
				logger.Warn("Run did not stop before shutdown", "error", err)
			}

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
