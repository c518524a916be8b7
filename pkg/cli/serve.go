package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	httpctrl "github.com/secmon-lab/continuum/pkg/controller/http"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/service/worker"
	"github.com/secmon-lab/continuum/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var reportInterval time.Duration
	var appCfg appConfig

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("CONTINUUM_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "report-interval",
			Usage:       "Publish the report to the configured targets on this interval (0 disables)",
			Category:    "Report",
			Sources:     cli.EnvVars("CONTINUUM_REPORT_INTERVAL"),
			Destination: &reportInterval,
		},
	}
	flags = append(flags, appCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, repo, err := appCfg.build(ctx)
			if err != nil {
				return err
			}
			defer closeRepository(repo)

			state, err := uc.Initialize(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load records")
			}

			httpHandler := httpctrl.New(uc, state)

			var reportWorker *worker.ReportWorker
			if reportInterval > 0 {
				reportWorker = worker.NewReportWorker(httpHandler.State, func(ctx context.Context, state *model.State) error {
					_, err := uc.Report.Publish(ctx, uc.Report.Compile(state))
					return err
				}, reportInterval)
				if err := reportWorker.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start report worker")
				}
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				if reportWorker != nil {
					reportWorker.Stop()
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
