package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ghresume/pkg/cli/config"
	"github.com/m-mizutani/ghresume/pkg/controller/server"
	"github.com/m-mizutani/ghresume/pkg/infra"
	"github.com/m-mizutani/ghresume/pkg/usecase"
	"github.com/m-mizutani/ghresume/pkg/utils/logging"
	"github.com/m-mizutani/ghresume/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		github      config.GitHub
		pdfExporter config.Exporter
		sentry      config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:3000",
			Sources:     cli.EnvVars("GHRESUME_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			pdfExporter.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", github),
				slog.Any("Exporter", pdfExporter),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			if !github.HasToken() {
				logging.Default().Warn("no GitHub token configured, using unauthenticated rate limits")
			}

			ghClient, err := github.New()
			if err != nil {
				return err
			}

			exp := pdfExporter.New()
			defer safe.Close(exp)

			clients := infra.New(
				infra.WithGitHubClient(ghClient),
				infra.WithPDFExporter(exp),
			)

			uc := usecase.New(clients)
			s := server.New(uc)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,

				// PDF export waits on a browser subprocess; give writes
				// more headroom than a plain API response would need.
				WriteTimeout: 120 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
