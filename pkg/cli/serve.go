package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octolens/pkg/cli/config"
	"github.com/m-mizutani/octolens/pkg/controller/server"
	"github.com/m-mizutani/octolens/pkg/infra"
	"github.com/m-mizutani/octolens/pkg/usecase"
	"github.com/m-mizutani/octolens/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr         string
		historyLimit int64

		githubCfg config.GitHub
		sentryCfg config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("OCTOLENS_ADDR"),
			Destination: &addr,
		},
		&cli.Int64Flag{
			Name:        "history-limit",
			Usage:       "Number of recent lookups shown on the page",
			Value:       5,
			Sources:     cli.EnvVars("OCTOLENS_HISTORY_LIMIT"),
			Destination: &historyLimit,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			githubCfg.Flags(),
			sentryCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("HistoryLimit", historyLimit),
				slog.Any("GitHub", githubCfg),
				slog.Any("Sentry", sentryCfg),
			)

			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}

			ghClient, err := githubCfg.New()
			if err != nil {
				return err
			}

			clients := infra.New(infra.WithGitHub(ghClient))

			uc := usecase.New(clients)
			s := server.New(uc, server.WithHistoryLimit(int(historyLimit)))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
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
