package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/orgdir-lab/orgdir/pkg/cli/config"
	httpctrl "github.com/orgdir-lab/orgdir/pkg/controller/http"
	"github.com/orgdir-lab/orgdir/pkg/usecase"
	"github.com/orgdir-lab/orgdir/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var enrichLimit int
	var srcCfg config.Source
	var gravatarCfg config.Gravatar
	var colorsCfg config.Colors

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("ORGDIR_ADDR"),
			Destination: &addr,
		},
		&cli.IntFlag{
			Name:        "enrich-limit",
			Usage:       "Maximum concurrent profile lookups for bulk enrichment",
			Value:       8,
			Sources:     cli.EnvVars("ORGDIR_ENRICH_LIMIT"),
			Destination: &enrichLimit,
		},
	}

	// Add shared config flags
	flags = append(flags, srcCfg.Flags()...)
	flags = append(flags, gravatarCfg.Flags()...)
	flags = append(flags, colorsCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			store, err := srcCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure record source")
			}

			colors, err := colorsCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load color table")
			}

			client, enricher := gravatarCfg.Configure()

			ucOpts := []usecase.Option{
				usecase.WithColorMap(colors),
				usecase.WithEnrichLimit(enrichLimit),
			}
			if enricher != nil {
				ucOpts = append(ucOpts, usecase.WithEnricher(enricher))
			}
			uc := usecase.New(store, ucOpts...)

			httpOpts := []httpctrl.Options{}
			if client != nil {
				httpOpts = append(httpOpts, httpctrl.WithGravatarClient(client))
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, httpOpts...),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

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
