package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/chempath"
	httpAdapter "github.com/aretw0/chempath/pkg/adapters/http"
	"github.com/aretw0/chempath/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  `Serves path searches, the rule catalog and Prometheus metrics over HTTP.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			port := a.cfg.HTTP.Port
			if cmd.Flags().Changed("port") {
				port, _ = cmd.Flags().GetInt("port")
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			metrics := observability.NewMetrics(reg)

			cache := a.cache()
			if cache != nil {
				cache = metrics.InstrumentCache(cache)
			}
			planner := a.planner(cache,
				chempath.WithHooks(metrics.Hooks()),
				chempath.WithHooks(observability.LogHooks(a.logger)),
			)

			handler := httpAdapter.NewHandler(planner,
				httpAdapter.WithLogger(a.logger),
				httpAdapter.WithGatherer(reg),
				httpAdapter.WithExploreLimit(a.cfg.Search.ExploreLimit),
			)

			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", port),
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				a.logger.Info("Starting chempath server", "addr", srv.Addr, "max_visited", a.cfg.Search.MaxVisited, "cache", a.cfg.Cache.Backend)
				serverErrors <- srv.ListenAndServe()
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server error: %w", err)

			case <-ctx.Done():
				a.logger.Info("Start shutdown")

				// Give outstanding requests a deadline for completion.
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := srv.Shutdown(shutdownCtx); err != nil {
					a.logger.Error("Graceful shutdown did not complete", "error", err)
					if err := srv.Close(); err != nil {
						return fmt.Errorf("error killing server: %w", err)
					}
				}
				a.logger.Info("chempath server stopped gracefully")
				return nil
			}
		},
	}
	cmd.Flags().IntP("port", "p", 8080, "Port to listen on (default from config)")
	return cmd
}
