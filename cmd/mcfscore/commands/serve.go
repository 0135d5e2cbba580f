// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcfscore/mcfscore/api"
	"github.com/mcfscore/mcfscore/dataset"
	"github.com/mcfscore/mcfscore/solution"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(g *globals) *cobra.Command {
	var parallelism int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve solution evaluation over HTTP",
		Long: `The serve command loads the reference tables once and answers
POST /api/evaluate with the metrics and findings of the posted structured
solution. It stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := stringSetting(cmd, "input-dir", EnvInputDir)
			if err := requireSetting(dir, "input-dir", EnvInputDir); err != nil {
				return err
			}
			addr := stringSetting(cmd, "addr", EnvAddr)
			capacity, err := floatSetting(cmd, "vehicle-capacity", EnvVehicleCapacity)
			if err != nil {
				return err
			}

			ref, err := dataset.LoadReference(dir, g.logger)
			if err != nil {
				return err
			}
			h := api.NewHandler(ref,
				api.WithLogger(g.logger),
				api.WithDefaultCapacity(capacity),
				api.WithParallelism(parallelism))

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			return serve(ctx, g.logger, &http.Server{Addr: addr, Handler: api.NewRouter(h)})
		},
	}
	cmd.Flags().StringP("input-dir", "i", "", "Directory with the reference tables (env "+EnvInputDir+")")
	cmd.Flags().String("addr", ":8080", "Listen address (env "+EnvAddr+")")
	cmd.Flags().Float64("vehicle-capacity", solution.DefaultVehicleCapacity, "Default vehicle capacity in m³ (env "+EnvVehicleCapacity+")")
	cmd.Flags().IntVar(&parallelism, "parallelism", 1, "Number of concurrent aggregation chunks per evaluation")
	return cmd
}

// serve runs server until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, logger *slog.Logger, server *http.Server) error {
	serverErrs := make(chan error, 1)
	go func() {
		defer close(serverErrs)
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrs <- err
		}
	}()

	select {
	case err := <-serverErrs:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
