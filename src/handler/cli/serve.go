package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"complexity-analyzer/src/controller"
	"complexity-analyzer/src/handler/server"
	"complexity-analyzer/src/util"
)

func (h *Handler) serveCmd() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analyzer over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if address != "" {
				h.cfg.Server.Address = address
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			router := server.SetupRouter(analysisCtrl, h.cfg, util.DefaultLogger.Zap())

			srv := &http.Server{
				Addr:         h.cfg.Server.Address,
				Handler:      router,
				ReadTimeout:  h.cfg.Server.ReadTimeout,
				WriteTimeout: h.cfg.Server.WriteTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				util.Info("Listening on %s", h.cfg.Server.Address)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err, ok := <-errCh:
				if ok {
					return fmt.Errorf("serving http: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			util.Info("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), h.cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutting down: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "Listen address (default from config)")
	return cmd
}
