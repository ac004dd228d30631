package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"hanzi-namer/internal/engine"
	"hanzi-namer/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the name generator form over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		gin.SetMode(Config.Server.Mode)

		gen := engine.NewGenerator(engine.NewFakerPicker(Config.Generator.Seed))
		router := web.NewRouter(gen, Logger)

		srv := &http.Server{
			Addr:    Config.Server.Addr,
			Handler: router,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			Logger.Info("HTTP server listening", "addr", srv.Addr, "mode", Config.Server.Mode)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case <-ctx.Done():
			Logger.Info("shutdown signal received")
		case err := <-errCh:
			if err != nil {
				return err
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), Config.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			Logger.Error("http shutdown error", "err", err)
			return err
		}
		Logger.Info("server stopped")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().String("mode", "", "gin mode: debug, release or test")
}
