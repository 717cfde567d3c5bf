package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emufront/gpucaps/internal/api"
	"github.com/emufront/gpucaps/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve GPU capabilities and settings over a local HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		gin.SetMode(gin.ReleaseMode)
		handler := api.NewGPUHandler(a.inspector, a.store)
		server := &http.Server{
			Addr:    a.cfg.API.Listen,
			Handler: api.NewRouter(handler),
		}

		// Probe up front so the first settings request does not pay for it
		report := a.inspector.Report()
		logger.Info("gpu_detected", map[string]string{"renderer": report.Renderer, "architecture": report.Architecture.String()})

		errCh := make(chan error, 1)
		go func() {
			logger.Info("api_listen", a.cfg.API.Listen)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-sigCh:
		}

		logger.Info("api_shutdown", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}
