package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kayz/vidprompt/internal/logger"
	"github.com/kayz/vidprompt/internal/webui"
	"github.com/spf13/cobra"
)

var webPort int

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Run the prompt form web UI with live preview",
	RunE:  runWeb,
}

func init() {
	rootCmd.AddCommand(webCmd)
	webCmd.Flags().IntVar(&webPort, "port", 18080, "Web UI listen port (default from config)")
}

func runWeb(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	port := cfg.Web.Port
	if cmd.Flags().Changed("port") || port == 0 {
		port = webPort
	}
	headerTimeout := time.Duration(cfg.Web.ReadHeaderTimeoutSec) * time.Second
	if headerTimeout <= 0 {
		headerTimeout = 5 * time.Second
	}

	server := webui.NewServer(newBuilder(cfg))
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           server.Handler(),
		ReadHeaderTimeout: headerTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Web UI listening on http://127.0.0.1:%d", port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case err := <-errCh:
		return fmt.Errorf("web UI server: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("Shutting down web UI...")
	return httpServer.Shutdown(ctx)
}
