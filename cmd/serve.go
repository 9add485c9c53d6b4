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

	"github.com/spf13/cobra"

	"zendo/internal/netcheck"
	"zendo/internal/server"
	"zendo/internal/telemetry"
	"zendo/llm"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the task list over a local HTTP API",
	Long: `Start a local HTTP server exposing the task collection under /v1.

The API mirrors the CLI: list, create, toggle, delete, subtask toggle,
progress, and AI breakdown. The server holds the data file lock while
running.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, 127.0.0.1:8787)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	svc, closeStore, err := GetService()
	if err != nil {
		return fmt.Errorf("open task list: %w", err)
	}
	defer closeStore()

	var breakdown *llm.Client
	if provider, err := llm.NewProvider(cmd.Context(), &cfg.LLM); err == nil {
		timeout := time.Duration(cfg.LLM.RequestTimeoutSeconds) * time.Second
		breakdown = llm.NewClient(provider, timeout, netcheck.Online)
	} else {
		LogError("AI breakdown disabled", err)
	}

	handler := server.New(server.Config{
		Service:   svc,
		Breakdown: breakdown,
		Version:   version,
	})

	t := newTelemetry()
	defer func() { _ = t.Close() }()
	t.Track(telemetry.EventServeStarted, nil)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(os.Stderr, "Zendo API listening on http://%s/v1\n", addr)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-stop:
		fmt.Fprintln(os.Stderr, "Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
