// Command seqmaster-server provides a REST API for SeqMaster operations.
//
// Usage:
//
//	seqmaster-server [options]
//
// Options:
//
//	-config   YAML configuration file
//	-port     Port to listen on (overrides config)
//	-host     Host to bind to (overrides config)
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aria-lang/seqmaster-go/api"
	"github.com/aria-lang/seqmaster-go/internal/config"
	"github.com/aria-lang/seqmaster-go/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	port := flag.Int("port", 0, "Port to listen on")
	host := flag.String("host", "", "Host to bind to")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.New(os.Stderr, "info").Fatal("loading config", "err", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *host != "" {
		cfg.Server.Host = *host
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", "err", err)
	}

	addr := cfg.Server.Addr()
	server := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(logger, cfg.Server),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			logger.Fatal("could not gracefully shutdown", "err", err)
		}
		close(done)
	}()

	logger.Info("SeqMaster API server starting", "addr", "http://"+addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("could not listen", "addr", addr, "err", err)
	}

	<-done
	logger.Info("server stopped")
}
