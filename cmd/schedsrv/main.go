// Command schedsrv serves the cadschedule pipeline over HTTP, per
// spec.md §6. It is the thin transport collaborator the core library
// does not depend on.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/quietstack/cadschedule/internal/obslog"
	"github.com/quietstack/cadschedule/pkg/artifactstore"
	"github.com/quietstack/cadschedule/pkg/httpapi"
	"github.com/quietstack/cadschedule/pkg/schedconfig"
)

const version = "1.0.0"

var (
	configPath  = flag.String("config", "", "Path to YAML configuration file (optional; defaults apply)")
	addrFlag    = flag.String("addr", "", "Override the listen address from config")
	dataDirFlag = flag.String("data-dir", "", "Override the working directory from config")
	versionF    = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("schedsrv version %s\n", version)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}
	if *dataDirFlag != "" {
		cfg.DataDir = *dataDirFlag
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := obslog.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store := artifactstore.New(cfg.DataDir)
	server := &httpapi.Server{
		Store:       store,
		Logger:      logger,
		LockTimeout: cfg.LockTimeout,
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewRouter(server),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting schedsrv",
		zap.String("addr", cfg.Addr),
		zap.String("dataDir", cfg.DataDir),
	)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	}
}

func loadConfig() (*schedconfig.Config, error) {
	if *configPath == "" {
		cfg := schedconfig.Default()
		return &cfg, nil
	}
	return schedconfig.LoadConfig(*configPath)
}
