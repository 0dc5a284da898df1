package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"specfarm-front/internal/config"
	"specfarm-front/internal/devserver"

	"github.com/rohanthewiz/logger"
)

func main() {
	configPath := flag.String("config", "", "path to app-config.yaml (defaults are used when empty)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.LogErr(err, "failed to load configuration", "path", *configPath)
			os.Exit(1)
		}
		cfg = loaded
	}
	logger.SetLogLevel(cfg.LogLevel)

	h, err := devserver.NewRouter(cfg)
	if err != nil {
		logger.LogErr(err, "failed to build router")
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.DevServer.Addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Dev server starting", "address", cfg.DevServer.Addr, "static_dir", cfg.DevServer.StaticDir, "api", cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.LogErr(err, "dev server failed")
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.LogErr(err, "dev server forced to shutdown")
	}
	logger.Info("Dev server stopped")
}
