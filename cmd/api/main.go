package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/intramural/tournament-api/internal/app"
	"github.com/intramural/tournament-api/internal/config"
	"github.com/intramural/tournament-api/internal/observability"
	"github.com/intramural/tournament-api/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slogLevel(cfg.LogLevel),
	}))

	platformLogger, flushLogs, err := observability.InitBetterStackLogger(cfg, nil)
	if err != nil {
		logger.Error("init log shipping", "error", err)
		os.Exit(1)
	}
	logging.SetDefault(platformLogger)

	uptraceShutdown, err := observability.InitUptrace(cfg, platformLogger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof server", "error", err)
		os.Exit(1)
	}

	srv, closeStorage, err := app.NewHTTPServer(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var shutdownErr error
	if err := srv.Shutdown(shutdownCtx); err != nil {
		shutdownErr = crerr.CombineErrors(shutdownErr, crerr.Wrap(err, "shutdown http server"))
	}
	if err := observability.StopPprofServer(pprofSrv, logger, shutdownTimeout); err != nil {
		shutdownErr = crerr.CombineErrors(shutdownErr, crerr.Wrap(err, "stop pprof server"))
	}
	if err := stopProfiler(); err != nil {
		shutdownErr = crerr.CombineErrors(shutdownErr, crerr.Wrap(err, "stop pyroscope"))
	}
	if err := uptraceShutdown(shutdownCtx); err != nil {
		shutdownErr = crerr.CombineErrors(shutdownErr, crerr.Wrap(err, "shutdown uptrace"))
	}
	if err := flushLogs(shutdownCtx); err != nil {
		shutdownErr = crerr.CombineErrors(shutdownErr, crerr.Wrap(err, "flush logs"))
	}
	if err := closeStorage(); err != nil {
		shutdownErr = crerr.CombineErrors(shutdownErr, crerr.Wrap(err, "close storage"))
	}

	if shutdownErr != nil {
		logger.Error("graceful shutdown failed", "error", shutdownErr)
		os.Exit(1)
	}

	logger.Info("http server stopped")
}

func slogLevel(level logging.Level) slog.Level {
	switch {
	case level <= logging.LevelDebug:
		return slog.LevelDebug
	case level == logging.LevelInfo:
		return slog.LevelInfo
	case level == logging.LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
