package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anilab-chat-be/internal/bootstrap"
	"anilab-chat-be/internal/config"
	"anilab-chat-be/internal/constant"
	"anilab-chat-be/internal/pkg/logger"
	"anilab-chat-be/internal/server"
	"anilab-chat-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Logger
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()
	if !cfg.EnvFileLoaded {
		sysLogger.Debug(constant.LogModuleServer, "No .env file found, using process environment", nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Tracer (OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(ctx, cfg.App.OtelEnabled, sysLogger)
	defer shutdownTracer(context.Background())

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(ctx, cfg, sysLogger)
	defer container.Close()

	// 5. Server
	srv := server.New(cfg, container)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run() }()

	select {
	case err := <-errCh:
		if err != nil {
			sysLogger.Error(constant.LogModuleServer, "Server stopped", map[string]interface{}{"error": err.Error()})
		}
	case <-ctx.Done():
		sysLogger.Info(constant.LogModuleServer, "Shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sysLogger.Error(constant.LogModuleServer, "Graceful shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}
}
