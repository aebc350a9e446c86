package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go.uber.org/dig"

	"service-admission/internal/config"
	"service-admission/internal/http/pprofserver"
	"service-admission/internal/logx"
)

// MustRun starts the HTTP server using the provided DI container.
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Println("shutdown requested, exiting")
			return
		}
		log.Fatalf("run error: %v", err)
	}
}

func run(container *dig.Container) error {
	return container.Invoke(func(
		server *http.Server,
		ctx context.Context,
		cfg *config.Config,
		logger logx.Logger,
	) error {
		startPprof(cfg, logger)
		startServer(server, logger)
		waitForShutdown(ctx, logger)
		gracefulShutdown(server, logger, 15*time.Second)
		closeResources(server, logger)
		return nil
	})
}

func startPprof(cfg *config.Config, logger logx.Logger) {
	if cfg.Pprof.Addr == "" {
		return
	}
	go func() {
		logger.Info("pprof listening", logx.String("addr", cfg.Pprof.Addr))
		srv := &http.Server{
			Addr:              cfg.Pprof.Addr,
			Handler:           pprofserver.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof listen error", logx.Err(err))
		}
	}()
}

func startServer(server *http.Server, logger logx.Logger) {
	go func() {
		logger.Info("service-admission listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen error", logx.Err(err))
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down service-admission")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(server *http.Server, logger logx.Logger) {
	if err := server.Close(); err != nil {
		logger.Error("server close error", logx.Err(err))
	}
}
