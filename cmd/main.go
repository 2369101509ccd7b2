package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pcst_ai/internal/config"
	"pcst_ai/internal/handlers"
	"pcst_ai/internal/llm"
	"pcst_ai/internal/logger"
	"pcst_ai/internal/server"
	"pcst_ai/internal/service"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// load .env, configs/config.yml and environment
	cfg, err := config.Load(config.Options{})
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if cfg.LogLevel != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	// completion client lives for the whole process
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		log.Fatalw("failed to init completion client", "err", err, "provider", cfg.LLM.Provider)
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			log.Errorw("failed to close completion client", "err", cerr)
		}
	}()

	// wire dependencies
	services := service.NewService(client)
	apiHandler := handlers.NewHandler(services, log, cfg.CORS.AllowedOrigins)

	srv := server.New(server.Options{
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	})
	log.Infow("server starting", "port", cfg.Port, "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(cancel, srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}

	cancel()
}
