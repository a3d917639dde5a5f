package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/petpsych/behavior-analysis-api/internal/analyzer"
	"github.com/petpsych/behavior-analysis-api/internal/config"
	"github.com/petpsych/behavior-analysis-api/internal/router"
	"github.com/petpsych/behavior-analysis-api/internal/services"
	"github.com/petpsych/behavior-analysis-api/internal/utils"
	"github.com/petpsych/behavior-analysis-api/internal/video"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := utils.NewLogger(cfg.LogLevel, cfg.Debug)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gemini, err := analyzer.NewGeminiClient(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize generation client", "error", err)
	}
	defer gemini.Close()

	gen := analyzer.NewRetrier(gemini, logger)
	svc := services.NewService(gen, cfg, logger)

	// Backstop sweep for upload artifacts that outlived their request
	sweeper := video.NewSweeper(cfg.UploadDir, logger)
	go sweeper.Run(ctx)

	handler := router.NewRouter(svc, cfg, logger)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server",
			"addr", srv.Addr,
			"model", cfg.GeminiModel,
			"upload_dir", cfg.UploadDir,
			"max_upload_mb", cfg.MaxUploadSize>>20,
			"debug", cfg.Debug,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
