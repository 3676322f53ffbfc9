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

	"github.com/gin-gonic/gin"

	"obesity-triage/config"
	_ "obesity-triage/docs"
	"obesity-triage/internal/artifact"
	"obesity-triage/internal/handlers"
	"obesity-triage/internal/services"
)

func main() {
	config.InitLogger()
	slog.Info("Starting obesity triage service", "version", "1.0.0")

	// Загрузка конфигурации
	cfg := config.Load()
	slog.Info("Configuration loaded successfully",
		"server_port", cfg.Port,
		"gin_mode", cfg.Mode,
	)

	// Загрузка артефакта модели: ровно один раз, при любой ошибке
	// сервис останавливается — анализ без бандла невозможен
	modelPath := cfg.ModelPath
	if modelPath == "" {
		var err error
		modelPath, err = artifact.DefaultPath()
		if err != nil {
			slog.Error("Failed to resolve model path", "error", err)
			os.Exit(1)
		}
	}

	art, err := artifact.Load(modelPath)
	if err != nil {
		slog.Error("Failed to load model artifact", "path", modelPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Model artifact loaded",
		"path", modelPath,
		"features", len(art.Features),
		"classes", len(art.LabelEncoder.Classes),
	)

	// Инициализация сервисов и обработчиков
	triageService := services.NewTriageService(art)
	triageHandler := handlers.NewTriageHandler(triageService)

	gin.SetMode(cfg.Mode)
	router := handlers.SetupRoutes(triageHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	waitForShutdown(server)
}

func waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server gracefully stopped")
}
