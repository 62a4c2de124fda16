package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabriel/mindspeed/internal/api"
	"github.com/gabriel/mindspeed/internal/config"
	"github.com/gabriel/mindspeed/internal/db"
	"github.com/gabriel/mindspeed/internal/logger"
	"github.com/gabriel/mindspeed/internal/repository/sqlite"
	"github.com/gabriel/mindspeed/internal/services"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("MindSpeed Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("app_env=%s", cfg.Env)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Explicit compile-time composition: repositories into the service, the
	// service into the HTTP server.
	playerRepo := sqlite.NewPlayerRepository(database.DB)
	gameRepo := sqlite.NewGameRepository(database.DB)
	questionRepo := sqlite.NewQuestionRepository(database.DB)
	answerRepo := sqlite.NewAnswerRepository(database.DB)

	gameService := services.NewGameService(playerRepo, gameRepo, questionRepo, answerRepo)

	srv := &api.Server{
		GameService: gameService,
		Dev:         cfg.Development(),
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("MindSpeed Server Stopped")
	log.Info("===========================================")
}
