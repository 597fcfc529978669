package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bookcalendar/internal/config"
	"bookcalendar/internal/mockapi"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadMockConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	tokens := mockapi.NewTokenService(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	server := mockapi.NewServer(tokens, logger)

	logger.Info("mock server listening", zap.String("port", cfg.HTTPPort))
	if err := http.ListenAndServe(":"+cfg.HTTPPort, server.Router()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
