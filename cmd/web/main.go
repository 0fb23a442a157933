package main

import (
	"log"
	"os"

	"apartment-portal/internal/client"
	"apartment-portal/internal/config"
	"apartment-portal/internal/logging"
	"apartment-portal/internal/webapp"
	"apartment-portal/internal/webapp/templates"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	configPath := getEnv("CONFIG_PATH", "config/config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.Logging.Level)

	baseURL := getEnv("API_URL", cfg.Client.BaseURL)
	api := client.New(baseURL, cfg.Client.GetTimeout())

	server := webapp.NewServer(api, templates.FS, cfg.Web.GetDebounce(), cfg.Web.PageSize, logger)

	addr := ":" + getEnv("WEB_PORT", cfg.Web.Port)
	if err := server.ListenAndServe(addr); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
