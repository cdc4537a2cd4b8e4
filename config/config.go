package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port       string
	Timezone   string
	DBPath     string
	AIEndpoint string
	AIAPIKey   string
	AIModel    string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:       get("PORT", "8080"),
		Timezone:   get("TZ", "Asia/Kolkata"),
		DBPath:     get("DB_PATH", "studypal.db"),
		AIEndpoint: get("AI_ENDPOINT", ""),
		AIAPIKey:   get("AI_API_KEY", ""),
		AIModel:    get("AI_MODEL", "gpt-4o-mini"),
	}
	log.Printf("[cfg] port=%s db=%s model=%s ai_configured=%t", cfg.Port, cfg.DBPath, cfg.AIModel, cfg.AIEndpoint != "")
	return cfg
}
