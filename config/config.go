package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	DBPath      string
	GeminiKey   string
	GeminiModel string
	MLApiURL    string
	// Upper bounds on a single generation attempt; exceeding them is
	// reported as an interrupted generation, never retried automatically.
	GenerateTimeoutSec int
	StreamTimeoutSec   int
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
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				return n
			}
		}
		return def
	}
	cfg := AppConfig{
		Port:               get("PORT", "5500"),
		DBPath:             get("DB_PATH", "elevare.db"),
		GeminiKey:          get("GEMINI_API_KEY", ""),
		GeminiModel:        get("GEMINI_MODEL", "gemini-2.5-flash"),
		MLApiURL:           get("ML_API_URL", ""),
		GenerateTimeoutSec: getInt("GENERATE_TIMEOUT_SEC", 90),
		StreamTimeoutSec:   getInt("STREAM_TIMEOUT_SEC", 300),
	}
	log.Printf("[cfg] port=%s db=%s model=%s ml_api=%q gemini_key_set=%t",
		cfg.Port, cfg.DBPath, cfg.GeminiModel, cfg.MLApiURL, cfg.GeminiKey != "")
	return cfg
}
