package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	Timezone        string
	DBPath          string
	SlotPoolSize    int
	PlantIDEndpoint string
	PlantIDAPIKey   string
	EmbEndpoint     string
	EmbAPIKey       string
	EmbModel        string
	CropsCSV        string
	CropsXLSX       string
	GuideDomains    string
	GuideMaxBytes   int
	StrictAuth      bool
}

func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		Timezone:        get("TZ", "UTC"),
		DBPath:          get("DB_PATH", "towergrow.db"),
		SlotPoolSize:    getInt("SLOT_POOL_SIZE", 12),
		PlantIDEndpoint: get("PLANTID_ENDPOINT", "https://plant.id/api"),
		PlantIDAPIKey:   get("PLANTID_API_KEY", ""),
		EmbEndpoint:     get("EMB_ENDPOINT", ""),
		EmbAPIKey:       get("EMB_API_KEY", ""),
		EmbModel:        get("EMB_MODEL", "text-embedding-3-small"),
		CropsCSV:        get("CROPS_CSV", ""),
		CropsXLSX:       get("CROPS_XLSX", ""),
		GuideDomains:    get("GUIDES_ALLOWED_DOMAINS", ""),
		GuideMaxBytes:   getInt("GUIDES_MAX_BYTES_PER_PAGE", 1500000),
		StrictAuth:      get("STRICT_AUTH", "false") == "true",
	}
	slog.Info("config loaded", "port", cfg.Port, "db", cfg.DBPath, "slots", cfg.SlotPoolSize)
	return cfg
}
