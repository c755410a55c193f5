package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	Timezone      string
	DBPath        string
	DataGovURL    string
	DataGovAPIKey string
	FetchLimit    int
	ScrapeURL     string
	CacheTTL      time.Duration
	RefreshCron   string
	GeographyPath string
	CatalogPath   string
	JWTSecret     string
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
	limit, err := strconv.Atoi(get("FETCH_LIMIT", "5000"))
	if err != nil || limit <= 0 {
		limit = 5000
	}
	ttl, err := time.ParseDuration(get("PRICE_CACHE_TTL", "30m"))
	if err != nil || ttl <= 0 {
		ttl = 30 * time.Minute
	}
	cfg := AppConfig{
		Port:          get("PORT", "8001"),
		Timezone:      get("TZ", "Asia/Kolkata"),
		DBPath:        get("DB_PATH", "krishi.db"),
		DataGovURL:    get("DATA_GOV_URL", ""),
		DataGovAPIKey: get("DATA_GOV_API_KEY", ""),
		FetchLimit:    limit,
		ScrapeURL:     get("SCRAPE_URL", ""),
		CacheTTL:      ttl,
		RefreshCron:   get("REFRESH_CRON", "0 */12 * * *"),
		GeographyPath: get("GEOGRAPHY_PATH", "geography.json"),
		CatalogPath:   get("CALENDAR_SEED_PATH", ""),
		JWTSecret:     get("JWT_SECRET", "dev-secret-change-me"),
	}
	log.Printf("[cfg] port=%s db=%s cache_ttl=%s cron=%q", cfg.Port, cfg.DBPath, cfg.CacheTTL, cfg.RefreshCron)
	return cfg
}
