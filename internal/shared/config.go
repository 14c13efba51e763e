package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	MapsKey      string
	MapsBase     string
	MapsRPS      int
	MapsLanguage string

	SheetsCredentials string
	SpreadsheetID     string
	ExportTarget      string // sheets|mysql|none

	MySQLDSN  string
	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	MaxPages     int
	MaxTerms     int
	PageDelay    time.Duration
	NearbyRadius int
	Workers      int

	CORSOrigins []string
}

// Load reads .env when present, then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env not loaded")
	}

	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),

		MapsKey:      env("MAPS_API_KEY", ""),
		MapsBase:     env("MAPS_BASE_URL", "https://maps.googleapis.com/maps/api"),
		MapsRPS:      atoi("MAPS_RPS", 10),
		MapsLanguage: env("MAPS_LANGUAGE", "tr"),

		SheetsCredentials: env("SHEETS_CREDENTIALS", ""),
		SpreadsheetID:     env("SPREADSHEET_ID", ""),
		ExportTarget:      strings.ToLower(env("EXPORT_TARGET", "sheets")),

		MySQLDSN:  env("MYSQL_DSN", ""),
		RedisAddr: env("REDIS_ADDR", ""),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),
		CacheTTL:  time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,

		MaxPages:     atoi("SEARCH_MAX_PAGES", 3),
		MaxTerms:     atoi("SEARCH_MAX_TERMS", 12),
		PageDelay:    time.Duration(atoi("SEARCH_PAGE_DELAY_MS", 2000)) * time.Millisecond,
		NearbyRadius: atoi("NEARBY_RADIUS", 2000),
		Workers:      atoi("BATCH_WORKERS", 2),

		CORSOrigins: list("CORS_ORIGINS", []string{"*"}),
	}
	if c.MapsKey == "" {
		log.Warn().Msg("MAPS_API_KEY is empty")
	}
	return c
}

// SheetsCredentialsJSON returns the service account key. SHEETS_CREDENTIALS
// holds either the JSON itself or a path to it.
func (c Config) SheetsCredentialsJSON() ([]byte, error) {
	v := strings.TrimSpace(c.SheetsCredentials)
	if v == "" {
		return nil, nil
	}
	if strings.HasPrefix(v, "{") {
		return []byte(v), nil
	}
	return os.ReadFile(v)
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
	}
	return def
}

func list(k string, def []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
