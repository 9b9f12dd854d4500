package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env             string
	MongoURI        string
	MongoDB         string
	ServerAddr      string
	FrontendOrigins []string

	// PublicBaseURL is where this API is reachable; AssetBase is derived
	// from it unless ASSET_BASE_URL overrides, and is what image paths are
	// resolved against.
	PublicBaseURL string
	AssetBase     string
	StorageDir    string

	RateLimitLeads     int
	RateLimitWindowSec int

	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CacheTTLSeconds int

	AdminAPIKey       string
	AdminUser         string
	AdminPassword     string
	JWTSecret         string
	AccessTTLMinutes  int
	RefreshTTLMinutes int
	CookieSecure      bool

	BrevoAPIKey      string
	BrevoSenderEmail string
	BrevoSenderName  string
	BrevoSandbox     bool
	LeadNotifyEmail  string

	// DevMode runs without Mongo, against the local demo store.
	DevMode        bool
	LocalStoreFile string

	Timezone *time.Location
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.ToLower(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v == "1" || v == "true" || v == "yes"
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	loc, err := time.LoadLocation(getEnv("TZ", "Asia/Kolkata"))
	if err != nil {
		return nil, err
	}

	mongoURI := getEnv("MONGO_URI", "mongodb://localhost:27017/graphify")
	mongoDB := getEnv("MONGO_DB", "")
	if mongoDB == "" {
		mongoDB = mongoDBFromURI(mongoURI)
	}
	if mongoDB == "" {
		mongoDB = "graphify"
	}

	publicBase := strings.TrimRight(getEnv("PUBLIC_BASE_URL", "https://data.graphify.art"), "/")
	assetBase := strings.TrimRight(getEnv("ASSET_BASE_URL", ""), "/")
	if assetBase == "" {
		assetBase = assetBaseFromAPIBase(publicBase)
	}

	cfg := &Config{
		Env:             getEnv("APP_ENV", "development"),
		MongoURI:        mongoURI,
		MongoDB:         mongoDB,
		ServerAddr:      getEnv("SERVER_ADDR", ":8080"),
		FrontendOrigins: splitOrigins(getEnv("FRONTEND_ORIGINS", "http://localhost:3000")),

		PublicBaseURL: publicBase,
		AssetBase:     assetBase,
		StorageDir:    getEnv("STORAGE_DIR", "storage/app/public"),

		RateLimitLeads:     getEnvInt("RATE_LIMIT_LEADS", 5),
		RateLimitWindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),

		RedisURL:        getEnv("REDIS_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		CacheTTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 60),

		AdminAPIKey:       getEnv("ADMIN_API_KEY", ""),
		AdminUser:         getEnv("ADMIN_USER", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		AccessTTLMinutes:  getEnvInt("ACCESS_TTL_MINUTES", 15),
		RefreshTTLMinutes: getEnvInt("REFRESH_TTL_MINUTES", 43200),
		CookieSecure:      getEnvBool("COOKIE_SECURE", false),

		BrevoAPIKey:      getEnv("BREVO_API_KEY", ""),
		BrevoSenderEmail: getEnv("BREVO_SENDER_EMAIL", ""),
		BrevoSenderName:  getEnv("BREVO_SENDER_NAME", ""),
		BrevoSandbox:     getEnvBool("BREVO_SANDBOX", false),
		LeadNotifyEmail:  getEnv("LEAD_NOTIFY_EMAIL", ""),

		DevMode:        getEnvBool("DEV_MODE", false),
		LocalStoreFile: getEnv("LOCAL_STORE_FILE", "graphify-dev.db"),

		Timezone: loc,
	}

	return cfg, nil
}

func mongoDBFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	db := strings.Trim(u.Path, "/")
	if db == "" {
		return ""
	}
	// mongodb URIs sometimes include extra path segments; only the first
	// one is the db name.
	if idx := strings.Index(db, "/"); idx >= 0 {
		db = db[:idx]
	}
	return db
}

// assetBaseFromAPIBase strips a trailing /api segment the way the site
// derived its asset root from the API base.
func assetBaseFromAPIBase(base string) string {
	lower := strings.ToLower(base)
	if strings.HasSuffix(lower, "/api") {
		return base[:len(base)-len("/api")]
	}
	return base
}
