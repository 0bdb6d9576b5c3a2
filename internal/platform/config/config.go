package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultTimezone  = "Africa/Johannesburg"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	MigrationsPath    string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	// Redis is optional; an empty address selects in-process fallbacks.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SalesCacheTTL time.Duration

	SalesWindowDays int
	RateLimit       string

	// Display settings for sales rows
	DisplayTimezone string
	DisplayLocation *time.Location
	CurrencyPrefix  string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "airvoucher")
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URL", "")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SALES_CACHE_TTL", "30s")
	v.SetDefault("SALES_WINDOW_DAYS", 30)
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("DISPLAY_TIMEZONE", defaultTimezone)
	v.SetDefault("CURRENCY_PREFIX", "R")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	cfg.JWTExpiryDuration = durationOr(v.GetString("JWT_EXPIRY_DURATION"), time.Hour, "JWT_EXPIRY_DURATION")

	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "airvoucher"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.GoogleClientID = v.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = v.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = v.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = v.GetString("FRONTEND_BASE_URL")

	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google OAuth will not function.")
	}

	cfg.RedisAddr = v.GetString("REDIS_ADDR")
	cfg.RedisPassword = v.GetString("REDIS_PASSWORD")
	cfg.RedisDB = v.GetInt("REDIS_DB")
	cfg.SalesCacheTTL = durationOr(v.GetString("SALES_CACHE_TTL"), 30*time.Second, "SALES_CACHE_TTL")

	cfg.SalesWindowDays = v.GetInt("SALES_WINDOW_DAYS")
	if cfg.SalesWindowDays <= 0 {
		log.Printf("Warning: Invalid SALES_WINDOW_DAYS (%d). Defaulting to 30.\n", cfg.SalesWindowDays)
		cfg.SalesWindowDays = 30
	}
	cfg.RateLimit = v.GetString("RATE_LIMIT")

	cfg.DisplayTimezone = v.GetString("DISPLAY_TIMEZONE")
	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		log.Printf("Warning: Unknown DISPLAY_TIMEZONE ('%s'). Falling back to UTC.\n", cfg.DisplayTimezone)
		cfg.DisplayTimezone = "UTC"
		loc = time.UTC
	}
	cfg.DisplayLocation = loc
	cfg.CurrencyPrefix = v.GetString("CURRENCY_PREFIX")

	return cfg, nil
}

func durationOr(raw string, fallback time.Duration, key string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}
