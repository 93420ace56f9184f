package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret      = "a-very-secret-key-should-be-longer-and-random"
	defaultSessionKey     = "default_insecure_session_key_please_change_this_!@#$"
	defaultJWTExpiry      = time.Hour * 12
	defaultBackendTimeout = 15 * time.Second
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	// SessionEncryptionKey seeds the key that encrypts backend tokens at rest.
	SessionEncryptionKey string

	// Accounting backend
	BackendBaseURL            string
	BackendTimeout            time.Duration
	BackendBreakerMaxFailures uint32
	BackendBreakerTimeout     time.Duration

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	PosthogAPIKey string
	// RedisURL switches the login rate limiter to a shared redis store when set.
	RedisURL       string
	LoginRateLimit string // ulule/limiter formatted rate, e.g. "10-M"

	EntryKindsFile string // empty means the built-in entry kinds
	MigrationsPath string
	DraftDBPath    string // bbolt file used by mma_cli
}

// GoogleOAuthEnabled reports whether every Google sign-in setting is present.
func (c *Config) GoogleOAuthEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURL != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", defaultJWTExpiry.String())
	v.SetDefault("JWT_ISSUER", "mma-web")
	v.SetDefault("SESSION_ENCRYPTION_KEY", defaultSessionKey)
	v.SetDefault("BACKEND_BASE_URL", "http://localhost:8081/api/v1")
	v.SetDefault("BACKEND_TIMEOUT", defaultBackendTimeout.String())
	v.SetDefault("BACKEND_BREAKER_MAX_FAILURES", 5)
	v.SetDefault("BACKEND_BREAKER_TIMEOUT", "30s")
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URL", "")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	v.SetDefault("ENTRY_KINDS_FILE", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("DRAFT_DB_PATH", "mma_cli.db")

	// Environment variables override .env values, which override defaults.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = parseDuration(v, "JWT_EXPIRY_DURATION", defaultJWTExpiry)
	cfg.JWTIssuer = v.GetString("JWT_ISSUER")

	cfg.SessionEncryptionKey = v.GetString("SESSION_ENCRYPTION_KEY")
	if cfg.SessionEncryptionKey == "" || cfg.SessionEncryptionKey == defaultSessionKey {
		cfg.SessionEncryptionKey = defaultSessionKey
		log.Println("Warning: SESSION_ENCRYPTION_KEY is not set, using default insecure key. THIS IS NOT FOR PRODUCTION.")
	}

	cfg.BackendBaseURL = v.GetString("BACKEND_BASE_URL")
	cfg.BackendTimeout = parseDuration(v, "BACKEND_TIMEOUT", defaultBackendTimeout)
	cfg.BackendBreakerMaxFailures = v.GetUint32("BACKEND_BREAKER_MAX_FAILURES")
	if cfg.BackendBreakerMaxFailures == 0 {
		cfg.BackendBreakerMaxFailures = 5
	}
	cfg.BackendBreakerTimeout = parseDuration(v, "BACKEND_BREAKER_TIMEOUT", 30*time.Second)

	cfg.GoogleClientID = v.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = v.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = v.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = v.GetString("FRONTEND_BASE_URL")
	if !cfg.GoogleOAuthEnabled() {
		log.Println("Warning: Google OAuth settings incomplete. Google sign-in will not function.")
	}

	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.RedisURL = v.GetString("REDIS_URL")
	cfg.LoginRateLimit = v.GetString("LOGIN_RATE_LIMIT")
	cfg.EntryKindsFile = v.GetString("ENTRY_KINDS_FILE")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.DraftDBPath = v.GetString("DRAFT_DB_PATH")

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}
