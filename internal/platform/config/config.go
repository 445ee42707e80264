package config

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageDriverLocal = "local"
	StorageDriverMinio = "minio"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL      string
	DBConnectTimeout time.Duration
	Port             string
	IsProduction     bool

	FrontendURL    string
	AllowedOrigins []string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	// Mail
	EmailUser string
	EmailPass string
	SMTPHost  string
	SMTPPort  int

	// File storage
	StorageDriver  string
	UploadsDir     string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	MaxPermitBytes int64
	MaxImageBytes  int64

	AllowImage1Delete bool

	// Rate limiting and OTP
	RedisURL          string
	RateLimitAttempts int64
	RateLimitWindow   time.Duration
	OTPTTL            time.Duration

	CleanupSweepInterval time.Duration
	HistoryRetention     time.Duration

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_NAME", "vinque")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_CONNECT_TIMEOUT", "10s")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("FRONTEND_URL", "http://localhost:5173")
	viper.SetDefault("ALLOWED_ORIGINS", "")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "vinque-backend")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("EMAIL_USER", "")
	viper.SetDefault("EMAIL_PASS", "")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("STORAGE_DRIVER", StorageDriverLocal)
	viper.SetDefault("UPLOADS_DIR", "uploads")
	viper.SetDefault("MINIO_ENDPOINT", "")
	viper.SetDefault("MINIO_ACCESS_KEY", "")
	viper.SetDefault("MINIO_SECRET_KEY", "")
	viper.SetDefault("MINIO_BUCKET", "vinque-uploads")
	viper.SetDefault("MINIO_USE_SSL", false)
	viper.SetDefault("MAX_PERMIT_BYTES", 10<<20)
	viper.SetDefault("MAX_IMAGE_BYTES", 5<<20)
	viper.SetDefault("ALLOW_IMAGE1_DELETE", false)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("RATE_LIMIT_ATTEMPTS", 5)
	viper.SetDefault("RATE_LIMIT_WINDOW", "10m")
	viper.SetDefault("OTP_TTL", "10m")
	viper.SetDefault("CLEANUP_SWEEP_INTERVAL", "1m")
	viper.SetDefault("HISTORY_RETENTION", "8760h")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = buildDatabaseURL(
			viper.GetString("DB_USER"),
			viper.GetString("DB_PASSWORD"),
			viper.GetString("DB_HOST"),
			viper.GetString("DB_PORT"),
			viper.GetString("DB_NAME"),
			viper.GetString("DB_SSLMODE"),
		)
	}
	cfg.DBConnectTimeout = durationOrDefault("DB_CONNECT_TIMEOUT", 10*time.Second)

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "5000"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.FrontendURL = strings.TrimRight(viper.GetString("FRONTEND_URL"), "/")
	cfg.AllowedOrigins = parseOrigins(viper.GetString("ALLOWED_ORIGINS"), cfg.FrontendURL)

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET is required when IS_PRODUCTION=true")
		}
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", 24*time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "vinque-backend"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will reject every credential.")
	}
	if cfg.GoogleClientSecret == "" || cfg.GoogleRedirectURL == "" {
		log.Println("Warning: GOOGLE_CLIENT_SECRET or GOOGLE_REDIRECT_URL not set. Authorization-code exchange will not function.")
	}

	cfg.EmailUser = viper.GetString("EMAIL_USER")
	cfg.EmailPass = viper.GetString("EMAIL_PASS")
	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	if cfg.EmailUser == "" || cfg.EmailPass == "" {
		log.Println("Warning: EMAIL_USER or EMAIL_PASS not set. OTP emails will be logged instead of sent.")
	}

	cfg.StorageDriver = strings.ToLower(viper.GetString("STORAGE_DRIVER"))
	if cfg.StorageDriver != StorageDriverLocal && cfg.StorageDriver != StorageDriverMinio {
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	cfg.UploadsDir = viper.GetString("UPLOADS_DIR")
	cfg.MinioEndpoint = viper.GetString("MINIO_ENDPOINT")
	cfg.MinioAccessKey = viper.GetString("MINIO_ACCESS_KEY")
	cfg.MinioSecretKey = viper.GetString("MINIO_SECRET_KEY")
	cfg.MinioBucket = viper.GetString("MINIO_BUCKET")
	cfg.MinioUseSSL = viper.GetBool("MINIO_USE_SSL")
	if cfg.StorageDriver == StorageDriverMinio && cfg.MinioEndpoint == "" {
		return nil, fmt.Errorf("MINIO_ENDPOINT is required when STORAGE_DRIVER=minio")
	}
	cfg.MaxPermitBytes = viper.GetInt64("MAX_PERMIT_BYTES")
	cfg.MaxImageBytes = viper.GetInt64("MAX_IMAGE_BYTES")
	cfg.AllowImage1Delete = viper.GetBool("ALLOW_IMAGE1_DELETE")

	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.RateLimitAttempts = viper.GetInt64("RATE_LIMIT_ATTEMPTS")
	if cfg.RateLimitAttempts <= 0 {
		cfg.RateLimitAttempts = 5
		log.Printf("Warning: Invalid RATE_LIMIT_ATTEMPTS. Defaulting to %d.\n", cfg.RateLimitAttempts)
	}
	cfg.RateLimitWindow = durationOrDefault("RATE_LIMIT_WINDOW", 10*time.Minute)
	cfg.OTPTTL = durationOrDefault("OTP_TTL", 10*time.Minute)
	cfg.CleanupSweepInterval = durationOrDefault("CLEANUP_SWEEP_INTERVAL", time.Minute)
	cfg.HistoryRetention = durationOrDefault("HISTORY_RETENTION", 365*24*time.Hour)

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func buildDatabaseURL(user, password, host, port, name, sslMode string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     host + ":" + port,
		Path:     "/" + name,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

// parseOrigins splits a comma separated allow-list. The frontend URL is
// always allowed.
func parseOrigins(raw, frontend string) []string {
	seen := map[string]bool{}
	var origins []string
	add := func(o string) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" || seen[o] {
			return
		}
		seen[o] = true
		origins = append(origins, o)
	}
	add(frontend)
	for _, o := range strings.Split(raw, ",") {
		add(o)
	}
	return origins
}
