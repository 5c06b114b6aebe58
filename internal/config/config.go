package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT (access and refresh tokens are signed with separate secrets)
	JWTSecret        string
	RefreshSecret    string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Payment gateway
	RazorpayKeyID     string
	RazorpayKeySecret string

	// UPI
	UPIPayeeID   string
	UPIPayeeName string

	// Uploads
	UploadDir     string
	MaxUploadSize int64

	// Admin
	AdminEmails string
	AdminToken  string

	// Server
	Port        string
	CORSOrigins string

	// Observability
	SentryDSN   string
	Environment string
}

func Load() *Config {
	// .env is optional; real deployments inject the environment directly.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "temple_foundation"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		RefreshSecret: getEnv("REFRESH_TOKEN_SECRET", ""),
		// Long-lived sessions are a product decision: 3-year access,
		// 5-year refresh.
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "26280h"), 26280*time.Hour),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "43800h"), 43800*time.Hour),

		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),

		UPIPayeeID:   getEnv("UPI_PAYEE_ID", ""),
		UPIPayeeName: getEnv("UPI_PAYEE_NAME", "Temple Foundation"),

		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadSize: parseBytes(getEnv("MAX_FILE_SIZE", ""), 10*1024*1024),

		AdminEmails: getEnv("ADMIN_EMAILS", ""),
		AdminToken:  getEnv("ADMIN_TOKEN", ""),

		Port:        getEnv("PORT", "3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		SentryDSN:   getEnv("SENTRY_DSN", ""),
		Environment: getEnv("APP_ENV", "development"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseBytes(s string, fallback int64) int64 {
	if s == "" {
		return fallback
	}
	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return fallback
		}
		n = n*10 + int64(r-'0')
	}
	if n == 0 {
		return fallback
	}
	return n
}
