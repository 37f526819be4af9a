package config

import (
	"log"
	"os"
	"strconv"

	authconstant "github.com/dev-charan/Digi-Locker/pkg/constant"
	"github.com/joho/godotenv"
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int
	AppBaseURL         string
	UploadDir          string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

func Load() *Config {
	// Best-effort: a missing .env just means real env vars are in charge.
	_ = godotenv.Load()

	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		DBURL:              mustGetEnv("DB_URL"),
		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", authconstant.DefaultAccessExpiryMinutes),
		RefreshExpiryMin:   getEnvAsInt("REFRESH_TOKEN_EXPIRY", authconstant.DefaultRefreshExpiryMinutes),
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:3000"),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads/documents"),
		SMTPHost:           getEnv("SMTP_HOST", "localhost"),
		SMTPPort:           getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername:       getEnv("SMTP_USER", ""),
		SMTPPassword:       getEnv("SMTP_PASS", ""),
		SMTPFrom:           getEnv("SMTP_FROM", "no-reply@digilocker.local"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
