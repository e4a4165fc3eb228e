package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"bobcathub/internal/pkg"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	MySQLDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AccessSecret  string
	RefreshSecret string

	// Registration policy.
	EmailDomain string
	AdminCodes  []string

	FeedCacheTTL time.Duration

	SMTP pkg.SMTPConfig

	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from the environment, with a .env file as
// fallback for development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		MySQLDSN:      getEnv("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/bobcathub?charset=utf8mb4&parseTime=True"),
		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		AccessSecret:  getEnv("JWT_ACCESS_SECRET", "dev-secret-key-change-in-production"),
		RefreshSecret: getEnv("JWT_REFRESH_SECRET", "dev-refresh-key-change-in-production"),
		EmailDomain:   getEnv("EMAIL_DOMAIN", "@ucmerced.edu"),
		AdminCodes:    splitList(getEnv("ADMIN_CODES", "")),
		FeedCacheTTL:  time.Duration(getEnvInt("FEED_CACHE_TTL_SECONDS", 300)) * time.Second,
		SMTP: pkg.SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "BobcatHub <no-reply@ucmerced.edu>"),
		},
		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "club-activity"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
