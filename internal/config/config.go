package config

import (
	"os"
	"strconv"
	"strings"
)

const maxLogRetentionDays = 7

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	DatabaseURL      string
	JWTSecret        string
	JWTIssuer        string
	AccessTTLSeconds int64
	MediaStoragePath string
	MediaURL         string
	MetricsDiskPath  string
	BlogPageSize     int
	CorsOrigins      []string
	AdminUsername    string
	AdminEmail       string
	AdminPassword    string
	LogDir           string
	LogRetentionDays int
	Port             string
}

func Load() Config {
	return Config{
		DatabaseURL:      mustEnv("DATABASE_URL"),
		JWTSecret:        mustEnv("JWT_SECRET"),
		JWTIssuer:        envOr("JWT_ISSUER", "portfolio"),
		AccessTTLSeconds: int64(envOrInt("ACCESS_TTL_SECONDS", 14400)),
		MediaStoragePath: envOr("MEDIA_STORAGE_PATH", "storage/media"),
		MediaURL:         normalizeMediaURL(envOr("MEDIA_URL", "/media/")),
		MetricsDiskPath:  envOr("METRICS_DISK_PATH", "storage/media"),
		BlogPageSize:     envOrInt("BLOG_PAGE_SIZE", 10),
		CorsOrigins:      parseCSV(envOr("CORS_ORIGINS", "")),
		AdminUsername:    envOr("ADMIN_USERNAME", "admin"),
		AdminEmail:       envOr("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		LogDir:           envOr("LOG_DIR", "storage/logs"),
		LogRetentionDays: retentionDays(envOrInt("LOG_RETENTION_DAYS", maxLogRetentionDays)),
		Port:             envOr("PORT", "8080"),
	}
}

// retentionDays keeps log retention between one day and a week.
func retentionDays(days int) int {
	if days <= 0 {
		return maxLogRetentionDays
	}
	return min(days, maxLogRetentionDays)
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}

// normalizeMediaURL makes sure the prefix ends with a slash so paths can be appended.
func normalizeMediaURL(raw string) string {
	if !strings.HasSuffix(raw, "/") {
		return raw + "/"
	}
	return raw
}
