package config

import (
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageGorm     = "gorm"
)

// Config is read once at startup from the environment (.env is autoloaded
// by cmd/api).
type Config struct {
	Port             int
	GinMode          string
	StorageDriver    string
	DatabaseURL      string
	BusinessTimezone string
	MonthlyGoal      float64
	JWTSecret        string
	LogLevel         string
	LogFormat        string
	NotificationFeed int
	MercadoPagoToken string
}

func Load() Config {
	return Config{
		Port:             getenvInt("PORT", 8080),
		GinMode:          getenvDefault("GIN_MODE", "debug"),
		StorageDriver:    strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		DatabaseURL:      getenvDefault("DATABASE_URL", "file:oficina.db?cache=shared"),
		BusinessTimezone: getenvDefault("BUSINESS_TIMEZONE", "America/Sao_Paulo"),
		MonthlyGoal:      getenvFloat("MONTHLY_GOAL", 0),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		LogLevel:         getenvDefault("LOG_LEVEL", "info"),
		LogFormat:        getenvDefault("LOG_FORMAT", "json"),
		NotificationFeed: getenvInt("NOTIFICATION_FEED_SIZE", 100),
		MercadoPagoToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
	}
}

// Location resolves the business timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.BusinessTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func getenvFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64)
	if err != nil {
		return def
	}
	return v
}
