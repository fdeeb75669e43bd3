package database

import (
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectGorm opens the relational store. postgres:// URLs go to the hosted
// Postgres backend; anything else is treated as a SQLite DSN for local work.
func ConnectGorm(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		zap.L().Info("[database][gorm] connecting to postgres")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	zap.L().Info("[database][gorm] using sqlite", zap.String("dsn", dsn))
	return gorm.Open(sqlite.Open(dsn), cfg)
}
