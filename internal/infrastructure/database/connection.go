// Package database opens the process-owned SQLite handle. The handle is
// passed explicitly to repositories and commands; there is no package
// global.
package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tansy/internal/shared/config"
	"tansy/internal/shared/logger"
)

// Open establishes the SQLite connection. Foreign keys are switched on
// at the connection level so cascade deletes and comment FK checks are
// enforced by the store itself. The underlying sql.DB pool makes the
// returned handle safe for concurrent request contexts; SQLite
// serializes writers internally.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := buildDSN(cfg.Path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", cfg.Path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established", "path", cfg.Path)

	return db, nil
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	logger.Info("database connection closed")
	return nil
}

func buildDSN(path string) string {
	if path == "" {
		path = "tansy.db"
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}
