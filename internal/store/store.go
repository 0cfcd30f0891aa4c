// Package store wraps the database behind per-resource persistence types.
// Every store receives its *gorm.DB through its constructor; there is no
// package-level connection state.
package store

import (
	"library-services/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// DefaultPageSize applies when a list request carries no limit.
	DefaultPageSize = 10
	// DefaultMaxPageSize caps a requested limit unless config overrides it.
	DefaultMaxPageSize = 100
)

// Open connects to the Postgres instance described by cfg. Driver errors
// are translated so unique-index conflicts surface as gorm.ErrDuplicatedKey.
func Open(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
}

// OpenMemory opens an in-memory SQLite database. Used by tests and as the
// dev fallback when Postgres is unreachable at startup.
func OpenMemory() (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
}

// clampPage normalizes pagination inputs: page starts at 1, pageSize
// falls back to the default and never exceeds max.
func clampPage(page, pageSize, max int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if max > 0 && pageSize > max {
		pageSize = max
	}
	return page, pageSize
}
