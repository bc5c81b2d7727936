// Package testutil provides an in-memory database for package tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gestionusuarios/userhub/internal/config"
	"gestionusuarios/userhub/internal/model"
)

// NewDB opens a migrated in-memory SQLite database. The pool is capped at one
// connection because every new :memory: connection is a separate database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"}.DSN()
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
