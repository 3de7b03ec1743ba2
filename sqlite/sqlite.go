package sqlite

import (
	"fmt"

	"moviecredits/postgres"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewConnection opens a sqlite database at path (":memory:" works) with
// foreign keys enforced, and creates the schema from the gorm models.
func NewConnection(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite: get db instance: %w", err)
	}
	// one connection keeps in-memory databases and the pragma alive
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("sqlite: enable foreign keys: %w", err)
	}

	if err := postgres.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("sqlite: migrate: %w", err)
	}

	return db, nil
}
