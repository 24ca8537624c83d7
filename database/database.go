package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cloverwhale/cafe-and-wifi/model"
)

// Open connects to the backing store. TranslateError is enabled so that
// unique-constraint violations surface as gorm.ErrDuplicatedKey on both
// drivers.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite", "":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// MigrateWeb creates the session surface's schema.
func MigrateWeb(db *gorm.DB) error {
	return db.AutoMigrate(&model.User{}, &model.Cafe{})
}

// MigrateDirectory creates the public API surface's schema.
func MigrateDirectory(db *gorm.DB) error {
	return db.AutoMigrate(&model.DirectoryCafe{})
}
