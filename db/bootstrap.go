package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"crossbeamseed/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// BootstrapSQLite opens the audit journal at dbPath and creates its schema.
func BootstrapSQLite(dbPath string) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stderr, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second,   // Slow SQL threshold
			LogLevel:                  logger.Silent, // Log level
			IgnoreRecordNotFoundError: true,          // Ignore ErrRecordNotFound error for logger
			ParameterizedQueries:      true,          // Don't include params in the SQL log
			Colorful:                  false,         // Disable color
		},
	)
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.SeedRun{},
		&model.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}

// OpenAuditStore bootstraps the journal at dbPath and wraps it in a SQLStore.
func OpenAuditStore(dbPath string) (*SQLStore, error) {
	db, err := BootstrapSQLite(dbPath)
	if err != nil {
		return nil, err
	}
	return NewSQLStore(db), nil
}
