package repositories

import (
	"errors"

	"github.com/rohits-web03/notedrop/internal/logger"
	"github.com/rohits-web03/notedrop/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrNotFound is returned by all repositories when no row matches. Soft-deleted
// and foreign-owned notes look exactly like missing rows.
var ErrNotFound = errors.New("record not found")

func ConnectDatabase(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Fatal("Failed to connect to database: ", err)
	}
	// Run migrations
	if err := db.AutoMigrate(
		&models.User{},
		&models.Note{},
	); err != nil {
		logger.Log.Fatal("Migration failed: ", err)
	}
	logger.Log.Info("Successfully connected to database")
	return db
}
