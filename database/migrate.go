package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"localgigs_backend/internal/models"
	chatmodels "localgigs_backend/internal/models/chat"
)

// Connect opens a GORM connection against the configured Postgres DSN.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// AutoMigrate brings the schema up to date for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Job{},
		&models.Applicant{},
		&models.UpcomingJob{},
		&models.RecentJob{},
		&chatmodels.Conversation{},
		&chatmodels.Message{},
	)
}
