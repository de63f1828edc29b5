package database

import (
	"gorm.io/gorm"

	"github.com/sociable/social-api/internal/models"
)

// Migrate creates or updates the schema for all models. The follow join
// table carries its uniqueness and no-self-follow constraints in the model
// tags, so running this is enough to enforce both.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Follow{},
	)
}
