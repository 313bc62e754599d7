package database

import (
	"gorm.io/gorm"

	"github.com/mtessier/recipe-api/internal/models"
)

// Migrate brings the schema up to date for the three collections.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Recipe{},
		&models.Ingredient{},
		&models.Step{},
	)
}
