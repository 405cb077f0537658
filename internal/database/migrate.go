package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/recipebook/backend/internal/models"
)

// postgresIndexes back the meal type containment filter on postgres.
// Substring filters scan, so they get no index.
var postgresIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_recipes_meal_type ON recipes USING GIN (meal_type jsonb_path_ops)`,
}

// Migrate creates or updates the users, recipes and meal_plans tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Recipe{}, &models.MealPlan{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	for _, stmt := range postgresIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
