// Package seed loads a demo account, an admin and a starter catalogue of
// recipes into an empty database.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/recipebook/backend/internal/models"
)

const (
	DemoEmail    = "emily.johnson@example.com"
	DemoPassword = "password123"
	AdminEmail   = "admin@example.com"
)

// Options controls a seeding run
type Options struct {
	// Reset removes every user, recipe and meal plan first
	Reset bool
	// AdminPassword is the admin account's password
	AdminPassword string
}

// Result reports what a run created
type Result struct {
	Skipped bool
	Users   int
	Recipes int
}

// Run seeds db. Without Reset an already seeded database is left alone.
func Run(ctx context.Context, db *gorm.DB, opts Options, log zerolog.Logger) (Result, error) {
	if opts.AdminPassword == "" {
		return Result{}, errors.New("admin password is required")
	}
	db = db.WithContext(ctx)

	if opts.Reset {
		log.Info().Msg("clearing existing data")
		for _, model := range []interface{}{&models.MealPlan{}, &models.Recipe{}, &models.User{}} {
			if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return Result{}, fmt.Errorf("failed to clear %T: %w", model, err)
			}
		}
	} else {
		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", DemoEmail).Count(&count).Error; err != nil {
			return Result{}, fmt.Errorf("failed to check for demo user: %w", err)
		}
		if count > 0 {
			log.Info().Str("email", DemoEmail).Msg("demo user exists, skipping seed")
			return Result{Skipped: true}, nil
		}
	}

	var result Result
	err := db.Transaction(func(tx *gorm.DB) error {
		demo, err := newUser("Emily", "Johnson", DemoEmail, "emilycooks", DemoPassword, models.RoleUser)
		if err != nil {
			return err
		}
		demo.Image = "https://dummyjson.com/icon/emilys/128"
		demo.Bio = "Passionate home cook and food enthusiast. Love exploring cuisines from around the world!"
		admin, err := newUser("Site", "Admin", AdminEmail, "admin", opts.AdminPassword, models.RoleAdmin)
		if err != nil {
			return err
		}
		if err := tx.Create(demo).Error; err != nil {
			return fmt.Errorf("failed to create demo user: %w", err)
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		result.Users = 2

		recipes := make([]models.Recipe, len(demoRecipes))
		copy(recipes, demoRecipes)
		for i := range recipes {
			recipes[i].UserID = demo.ID
			if err := recipes[i].Validate(); err != nil {
				return fmt.Errorf("invalid seed recipe %q: %w", recipes[i].Name, err)
			}
		}
		if err := tx.Create(&recipes).Error; err != nil {
			return fmt.Errorf("failed to create recipes: %w", err)
		}
		result.Recipes = len(recipes)

		created := make(models.UUIDList, 0, len(recipes))
		for _, r := range recipes {
			created = append(created, r.ID)
		}
		return tx.Model(&models.User{}).Where("id = ?", demo.ID).Update("created_recipes", created).Error
	})
	if err != nil {
		return Result{}, err
	}

	log.Info().
		Int("users", result.Users).
		Int("recipes", result.Recipes).
		Str("demo_email", DemoEmail).
		Msg("database seeded")
	return result, nil
}

func newUser(first, last, email, username, password, role string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return &models.User{
		FirstName:    first,
		LastName:     last,
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}, nil
}
