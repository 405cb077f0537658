package testhelpers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/recipebook/backend/internal/models"
)

// TestPassword is the plain text password of every fixture user
const TestPassword = "password123"

var fixtureHash string

func passwordHash(t *testing.T) string {
	t.Helper()
	if fixtureHash == "" {
		h, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		fixtureHash = string(h)
	}
	return fixtureHash
}

// CreateUser inserts a user with the given username and role
func CreateUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()
	user := &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        fmt.Sprintf("%s@example.com", username),
		Username:     username,
		PasswordHash: passwordHash(t),
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

// RecipeOption customizes a fixture recipe
type RecipeOption func(r *models.Recipe)

// CreateRecipe inserts a valid recipe owned by ownerID and records it on the owner
func CreateRecipe(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name string, opts ...RecipeOption) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		Name:            name,
		Ingredients:     models.StringList{"Salt", "Pepper"},
		Instructions:    models.StringList{"Mix", "Serve"},
		PrepTimeMinutes: 10,
		CookTimeMinutes: 20,
		Servings:        2,
		Difficulty:      models.DifficultyEasy,
		Cuisine:         "Italian",
		Tags:            models.StringList{"Quick"},
		Image:           "https://cdn.dummyjson.com/recipe-images/1.webp",
		MealType:        models.StringList{"Dinner"},
		UserID:          ownerID,
	}
	for _, opt := range opts {
		opt(recipe)
	}
	if err := recipe.Validate(); err != nil {
		t.Fatalf("invalid fixture recipe %s: %v", name, err)
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create recipe %s: %v", name, err)
	}

	var owner models.User
	if err := db.First(&owner, "id = ?", ownerID).Error; err == nil {
		owner.CreatedRecipes = append(owner.CreatedRecipes, recipe.ID)
		db.Model(&models.User{}).Where("id = ?", ownerID).Update("created_recipes", owner.CreatedRecipes)
	}
	return recipe
}
