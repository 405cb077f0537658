package types

import "github.com/google/uuid"

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,max=50"`
	Password  string `json:"password" binding:"required,min=6"`
	Bio       string `json:"bio" binding:"max=500"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateRecipeRequest represents the request body for creating a recipe.
// Field-level constraints are enforced by the recipe model.
type CreateRecipeRequest struct {
	Name               string   `json:"name" binding:"required"`
	Ingredients        []string `json:"ingredients" binding:"required"`
	Instructions       []string `json:"instructions" binding:"required"`
	PrepTimeMinutes    int      `json:"prepTimeMinutes"`
	CookTimeMinutes    int      `json:"cookTimeMinutes"`
	Servings           int      `json:"servings" binding:"required"`
	Difficulty         string   `json:"difficulty" binding:"required"`
	Cuisine            string   `json:"cuisine" binding:"required"`
	CaloriesPerServing *float64 `json:"caloriesPerServing"`
	Tags               []string `json:"tags"`
	Image              string   `json:"image" binding:"required"`
	Rating             float64  `json:"rating"`
	ReviewCount        int      `json:"reviewCount"`
	MealType           []string `json:"mealType"`
}

// UpdateRecipeRequest represents a partial recipe update; nil fields are left alone
type UpdateRecipeRequest struct {
	Name               *string   `json:"name"`
	Ingredients        *[]string `json:"ingredients"`
	Instructions       *[]string `json:"instructions"`
	PrepTimeMinutes    *int      `json:"prepTimeMinutes"`
	CookTimeMinutes    *int      `json:"cookTimeMinutes"`
	Servings           *int      `json:"servings"`
	Difficulty         *string   `json:"difficulty"`
	Cuisine            *string   `json:"cuisine"`
	CaloriesPerServing *float64  `json:"caloriesPerServing"`
	Tags               *[]string `json:"tags"`
	Image              *string   `json:"image"`
	Rating             *float64  `json:"rating"`
	ReviewCount        *int      `json:"reviewCount"`
	MealType           *[]string `json:"mealType"`
}

// UpdateProfileRequest represents a profile update. Empty names are ignored;
// image and bio may be set to "" to clear them.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Username  *string `json:"username"`
	Image     *string `json:"image"`
	Bio       *string `json:"bio" binding:"omitempty,max=500"`
}

// ChangePasswordRequest represents the request body for a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// MealItemInput is one scheduled recipe in a meal plan request
type MealItemInput struct {
	ID       *uuid.UUID `json:"id"`
	Recipe   RecipeRef  `json:"recipe"`
	MealType string     `json:"mealType"`
	Servings *int       `json:"servings"`
}

// MealDayInput is one day of a meal plan request
type MealDayInput struct {
	ID    *uuid.UUID      `json:"id"`
	Day   Date            `json:"day"`
	Items []MealItemInput `json:"items"`
}

// CreateMealPlanRequest represents the request body for creating a meal plan
type CreateMealPlanRequest struct {
	Name      string         `json:"name" binding:"required"`
	StartDate *Date          `json:"startDate" binding:"required"`
	EndDate   *Date          `json:"endDate" binding:"required"`
	Meals     []MealDayInput `json:"meals"`
	Notes     string         `json:"notes"`
}

// UpdateMealPlanRequest replaces the provided top-level fields of a plan.
// A provided meals array replaces the stored one wholesale.
type UpdateMealPlanRequest struct {
	Name      *string         `json:"name"`
	StartDate *Date           `json:"startDate"`
	EndDate   *Date           `json:"endDate"`
	Meals     *[]MealDayInput `json:"meals"`
	Notes     *string         `json:"notes"`
	IsActive  *bool           `json:"isActive"`
}

// AddRecipeToPlanRequest represents the request body for scheduling a recipe
type AddRecipeToPlanRequest struct {
	Day      *Date     `json:"day" binding:"required"`
	RecipeID RecipeRef `json:"recipeId" binding:"required"`
	MealType string    `json:"mealType" binding:"required,oneof=Breakfast Lunch Dinner Snack"`
	Servings *int      `json:"servings" binding:"omitempty,min=1"`
}
