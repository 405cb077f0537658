package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Difficulties lists the accepted recipe difficulty levels
var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// RecipeMealTypes lists the meal types a recipe can be tagged with
var RecipeMealTypes = []string{"Breakfast", "Lunch", "Dinner", "Snack", "Dessert", "Appetizer", "Beverage", "Side Dish"}

type Recipe struct {
	ID                 uuid.UUID    `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt          time.Time    `gorm:"index" json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
	Name               string       `gorm:"size:200;not null" json:"name"`
	Ingredients        StringList   `gorm:"not null" json:"ingredients"`
	Instructions       StringList   `gorm:"not null" json:"instructions"`
	PrepTimeMinutes    int          `gorm:"not null" json:"prepTimeMinutes"`
	CookTimeMinutes    int          `gorm:"not null" json:"cookTimeMinutes"`
	Servings           int          `gorm:"not null" json:"servings"`
	Difficulty         string       `gorm:"size:10;not null" json:"difficulty"`
	Cuisine            string       `gorm:"size:100;not null;index" json:"cuisine"`
	CaloriesPerServing *float64     `json:"caloriesPerServing,omitempty"`
	Tags               StringList   `gorm:"not null" json:"tags"`
	Image              string       `gorm:"size:500;not null" json:"image"`
	Rating             float64      `gorm:"not null;default:0" json:"rating"`
	ReviewCount        int          `gorm:"not null;default:0" json:"reviewCount"`
	MealType           StringList   `gorm:"not null" json:"mealType"`
	UserID             uuid.UUID    `gorm:"type:varchar(36);not null;index" json:"userId"`
	Owner              *UserSummary `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// BeforeCreate assigns an id and normalizes empty lists
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Tags == nil {
		r.Tags = StringList{}
	}
	if r.MealType == nil {
		r.MealType = StringList{}
	}
	return nil
}

// TotalTimeMinutes is prep plus cook time; it is never stored
func (r *Recipe) TotalTimeMinutes() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

// RecipeSummary is the lightweight projection used in profile listings
type RecipeSummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Image   string    `json:"image"`
	Rating  float64   `json:"rating"`
	Cuisine string    `json:"cuisine,omitempty"`
}

// PlanRecipe is the recipe projection embedded in meal plan items. The
// detailed fields are only filled when a single plan is fetched.
type PlanRecipe struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Image              string     `json:"image"`
	PrepTimeMinutes    int        `json:"prepTimeMinutes"`
	CookTimeMinutes    int        `json:"cookTimeMinutes"`
	Ingredients        StringList `json:"ingredients,omitempty"`
	Servings           int        `json:"servings,omitempty"`
	CaloriesPerServing *float64   `json:"caloriesPerServing,omitempty"`
}
