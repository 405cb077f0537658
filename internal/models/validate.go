package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// FieldError describes one failed schema constraint
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every failed constraint of a document
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, ", ")
}

func (v *ValidationErrors) add(field, format string, args ...interface{}) {
	*v = append(*v, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}

// IsDifficulty reports whether s is an accepted difficulty
func IsDifficulty(s string) bool { return oneOf(s, Difficulties) }

// IsRecipeMealType reports whether s is an accepted recipe meal type
func IsRecipeMealType(s string) bool { return oneOf(s, RecipeMealTypes) }

// IsPlanMealType reports whether s is an accepted meal plan item type
func IsPlanMealType(s string) bool { return oneOf(s, PlanMealTypes) }

// Validate enforces the recipe schema constraints
func (r *Recipe) Validate() error {
	var errs ValidationErrors
	r.Name = strings.TrimSpace(r.Name)
	r.Cuisine = strings.TrimSpace(r.Cuisine)

	if r.Name == "" {
		errs.add("name", "Recipe name is required")
	} else if utf8.RuneCountInString(r.Name) > 200 {
		errs.add("name", "Name cannot exceed 200 characters")
	}
	if len(r.Ingredients) == 0 {
		errs.add("ingredients", "At least one ingredient is required")
	}
	for _, s := range r.Ingredients {
		if strings.TrimSpace(s) == "" {
			errs.add("ingredients", "Ingredients cannot be empty")
			break
		}
	}
	if len(r.Instructions) == 0 {
		errs.add("instructions", "At least one instruction is required")
	}
	for _, s := range r.Instructions {
		if strings.TrimSpace(s) == "" {
			errs.add("instructions", "Instructions cannot be empty")
			break
		}
	}
	if r.PrepTimeMinutes < 0 {
		errs.add("prepTimeMinutes", "Prep time cannot be negative")
	}
	if r.CookTimeMinutes < 0 {
		errs.add("cookTimeMinutes", "Cook time cannot be negative")
	}
	if r.Servings < 1 {
		errs.add("servings", "Servings must be at least 1")
	}
	if !IsDifficulty(r.Difficulty) {
		errs.add("difficulty", "Difficulty must be one of %s", strings.Join(Difficulties, ", "))
	}
	if r.Cuisine == "" {
		errs.add("cuisine", "Cuisine is required")
	}
	if r.CaloriesPerServing != nil && *r.CaloriesPerServing < 0 {
		errs.add("caloriesPerServing", "Calories cannot be negative")
	}
	for i, t := range r.Tags {
		r.Tags[i] = strings.TrimSpace(t)
	}
	if strings.TrimSpace(r.Image) == "" {
		errs.add("image", "Image is required")
	}
	if r.Rating < 0 {
		errs.add("rating", "Rating cannot be negative")
	} else if r.Rating > 5 {
		errs.add("rating", "Rating cannot exceed 5")
	}
	for _, mt := range r.MealType {
		if !IsRecipeMealType(mt) {
			errs.add("mealType", "%q is not a valid meal type", mt)
		}
	}
	return errs.orNil()
}

// Validate enforces the meal plan schema constraints. Date ordering is a
// creation-time rule and is checked by the service.
func (p *MealPlan) Validate() error {
	var errs ValidationErrors
	p.Name = strings.TrimSpace(p.Name)

	if p.Name == "" {
		errs.add("name", "Meal plan name is required")
	} else if utf8.RuneCountInString(p.Name) > 100 {
		errs.add("name", "Name cannot exceed 100 characters")
	}
	if p.StartDate.IsZero() {
		errs.add("startDate", "Start date is required")
	}
	if p.EndDate.IsZero() {
		errs.add("endDate", "End date is required")
	}
	if utf8.RuneCountInString(p.Notes) > 500 {
		errs.add("notes", "Notes cannot exceed 500 characters")
	}
	for _, day := range p.Meals {
		if day.Day.IsZero() {
			errs.add("meals.day", "Day is required")
		}
		for _, it := range day.Items {
			if it.RecipeID == uuid.Nil {
				errs.add("meals.items.recipe", "Recipe is required")
			}
			if !IsPlanMealType(it.MealType) {
				errs.add("meals.items.mealType", "%q is not a valid meal type", it.MealType)
			}
			if it.Servings < 1 {
				errs.add("meals.items.servings", "Servings must be at least 1")
			}
		}
	}
	return errs.orNil()
}
