package service

import (
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/types"
)

const defaultRecipeOrder = "recipes.created_at DESC"

// recipeSortColumns maps client sort fields onto sortable expressions
var recipeSortColumns = map[string]string{
	"name":               "recipes.name",
	"createdAt":          "recipes.created_at",
	"updatedAt":          "recipes.updated_at",
	"rating":             "recipes.rating",
	"reviewCount":        "recipes.review_count",
	"prepTimeMinutes":    "recipes.prep_time_minutes",
	"cookTimeMinutes":    "recipes.cook_time_minutes",
	"totalTimeMinutes":   "(recipes.prep_time_minutes + recipes.cook_time_minutes)",
	"servings":           "recipes.servings",
	"caloriesPerServing": "recipes.calories_per_serving",
	"difficulty":         "recipes.difficulty",
	"cuisine":            "recipes.cuisine",
}

// ParseRecipeQuery reads list filters, sort and pagination from query
// parameters. Malformed numbers and unknown enum values are rejected.
func ParseRecipeQuery(values url.Values) (types.RecipeQuery, error) {
	var q types.RecipeQuery
	f := &q.Filters

	f.Search = strings.TrimSpace(values.Get("search"))
	f.Cuisine = strings.TrimSpace(values.Get("cuisine"))
	f.Tag = strings.TrimSpace(values.Get("tag"))

	if d := values.Get("difficulty"); d != "" {
		if !models.IsDifficulty(d) {
			return q, validationError("Difficulty must be one of " + strings.Join(models.Difficulties, ", "))
		}
		f.Difficulty = d
	}
	if mt := values.Get("mealType"); mt != "" {
		if !models.IsRecipeMealType(mt) {
			return q, validationError("Invalid meal type: " + mt)
		}
		f.MealType = mt
	}

	var err error
	if f.MaxPrepTime, err = optionalInt(values, "maxPrepTime"); err != nil {
		return q, err
	}
	if f.MaxCookTime, err = optionalInt(values, "maxCookTime"); err != nil {
		return q, err
	}
	if f.MaxTotalTime, err = optionalInt(values, "maxTotalTime"); err != nil {
		return q, err
	}
	if raw := values.Get("maxCalories"); raw != "" {
		v, perr := strconv.ParseFloat(raw, 64)
		if perr != nil {
			return q, validationError("maxCalories must be a number")
		}
		f.MaxCalories = &v
	}

	q.SortBy = values.Get("sortBy")
	q.Page = ParsePage(values)
	return q, nil
}

// ParsePage reads page and limit, falling back to defaults on bad input
func ParsePage(values url.Values) types.PageRequest {
	page, _ := strconv.Atoi(values.Get("page"))
	limit, _ := strconv.Atoi(values.Get("limit"))
	return types.NewPageRequest(page, limit)
}

func optionalInt(values url.Values, key string) (*int, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, validationError(key + " must be an integer")
	}
	return &v, nil
}

// applyRecipeFilters ANDs every provided filter onto query
func applyRecipeFilters(query *gorm.DB, f types.RecipeFilters) *gorm.DB {
	if f.Cuisine != "" {
		query = query.Where(ilikeExpr(query, "recipes.cuisine"), containsPattern(f.Cuisine))
	}
	if f.Difficulty != "" {
		query = query.Where("recipes.difficulty = ?", f.Difficulty)
	}
	if f.MealType != "" {
		query = query.Where(listHasExpr(query, "recipes.meal_type"), f.MealType)
	}
	if f.Tag != "" {
		query = query.Where(listILikeExpr(query, "recipes.tags"), containsPattern(f.Tag))
	}
	if f.MaxPrepTime != nil {
		query = query.Where("recipes.prep_time_minutes <= ?", *f.MaxPrepTime)
	}
	if f.MaxCookTime != nil {
		query = query.Where("recipes.cook_time_minutes <= ?", *f.MaxCookTime)
	}
	if f.MaxTotalTime != nil {
		query = query.Where("(recipes.prep_time_minutes + recipes.cook_time_minutes) <= ?", *f.MaxTotalTime)
	}
	if f.MaxCalories != nil {
		query = query.Where("recipes.calories_per_serving <= ?", *f.MaxCalories)
	}
	if f.Search != "" {
		pattern := containsPattern(f.Search)
		query = query.Where(
			"("+ilikeExpr(query, "recipes.name")+" OR "+listILikeExpr(query, "recipes.tags")+")",
			pattern, pattern,
		)
	}
	return query
}

// applyRecipeSearch matches q against name, cuisine, tags and ingredients
func applyRecipeSearch(query *gorm.DB, q string) *gorm.DB {
	pattern := containsPattern(q)
	return query.Where(
		"("+ilikeExpr(query, "recipes.name")+" OR "+ilikeExpr(query, "recipes.cuisine")+" OR "+
			listILikeExpr(query, "recipes.tags")+" OR "+listILikeExpr(query, "recipes.ingredients")+")",
		pattern, pattern, pattern, pattern,
	)
}

// recipeOrder turns a comma separated sortBy into an ORDER BY list. A leading
// "-" sorts descending; unknown fields are dropped. fallback is used when no
// field survives and extra is always appended.
func recipeOrder(sortBy, fallback string, extra ...string) string {
	var parts []string
	for _, field := range strings.Split(sortBy, ",") {
		field = strings.TrimSpace(field)
		dir := "ASC"
		if strings.HasPrefix(field, "-") {
			dir = "DESC"
			field = field[1:]
		}
		if col, ok := recipeSortColumns[field]; ok {
			parts = append(parts, col+" "+dir)
		}
	}
	if len(parts) == 0 && fallback != "" {
		parts = append(parts, fallback)
	}
	parts = append(parts, extra...)
	parts = append(parts, "recipes.id ASC")
	return strings.Join(parts, ", ")
}
