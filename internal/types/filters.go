package types

// RecipeFilters holds the optional recipe list filters after parsing
type RecipeFilters struct {
	Search       string
	Cuisine      string
	Difficulty   string
	MealType     string
	Tag          string
	MaxPrepTime  *int
	MaxCookTime  *int
	MaxTotalTime *int
	MaxCalories  *float64
}

// RecipeQuery is a full recipe list request
type RecipeQuery struct {
	Filters RecipeFilters
	SortBy  string
	Page    PageRequest
}
