package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/types"
)

const recipeNotFound = "Recipe not found"

// RecipeService queries and mutates recipes
type RecipeService struct {
	db   *gorm.DB
	gate *Gate
	log  zerolog.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, gate *Gate, log zerolog.Logger) *RecipeService {
	return &RecipeService{db: db, gate: gate, log: log}
}

// List runs a filtered, sorted and paginated recipe query
func (s *RecipeService) List(ctx context.Context, q types.RecipeQuery) (*types.Page[models.Recipe], error) {
	query := applyRecipeFilters(s.db.WithContext(ctx).Model(&models.Recipe{}), q.Filters)
	return s.page(query, recipeOrder(q.SortBy, defaultRecipeOrder), q.Page)
}

// ByCuisine lists recipes whose cuisine contains cuisine, best rated first
func (s *RecipeService) ByCuisine(ctx context.Context, cuisine, sortBy string, page types.PageRequest) (*types.Page[models.Recipe], error) {
	query := applyRecipeFilters(s.db.WithContext(ctx).Model(&models.Recipe{}), types.RecipeFilters{Cuisine: strings.TrimSpace(cuisine)})
	return s.page(query, recipeOrder(sortBy, "", "recipes.rating DESC"), page)
}

// ByMealType lists recipes tagged with mealType, best rated first
func (s *RecipeService) ByMealType(ctx context.Context, mealType, sortBy string, page types.PageRequest) (*types.Page[models.Recipe], error) {
	if !models.IsRecipeMealType(mealType) {
		return nil, validationError("Invalid meal type: " + mealType)
	}
	query := applyRecipeFilters(s.db.WithContext(ctx).Model(&models.Recipe{}), types.RecipeFilters{MealType: mealType})
	return s.page(query, recipeOrder(sortBy, "", "recipes.rating DESC"), page)
}

// Search matches q against name, cuisine, tags and ingredients
func (s *RecipeService) Search(ctx context.Context, q string, page types.PageRequest) (*types.Page[models.Recipe], error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, validationError("Search query is required")
	}
	query := applyRecipeSearch(s.db.WithContext(ctx).Model(&models.Recipe{}), q)
	return s.page(query, "recipes.rating DESC, recipes.id ASC", page)
}

func (s *RecipeService) page(query *gorm.DB, order string, p types.PageRequest) (*types.Page[models.Recipe], error) {
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, internal("Server error", err)
	}

	recipes := []models.Recipe{}
	if err := withOwner(query).Order(order).Offset(p.Offset()).Limit(p.Limit).Find(&recipes).Error; err != nil {
		return nil, internal("Server error", err)
	}
	return &types.Page[models.Recipe]{
		Items:      recipes,
		Pagination: types.NewPagination(total, p.Page, p.Limit),
	}, nil
}

// Cuisines returns every distinct cuisine
func (s *RecipeService) Cuisines(ctx context.Context) ([]string, error) {
	cuisines := []string{}
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Distinct().Order("cuisine").Pluck("cuisine", &cuisines).Error; err != nil {
		return nil, internal("Server error", err)
	}
	return cuisines, nil
}

// Tags returns the union of all recipe tags in first-seen order
func (s *RecipeService) Tags(ctx context.Context) ([]string, error) {
	var lists []models.StringList
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Order("created_at").Pluck("tags", &lists).Error; err != nil {
		return nil, internal("Server error", err)
	}
	seen := make(map[string]bool)
	tags := []string{}
	for _, list := range lists {
		for _, t := range list {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags, nil
}

// Get loads one recipe with its owner projection
func (s *RecipeService) Get(ctx context.Context, rawID string) (*models.Recipe, error) {
	id, err := parseID(rawID, recipeNotFound)
	if err != nil {
		return nil, err
	}
	var recipe models.Recipe
	if err := withOwner(s.db.WithContext(ctx)).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, storeError(err, recipeNotFound)
	}
	return &recipe, nil
}

// Create stores a recipe owned by ownerID and records it on the owner
func (s *RecipeService) Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	recipe := models.Recipe{
		Name:               req.Name,
		Ingredients:        models.StringList(req.Ingredients),
		Instructions:       models.StringList(req.Instructions),
		PrepTimeMinutes:    req.PrepTimeMinutes,
		CookTimeMinutes:    req.CookTimeMinutes,
		Servings:           req.Servings,
		Difficulty:         req.Difficulty,
		Cuisine:            req.Cuisine,
		CaloriesPerServing: req.CaloriesPerServing,
		Tags:               models.StringList(req.Tags),
		Image:              req.Image,
		Rating:             req.Rating,
		ReviewCount:        req.ReviewCount,
		MealType:           models.StringList(req.MealType),
		UserID:             ownerID,
	}
	if err := recipe.Validate(); err != nil {
		return nil, modelError(err)
	}
	recipe.ID = uuid.New()

	err := retryStale(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var owner models.User
			if err := tx.First(&owner, "id = ?", ownerID).Error; err != nil {
				return storeError(err, "User not found")
			}
			if err := tx.Omit(clause.Associations).Create(&recipe).Error; err != nil {
				return err
			}
			created := append(models.UUIDList{}, owner.CreatedRecipes...)
			created = append(created, recipe.ID)
			return updateVersioned(tx, &models.User{}, owner.ID, owner.Version, map[string]interface{}{
				"created_recipes": created,
			})
		})
	})
	if err != nil {
		return nil, wrapInternal(err)
	}

	s.log.Info().Str("recipe_id", recipe.ID.String()).Str("user_id", ownerID.String()).Msg("recipe created")
	return s.Get(ctx, recipe.ID.String())
}

// Update applies a partial update after the owner/admin check
func (s *RecipeService) Update(ctx context.Context, actorID uuid.UUID, rawID string, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if err := s.gate.CanMutateRecipe(ctx, actorID, recipe, "Not authorized to update this recipe"); err != nil {
		return nil, err
	}

	applyRecipePatch(recipe, req)
	if err := recipe.Validate(); err != nil {
		return nil, modelError(err)
	}
	recipe.Owner = nil
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(recipe).Error; err != nil {
		return nil, internal("Server error", err)
	}
	return s.Get(ctx, recipe.ID.String())
}

func applyRecipePatch(r *models.Recipe, req *types.UpdateRecipeRequest) {
	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.Ingredients != nil {
		r.Ingredients = models.StringList(*req.Ingredients)
	}
	if req.Instructions != nil {
		r.Instructions = models.StringList(*req.Instructions)
	}
	if req.PrepTimeMinutes != nil {
		r.PrepTimeMinutes = *req.PrepTimeMinutes
	}
	if req.CookTimeMinutes != nil {
		r.CookTimeMinutes = *req.CookTimeMinutes
	}
	if req.Servings != nil {
		r.Servings = *req.Servings
	}
	if req.Difficulty != nil {
		r.Difficulty = *req.Difficulty
	}
	if req.Cuisine != nil {
		r.Cuisine = *req.Cuisine
	}
	if req.CaloriesPerServing != nil {
		r.CaloriesPerServing = req.CaloriesPerServing
	}
	if req.Tags != nil {
		r.Tags = models.StringList(*req.Tags)
	}
	if req.Image != nil {
		r.Image = *req.Image
	}
	if req.Rating != nil {
		r.Rating = *req.Rating
	}
	if req.ReviewCount != nil {
		r.ReviewCount = *req.ReviewCount
	}
	if req.MealType != nil {
		r.MealType = models.StringList(*req.MealType)
	}
}

// Delete removes a recipe after the owner/admin check. Only the owner's
// createdRecipes list is updated; favorites and meal plans keep the id.
func (s *RecipeService) Delete(ctx context.Context, actorID uuid.UUID, rawID string) error {
	recipe, err := s.Get(ctx, rawID)
	if err != nil {
		return err
	}
	if err := s.gate.CanMutateRecipe(ctx, actorID, recipe, "Not authorized to delete this recipe"); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", recipe.ID).Error; err != nil {
		return internal("Server error", err)
	}

	err = retryStale(func() error {
		var owner models.User
		if err := s.db.WithContext(ctx).First(&owner, "id = ?", recipe.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if !owner.CreatedRecipes.Contains(recipe.ID) {
			return nil
		}
		return updateVersioned(s.db.WithContext(ctx), &models.User{}, owner.ID, owner.Version, map[string]interface{}{
			"created_recipes": owner.CreatedRecipes.Without(recipe.ID),
		})
	})
	if err != nil {
		s.log.Warn().Err(err).Str("recipe_id", recipe.ID.String()).Msg("failed to update owner's created recipes")
	}

	s.log.Info().Str("recipe_id", recipe.ID.String()).Str("actor_id", actorID.String()).Msg("recipe deleted")
	return nil
}
