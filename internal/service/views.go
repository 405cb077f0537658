package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipebook/backend/internal/models"
)

// ProfileView is a user with its recipe id lists resolved to summaries
type ProfileView struct {
	*models.User
	FavoriteRecipes []models.RecipeSummary `json:"favoriteRecipes"`
	CreatedRecipes  []models.RecipeSummary `json:"createdRecipes"`
}

func buildProfileView(ctx context.Context, db *gorm.DB, user *models.User, withCuisine bool) (*ProfileView, error) {
	favorites, err := recipeSummaries(ctx, db, user.FavoriteRecipes, withCuisine)
	if err != nil {
		return nil, err
	}
	created, err := recipeSummaries(ctx, db, user.CreatedRecipes, withCuisine)
	if err != nil {
		return nil, err
	}
	return &ProfileView{User: user, FavoriteRecipes: favorites, CreatedRecipes: created}, nil
}

// recipeSummaries resolves ids in list order; ids of deleted recipes are skipped
func recipeSummaries(ctx context.Context, db *gorm.DB, ids models.UUIDList, withCuisine bool) ([]models.RecipeSummary, error) {
	out := []models.RecipeSummary{}
	if len(ids) == 0 {
		return out, nil
	}

	cols := []string{"id", "name", "image", "rating"}
	if withCuisine {
		cols = append(cols, "cuisine")
	}
	var rows []models.RecipeSummary
	if err := db.WithContext(ctx).Model(&models.Recipe{}).Select(cols).Where("id IN ?", []uuid.UUID(ids)).Find(&rows).Error; err != nil {
		return nil, internal("Server error", err)
	}

	byID := make(map[uuid.UUID]models.RecipeSummary, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// recipesByID loads full recipes with owners for ids, keeping list order and
// skipping ids that no longer resolve.
func recipesByID(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]models.Recipe, error) {
	out := []models.Recipe{}
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.Recipe
	if err := withOwner(db.WithContext(ctx)).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, internal("Server error", err)
	}
	byID := make(map[uuid.UUID]models.Recipe, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// withOwner preloads the owner projection of a recipe query
func withOwner(db *gorm.DB) *gorm.DB {
	return db.Preload("Owner", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "first_name", "last_name", "username", "image")
	})
}
