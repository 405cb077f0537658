package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/types"
)

const (
	userNotFound      = "User not found"
	minPasswordLength = 6
)

// UserService manages profiles, passwords and favorites
type UserService struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewUserService creates a new UserService instance
func NewUserService(db *gorm.DB, log zerolog.Logger) *UserService {
	return &UserService{db: db, log: log}
}

func (s *UserService) load(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, storeError(err, userNotFound)
	}
	return &user, nil
}

// GetProfile returns the user with favorite and created recipe summaries
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildProfileView(ctx, s.db, user, true)
}

// UpdateProfile changes only the provided fields. Empty names and usernames
// are ignored; image and bio may be cleared with an empty string.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.User, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	cols := map[string]interface{}{}
	if req.FirstName != nil && strings.TrimSpace(*req.FirstName) != "" {
		cols["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil && strings.TrimSpace(*req.LastName) != "" {
		cols["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username != "" && username != user.Username {
			var count int64
			if err := s.db.WithContext(ctx).Model(&models.User{}).
				Where("username = ? AND id <> ?", username, userID).Count(&count).Error; err != nil {
				return nil, internal("Server error", err)
			}
			if count > 0 {
				return nil, conflict("Username is already taken")
			}
			cols["username"] = username
		}
	}
	if req.Image != nil {
		cols["image"] = *req.Image
	}
	if req.Bio != nil {
		cols["bio"] = *req.Bio
	}

	if len(cols) > 0 {
		if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(cols).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, conflict("Username is already taken")
			}
			return nil, internal("Server error", err)
		}
	}
	return s.load(ctx, userID)
}

// ChangePassword replaces the password after verifying the current one
func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if current == "" || next == "" {
		return validationError("Please provide current password and new password")
	}
	if len(next) < minPasswordLength {
		return validationError("New password must be at least 6 characters")
	}

	user, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return unauthorized("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return internal("Server error", err)
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).
		Update("password_hash", string(hash)).Error; err != nil {
		return internal("Server error", err)
	}
	return nil
}

// DeleteAccount removes the user document. Recipes and meal plans owned by
// the user are left in place.
func (s *UserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", userID)
	if res.Error != nil {
		return internal("Server error", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(userNotFound)
	}
	s.log.Info().Str("user_id", userID.String()).Msg("account deleted")
	return nil
}

// AddFavorite appends a recipe to the user's favorites
func (s *UserService) AddFavorite(ctx context.Context, userID uuid.UUID, rawRecipeID string) (models.UUIDList, error) {
	recipeID, err := parseID(rawRecipeID, recipeNotFound)
	if err != nil {
		return nil, err
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return nil, internal("Server error", err)
	}
	if count == 0 {
		return nil, notFound(recipeNotFound)
	}

	var favorites models.UUIDList
	err = retryStale(func() error {
		user, err := s.load(ctx, userID)
		if err != nil {
			return err
		}
		if user.FavoriteRecipes.Contains(recipeID) {
			return conflict("Recipe already in favorites")
		}
		favorites = append(append(models.UUIDList{}, user.FavoriteRecipes...), recipeID)
		return updateVersioned(s.db.WithContext(ctx), &models.User{}, user.ID, user.Version, map[string]interface{}{
			"favorite_recipes": favorites,
		})
	})
	if err != nil {
		return nil, wrapInternal(err)
	}
	return favorites, nil
}

// RemoveFavorite drops a recipe from the user's favorites. Removing a recipe
// that is not a favorite is a client error.
func (s *UserService) RemoveFavorite(ctx context.Context, userID uuid.UUID, rawRecipeID string) (models.UUIDList, error) {
	recipeID, err := parseID(rawRecipeID, recipeNotFound)
	if err != nil {
		return nil, err
	}

	var favorites models.UUIDList
	err = retryStale(func() error {
		user, err := s.load(ctx, userID)
		if err != nil {
			return err
		}
		if !user.FavoriteRecipes.Contains(recipeID) {
			return conflict("Recipe not in favorites")
		}
		favorites = user.FavoriteRecipes.Without(recipeID)
		return updateVersioned(s.db.WithContext(ctx), &models.User{}, user.ID, user.Version, map[string]interface{}{
			"favorite_recipes": favorites,
		})
	})
	if err != nil {
		return nil, wrapInternal(err)
	}
	return favorites, nil
}

// ListFavorites pages over the favorites array itself, so the total counts
// every stored id even when some recipes no longer exist.
func (s *UserService) ListFavorites(ctx context.Context, userID uuid.UUID, page types.PageRequest) (*types.Page[models.Recipe], error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := len(user.FavoriteRecipes)
	start := page.Offset()
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}

	recipes, err := recipesByID(ctx, s.db, user.FavoriteRecipes[start:end])
	if err != nil {
		return nil, err
	}
	return &types.Page[models.Recipe]{
		Items:      recipes,
		Pagination: types.NewPagination(int64(total), page.Page, page.Limit),
	}, nil
}

// wrapInternal leaves typed errors alone and wraps raw store failures
func wrapInternal(err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return internal("Server error", err)
}
