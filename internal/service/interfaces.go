package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Refresh(ctx context.Context, userID uuid.UUID) (string, error)
	Me(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	GenerateToken(userID uuid.UUID) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	List(ctx context.Context, q types.RecipeQuery) (*types.Page[models.Recipe], error)
	ByCuisine(ctx context.Context, cuisine, sortBy string, page types.PageRequest) (*types.Page[models.Recipe], error)
	ByMealType(ctx context.Context, mealType, sortBy string, page types.PageRequest) (*types.Page[models.Recipe], error)
	Search(ctx context.Context, q string, page types.PageRequest) (*types.Page[models.Recipe], error)
	Cuisines(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (*models.Recipe, error)
	Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error)
	Update(ctx context.Context, actorID uuid.UUID, id string, req *types.UpdateRecipeRequest) (*models.Recipe, error)
	Delete(ctx context.Context, actorID uuid.UUID, id string) error
}

// IUserService defines the interface for profile and favorites operations
type IUserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	AddFavorite(ctx context.Context, userID uuid.UUID, recipeID string) (models.UUIDList, error)
	RemoveFavorite(ctx context.Context, userID uuid.UUID, recipeID string) (models.UUIDList, error)
	ListFavorites(ctx context.Context, userID uuid.UUID, page types.PageRequest) (*types.Page[models.Recipe], error)
}

// IMealPlanService defines the interface for meal plan operations
type IMealPlanService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateMealPlanRequest) (*MealPlanView, error)
	List(ctx context.Context, ownerID uuid.UUID, page types.PageRequest, activeOnly bool) (*types.Page[MealPlanView], error)
	Get(ctx context.Context, actorID uuid.UUID, id string) (*MealPlanView, error)
	Update(ctx context.Context, actorID uuid.UUID, id string, req *types.UpdateMealPlanRequest) (*MealPlanView, error)
	Delete(ctx context.Context, actorID uuid.UUID, id string) error
	AddRecipe(ctx context.Context, actorID uuid.UUID, id string, req *types.AddRecipeToPlanRequest) (*MealPlanView, error)
}

// IImageService defines the interface for image uploads
type IImageService interface {
	Upload(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (string, error)
}

var (
	_ IAuthService     = (*AuthService)(nil)
	_ IRecipeService   = (*RecipeService)(nil)
	_ IUserService     = (*UserService)(nil)
	_ IMealPlanService = (*MealPlanService)(nil)
	_ IImageService    = (*ImageService)(nil)
)
