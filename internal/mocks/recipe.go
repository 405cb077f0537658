package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/pageza/recipebook/backend/internal/types"
)

// MockRecipeService is a mock implementation of service.IRecipeService
type MockRecipeService struct {
	mock.Mock
}

var _ service.IRecipeService = (*MockRecipeService)(nil)

func recipePage(args mock.Arguments) (*types.Page[models.Recipe], error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Page[models.Recipe]), args.Error(1)
}

func (m *MockRecipeService) List(ctx context.Context, q types.RecipeQuery) (*types.Page[models.Recipe], error) {
	return recipePage(m.Called(ctx, q))
}

func (m *MockRecipeService) ByCuisine(ctx context.Context, cuisine, sortBy string, page types.PageRequest) (*types.Page[models.Recipe], error) {
	return recipePage(m.Called(ctx, cuisine, sortBy, page))
}

func (m *MockRecipeService) ByMealType(ctx context.Context, mealType, sortBy string, page types.PageRequest) (*types.Page[models.Recipe], error) {
	return recipePage(m.Called(ctx, mealType, sortBy, page))
}

func (m *MockRecipeService) Search(ctx context.Context, q string, page types.PageRequest) (*types.Page[models.Recipe], error) {
	return recipePage(m.Called(ctx, q, page))
}

func (m *MockRecipeService) Cuisines(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRecipeService) Tags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRecipeService) Get(ctx context.Context, id string) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Update(ctx context.Context, actorID uuid.UUID, id string, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	args := m.Called(ctx, actorID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Delete(ctx context.Context, actorID uuid.UUID, id string) error {
	return m.Called(ctx, actorID, id).Error(0)
}
