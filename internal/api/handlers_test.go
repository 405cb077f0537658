package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipebook/backend/internal/api"
	"github.com/pageza/recipebook/backend/internal/middleware"
	"github.com/pageza/recipebook/backend/internal/mocks"
	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/pageza/recipebook/backend/internal/types"
)

func recipeRouter(recipes *mocks.MockRecipeService, auth *mocks.MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(zerolog.Nop()))
	api.NewRecipeHandler(recipes, auth, nil).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func serveJSON(t *testing.T, r *gin.Engine, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestListRecipesPassesParsedQuery(t *testing.T) {
	recipes := &mocks.MockRecipeService{}
	recipes.On("List", mock.Anything, mock.MatchedBy(func(q types.RecipeQuery) bool {
		return q.Filters.Difficulty == "Easy" &&
			q.Filters.MaxPrepTime != nil && *q.Filters.MaxPrepTime == 15 &&
			q.SortBy == "-rating" &&
			q.Page == types.PageRequest{Page: 2, Limit: 100}
	})).Return(&types.Page[models.Recipe]{Pagination: types.NewPagination(0, 2, 100)}, nil)

	r := recipeRouter(recipes, &mocks.MockAuthService{})
	w, env := serveJSON(t, r, http.MethodGet, "/api/v1/recipes?difficulty=Easy&maxPrepTime=15&sortBy=-rating&page=2&limit=500", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"recipes":[],"pagination":{"total":0,"page":2,"limit":100,"totalPages":0,"hasNextPage":false,"hasPrevPage":true}}`, string(env.Data))
	recipes.AssertExpectations(t)
}

func TestErrorKindsMapToStatus(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "not found",
			err:     &service.Error{Kind: service.KindNotFound, Message: "Recipe not found"},
			status:  http.StatusNotFound,
			message: "Recipe not found",
		},
		{
			name:    "conflict is a client error",
			err:     &service.Error{Kind: service.KindConflict, Message: "Resource already exists"},
			status:  http.StatusBadRequest,
			message: "Resource already exists",
		},
		{
			name:    "internal hides the cause",
			err:     &service.Error{Kind: service.KindInternal, Message: "Server error", Err: errors.New("dial tcp 10.0.0.5:5432: refused")},
			status:  http.StatusInternalServerError,
			message: "Server error",
		},
		{
			name:    "untyped errors are internal",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes := &mocks.MockRecipeService{}
			recipes.On("Get", mock.Anything, "abc").Return(nil, tt.err)
			r := recipeRouter(recipes, &mocks.MockAuthService{})

			w, env := serveJSON(t, r, http.MethodGet, "/api/v1/recipes/abc", "", "")
			assert.Equal(t, tt.status, w.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.message, env.Message)
			assert.Nil(t, env.Data)
			assert.NotContains(t, w.Body.String(), "10.0.0.5")
		})
	}
}

func TestDeleteRecipeUsesCaller(t *testing.T) {
	userID := uuid.New()
	auth := &mocks.MockAuthService{}
	auth.On("ValidateToken", "tok").Return(&types.TokenClaims{UserID: userID}, nil)
	recipes := &mocks.MockRecipeService{}
	recipes.On("Delete", mock.Anything, userID, "r1").
		Return(&service.Error{Kind: service.KindForbidden, Message: "Not authorized to delete this recipe"})

	r := recipeRouter(recipes, auth)
	w, env := serveJSON(t, r, http.MethodDelete, "/api/v1/recipes/r1", "", "tok")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Not authorized to delete this recipe", env.Message)
	recipes.AssertExpectations(t)
}

func TestCreateRecipeRejectsMalformedBody(t *testing.T) {
	auth := &mocks.MockAuthService{}
	auth.On("ValidateToken", "tok").Return(&types.TokenClaims{UserID: uuid.New()}, nil)
	recipes := &mocks.MockRecipeService{}
	r := recipeRouter(recipes, auth)

	w, env := serveJSON(t, r, http.MethodPost, "/api/v1/recipes", `{"name": 12`, "tok")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", env.Message)

	w, env = serveJSON(t, r, http.MethodPost, "/api/v1/recipes", `{"name": "Soup"}`, "tok")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "ingredients is required")
	assert.Contains(t, env.Message, "image is required")
	recipes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterConflict(t *testing.T) {
	auth := &mocks.MockAuthService{}
	auth.On("Register", mock.Anything, mock.AnythingOfType("*types.RegisterRequest")).
		Return(nil, "", &service.Error{Kind: service.KindConflict, Message: "User with this email already exists"})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.NewAuthHandler(auth).RegisterRoutes(r.Group("/api/v1"))

	w, env := serveJSON(t, r, http.MethodPost, "/api/v1/auth/register",
		`{"firstName":"A","lastName":"B","email":"a@x.com","username":"a","password":"secret1"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User with this email already exists", env.Message)
}
