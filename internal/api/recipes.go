package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebook/backend/internal/middleware"
	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/pageza/recipebook/backend/internal/types"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
	authService   service.IAuthService
	createLimiter *middleware.RateLimiter
}

// NewRecipeHandler creates the recipe routes. createLimiter may be nil.
func NewRecipeHandler(recipeService service.IRecipeService, authService service.IAuthService, createLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		authService:   authService,
		createLimiter: createLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/search", h.SearchRecipes)
		recipes.GET("/cuisines", h.ListCuisines)
		recipes.GET("/tags", h.ListTags)
		recipes.GET("/cuisine/:cuisine", h.RecipesByCuisine)
		recipes.GET("/meal/:mealType", h.RecipesByMealType)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", auth, h.createLimiter.RateLimitMiddleware(), h.CreateRecipe)
		recipes.PUT("/:id", auth, h.UpdateRecipe)
		recipes.DELETE("/:id", auth, h.DeleteRecipe)
	}
}

// ListRecipes handles GET /recipes with filters, sort and pagination
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	q, err := service.ParseRecipeQuery(c.Request.URL.Query())
	if err != nil {
		handleError(c, err)
		return
	}
	page, err := h.recipeService.List(c.Request.Context(), q)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "", pageData("recipes", page))
}

func (h *RecipeHandler) RecipesByCuisine(c *gin.Context) {
	values := c.Request.URL.Query()
	page, err := h.recipeService.ByCuisine(c.Request.Context(), c.Param("cuisine"), values.Get("sortBy"), service.ParsePage(values))
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "", pageData("recipes", page))
}

func (h *RecipeHandler) RecipesByMealType(c *gin.Context) {
	values := c.Request.URL.Query()
	page, err := h.recipeService.ByMealType(c.Request.Context(), c.Param("mealType"), values.Get("sortBy"), service.ParsePage(values))
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "", pageData("recipes", page))
}

// SearchRecipes handles GET /recipes/search?q=
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	values := c.Request.URL.Query()
	page, err := h.recipeService.Search(c.Request.Context(), values.Get("q"), service.ParsePage(values))
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "", pageData("recipes", page))
}

func (h *RecipeHandler) ListCuisines(c *gin.Context) {
	cuisines, err := h.recipeService.Cuisines(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "", cuisines)
}

func (h *RecipeHandler) ListTags(c *gin.Context) {
	tags, err := h.recipeService.Tags(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "", tags)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipeService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "", recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.CreateRecipeRequest
	if !bindJSON(c, &req) {
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Recipe created successfully", recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.UpdateRecipeRequest
	if !bindJSON(c, &req) {
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "Recipe updated successfully", recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.recipeService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "Recipe deleted successfully", nil)
}
