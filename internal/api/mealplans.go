package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebook/backend/internal/middleware"
	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/pageza/recipebook/backend/internal/types"
)

// MealPlanHandler serves the caller's meal plans. Every route is owner-only.
type MealPlanHandler struct {
	mealPlanService service.IMealPlanService
	authService     service.IAuthService
	createLimiter   *middleware.RateLimiter
}

func NewMealPlanHandler(mealPlanService service.IMealPlanService, authService service.IAuthService, createLimiter *middleware.RateLimiter) *MealPlanHandler {
	return &MealPlanHandler{
		mealPlanService: mealPlanService,
		authService:     authService,
		createLimiter:   createLimiter,
	}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans")
	plans.Use(middleware.AuthMiddleware(h.authService))
	{
		plans.POST("", h.createLimiter.RateLimitMiddleware(), h.CreateMealPlan)
		plans.GET("", h.ListMealPlans)
		plans.GET("/:id", h.GetMealPlan)
		plans.PUT("/:id", h.UpdateMealPlan)
		plans.DELETE("/:id", h.DeleteMealPlan)
		plans.POST("/:id/recipes", h.AddRecipe)
	}
}

func (h *MealPlanHandler) CreateMealPlan(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.CreateMealPlanRequest
	if !bindJSON(c, &req) {
		return
	}
	plan, err := h.mealPlanService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Meal plan created successfully", plan)
}

// ListMealPlans handles GET /meal-plans; active=true keeps only active plans
func (h *MealPlanHandler) ListMealPlans(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	values := c.Request.URL.Query()
	page, err := h.mealPlanService.List(c.Request.Context(), userID, service.ParsePage(values), values.Get("active") == "true")
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "", pageData("mealPlans", page))
}

func (h *MealPlanHandler) GetMealPlan(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	plan, err := h.mealPlanService.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "", plan)
}

func (h *MealPlanHandler) UpdateMealPlan(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.UpdateMealPlanRequest
	if !bindJSON(c, &req) {
		return
	}
	plan, err := h.mealPlanService.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "Meal plan updated successfully", plan)
}

func (h *MealPlanHandler) DeleteMealPlan(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.mealPlanService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "Meal plan deleted successfully", nil)
}

// AddRecipe handles POST /meal-plans/:id/recipes
func (h *MealPlanHandler) AddRecipe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.AddRecipeToPlanRequest
	if !bindJSON(c, &req) {
		return
	}
	plan, err := h.mealPlanService.AddRecipe(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "Recipe added to meal plan", plan)
}
