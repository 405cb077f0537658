package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/recipebook/backend/internal/middleware"
	"github.com/pageza/recipebook/backend/internal/service"
)

// Services bundles what the route handlers depend on. Image and the rate
// limiter are optional.
type Services struct {
	DB            *gorm.DB
	Redis         *redis.Client
	Auth          service.IAuthService
	Recipes       service.IRecipeService
	Users         service.IUserService
	MealPlans     service.IMealPlanService
	Images        service.IImageService
	CreateLimiter *middleware.RateLimiter
}

// RegisterRoutes mounts every endpoint on router under /api/v1
func RegisterRoutes(router *gin.Engine, s Services) {
	health := NewHealthHandler(s.DB, s.Redis)
	router.GET("/health", health.Health)

	v1 := router.Group("/api/v1")
	v1.GET("/health", health.Health)

	NewAuthHandler(s.Auth).RegisterRoutes(v1)
	NewRecipeHandler(s.Recipes, s.Auth, s.CreateLimiter).RegisterRoutes(v1)
	NewUserHandler(s.Users, s.Auth).RegisterRoutes(v1)
	NewMealPlanHandler(s.MealPlans, s.Auth, s.CreateLimiter).RegisterRoutes(v1)
	if s.Images != nil {
		NewUploadHandler(s.Images, s.Auth).RegisterRoutes(v1)
	}
}
