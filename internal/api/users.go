package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebook/backend/internal/middleware"
	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/pageza/recipebook/backend/internal/types"
)

// UserHandler serves the caller's profile, password and favorites
type UserHandler struct {
	userService service.IUserService
	authService service.IAuthService
}

func NewUserHandler(userService service.IUserService, authService service.IAuthService) *UserHandler {
	return &UserHandler{userService: userService, authService: authService}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware(h.authService))
	{
		users.GET("/profile", h.GetProfile)
		users.PUT("/profile", h.UpdateProfile)
		users.DELETE("/profile", h.DeleteAccount)
		users.PUT("/password", h.ChangePassword)
		users.GET("/favorites", h.ListFavorites)
		users.POST("/favorites/:recipeId", h.AddFavorite)
		users.DELETE("/favorites/:recipeId", h.RemoveFavorite)
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "", profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "Profile updated successfully", user)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.userService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "Password updated successfully", nil)
}

func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.userService.DeleteAccount(c.Request.Context(), userID); err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "Account deleted successfully", nil)
}

func (h *UserHandler) ListFavorites(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	page, err := h.userService.ListFavorites(c.Request.Context(), userID, service.ParsePage(c.Request.URL.Query()))
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "", pageData("recipes", page))
}

func (h *UserHandler) AddFavorite(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	favorites, err := h.userService.AddFavorite(c.Request.Context(), userID, c.Param("recipeId"))
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Recipe added to favorites", favorites)
}

func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	favorites, err := h.userService.RemoveFavorite(c.Request.Context(), userID, c.Param("recipeId"))
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, "Recipe removed from favorites", favorites)
}
