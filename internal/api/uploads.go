package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebook/backend/internal/middleware"
	"github.com/pageza/recipebook/backend/internal/service"
)

// UploadHandler accepts recipe and profile images
type UploadHandler struct {
	imageService service.IImageService
	authService  service.IAuthService
}

func NewUploadHandler(imageService service.IImageService, authService service.IAuthService) *UploadHandler {
	return &UploadHandler{imageService: imageService, authService: authService}
}

func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	uploads := router.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware(h.authService))
	{
		uploads.POST("/images", h.UploadImage)
	}
}

// UploadImage handles a multipart upload in the "image" field
func (h *UploadHandler) UploadImage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxImageSize+1<<20)
	header, err := c.FormFile("image")
	if err != nil {
		fail(c, http.StatusBadRequest, "Image file is required")
		return
	}
	if header.Size > service.MaxImageSize {
		fail(c, http.StatusBadRequest, "Image must be 5MB or smaller")
		return
	}

	file, err := header.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, "Image file is unreadable")
		return
	}
	defer file.Close()

	url, err := h.imageService.Upload(c.Request.Context(), userID, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Image uploaded successfully", gin.H{"url": url})
}
