package transport

import (
	"errors"
	"io"
	"net/http"

	"github.com/ds124wfegd/pencil-sketch/internal/entity"
	"github.com/gin-gonic/gin"
)

func (h *SketchHandler) ConvertImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	// Проверка типа файла
	contentType := file.Header.Get("Content-Type")
	if !entity.AllowedImageTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Please upload a JPG, PNG, or WEBP image."})
		return
	}

	// Проверка размера файла (лимит 10MB)
	if file.Size > entity.MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large. Maximum size is 10MB."})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file."})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, entity.MaxUploadSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file."})
		return
	}
	if int64(len(data)) > entity.MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large. Maximum size is 10MB."})
		return
	}

	result, err := h.service.Convert(data, contentType)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=pencil-sketch.png")
	c.Data(http.StatusOK, "image/png", result)
}

// statusFromError maps pipeline error kinds to HTTP statuses:
// caller errors are 4xx, internal defects are 5xx
func statusFromError(err error) int {
	switch {
	case errors.Is(err, entity.ErrUnsupportedFormat), errors.Is(err, entity.ErrDecode):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
