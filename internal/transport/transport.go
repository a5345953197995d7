package transport

import (
	"github.com/ds124wfegd/pencil-sketch/internal/entity"
	"github.com/ds124wfegd/pencil-sketch/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

func InitRoutes(sketchHandler *SketchHandler) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// API routes
	router.POST("/api/convert", sketchHandler.ConvertImage)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, entity.StatusResponse{
			Status:  "ok",
			Message: "Pencil Sketch API is running",
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, entity.StatusResponse{
			Status:  "ok",
			Service: "pencil-sketch-api",
		})
	})

	return router
}
