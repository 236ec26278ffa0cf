package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"classkit/internal/handlers"
)

func RegisterRoutes(
	router *gin.Engine,
	resolveAccess gin.HandlerFunc,
	authHandler *handlers.AuthHandler,
	projectHandler *handlers.ProjectHandler,
	exportHandler *handlers.ExportHandler,
	studentHandler *handlers.StudentHandler,
) {
	api := router.Group("/api/v1")
	api.Use(resolveAccess)

	authRoutes := NewAuthRoutes(authHandler)
	authRoutes.RegisterRoutes(api)

	projectRoutes := NewProjectRoutes(projectHandler, exportHandler)
	projectRoutes.RegisterRoutes(api)

	studentRoutes := NewStudentRoutes(studentHandler)
	studentRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
