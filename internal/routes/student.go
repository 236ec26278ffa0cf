package routes

import (
	"github.com/gin-gonic/gin"

	"classkit/internal/handlers"
	"classkit/internal/middlewares"
)

type StudentRoutes struct {
	handler *handlers.StudentHandler
}

func NewStudentRoutes(handler *handlers.StudentHandler) *StudentRoutes {
	return &StudentRoutes{handler: handler}
}

func (r *StudentRoutes) RegisterRoutes(router *gin.RouterGroup) {
	share := router.Group("/share")
	share.Use(middlewares.RequireStudent) // Share routes need a valid student token
	{
		share.GET("", r.handler.View)
		share.GET("/exports/assignment", r.handler.DownloadAssignment)
		share.GET("/exports/poster", r.handler.DownloadPoster)
	}
}
