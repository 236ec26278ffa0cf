package routes

import (
	"github.com/gin-gonic/gin"

	"classkit/internal/handlers"
	"classkit/internal/middlewares"
)

type ProjectRoutes struct {
	handler *handlers.ProjectHandler
	exports *handlers.ExportHandler
}

func NewProjectRoutes(handler *handlers.ProjectHandler, exports *handlers.ExportHandler) *ProjectRoutes {
	return &ProjectRoutes{handler: handler, exports: exports}
}

func (r *ProjectRoutes) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	projects.Use(middlewares.RequireTeacher) // All project routes require a teacher session
	{
		projects.POST("", r.handler.CreateProject)
		projects.GET("", r.handler.ListProjects)
		projects.GET("/:id", r.handler.GetProject)
		projects.POST("/:id/generate/:kind", r.handler.Generate)
		projects.GET("/:id/exports/slides", r.exports.DownloadSlides)
		projects.GET("/:id/exports/poster", r.exports.DownloadPoster)
		projects.GET("/:id/exports/assignment", r.exports.DownloadAssignment)
	}
}
