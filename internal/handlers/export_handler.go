package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"classkit/internal/export"
	"classkit/internal/models"
	"classkit/internal/responses"
	"classkit/internal/services"
	"classkit/internal/utils"
)

type ExportHandler struct {
	projectService *services.ProjectService
}

func NewExportHandler(projectService *services.ProjectService) *ExportHandler {
	return &ExportHandler{projectService: projectService}
}

func sendAttachment(c *gin.Context, filename, mime string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, mime, data)
}

func (h *ExportHandler) loadProject(c *gin.Context) *models.Project {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid project id")
		return nil
	}
	project, err := h.projectService.Get(id)
	if err != nil {
		responses.Error(c, err, "Could not load project")
		return nil
	}
	return project
}

// DownloadSlides handles GET /api/v1/projects/:id/exports/slides
func (h *ExportHandler) DownloadSlides(c *gin.Context) {
	project := h.loadProject(c)
	if project == nil {
		return
	}
	if project.Slides.IsEmpty() {
		responses.Fail(c, http.StatusNotFound, nil, "No slides generated yet")
		return
	}

	data, err := export.Slides(project.Slides)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not render slides")
		return
	}
	sendAttachment(c, export.SlidesFilename, export.SlidesMIME, data)
}

// DownloadPoster handles GET /api/v1/projects/:id/exports/poster
func (h *ExportHandler) DownloadPoster(c *gin.Context) {
	project := h.loadProject(c)
	if project == nil {
		return
	}
	if project.Poster.IsEmpty() {
		responses.Fail(c, http.StatusNotFound, nil, "No poster generated yet")
		return
	}

	data, err := export.Poster(project.Poster)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not render poster")
		return
	}
	sendAttachment(c, export.PosterFilename, export.PosterMIME, data)
}

// DownloadAssignment handles GET /api/v1/projects/:id/exports/assignment.
// ?answers=true selects the teacher answer key.
func (h *ExportHandler) DownloadAssignment(c *gin.Context) {
	project := h.loadProject(c)
	if project == nil {
		return
	}
	if project.Assignment.IsEmpty() {
		responses.Fail(c, http.StatusNotFound, nil, "No assignment generated yet")
		return
	}

	includeAnswers := c.Query("answers") == "true"

	data, err := export.Assignment(project.Assignment, includeAnswers)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not render assignment")
		return
	}

	filename := export.AssignmentStudentFilename
	if includeAnswers {
		filename = export.AssignmentKeyFilename
	}
	sendAttachment(c, filename, export.AssignmentMIME, data)
}
