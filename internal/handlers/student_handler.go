package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"classkit/internal/export"
	"classkit/internal/middlewares"
	"classkit/internal/responses"
	"classkit/internal/services"
)

// StudentHandler serves the read-only share-link view. The access middleware
// has already resolved the token to a single project; answers and rubrics
// never leave these endpoints.
type StudentHandler struct {
	projectService *services.ProjectService
}

func NewStudentHandler(projectService *services.ProjectService) *StudentHandler {
	return &StudentHandler{projectService: projectService}
}

// View handles GET /api/v1/share?token=...
func (h *StudentHandler) View(c *gin.Context) {
	project := middlewares.FromContext(c).Project
	responses.Success(c, http.StatusOK, h.projectService.StudentViewOf(project), "")
}

// DownloadAssignment handles GET /api/v1/share/exports/assignment?token=...
func (h *StudentHandler) DownloadAssignment(c *gin.Context) {
	project := middlewares.FromContext(c).Project
	if project.Assignment.IsEmpty() {
		responses.Fail(c, http.StatusNotFound, nil, "No assignment available")
		return
	}

	data, err := export.Assignment(project.Assignment, false)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not render assignment")
		return
	}
	sendAttachment(c, export.AssignmentStudentFilename, export.AssignmentMIME, data)
}

// DownloadPoster handles GET /api/v1/share/exports/poster?token=...
func (h *StudentHandler) DownloadPoster(c *gin.Context) {
	project := middlewares.FromContext(c).Project
	if project.Poster.IsEmpty() {
		responses.Fail(c, http.StatusNotFound, nil, "No reference material available")
		return
	}

	data, err := export.Poster(project.Poster)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not render poster")
		return
	}
	sendAttachment(c, export.PosterFilename, export.PosterMIME, data)
}
