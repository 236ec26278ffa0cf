package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"classkit/internal/models"
	"classkit/internal/responses"
	"classkit/internal/services"
	"classkit/internal/utils"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	baseURL        string
}

func NewProjectHandler(projectService *services.ProjectService, baseURL string) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		baseURL:        baseURL,
	}
}

// projectPayload is the dashboard representation: the project plus the link
// a teacher hands to students. The teacher token stays server-side.
type projectPayload struct {
	*models.Project
	StudentLink string `json:"student_link"`
}

func (h *ProjectHandler) payload(p *models.Project) projectPayload {
	return projectPayload{
		Project:     p,
		StudentLink: fmt.Sprintf("%s/api/v1/share?token=%s", h.baseURL, p.StudentToken),
	}
}

// CreateProject handles POST /api/v1/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	project, err := h.projectService.Create(req)
	if err != nil {
		responses.Error(c, err, "Could not create project")
		return
	}

	responses.Success(c, http.StatusCreated, h.payload(project), "Project created")
}

// ListProjects handles GET /api/v1/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	summaries, err := h.projectService.List()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not list projects")
		return
	}

	responses.Success(c, http.StatusOK, summaries, "")
}

// GetProject handles GET /api/v1/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid project id")
		return
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		responses.Error(c, err, "Could not load project")
		return
	}

	responses.Success(c, http.StatusOK, h.payload(project), "")
}

// Generate handles POST /api/v1/projects/:id/generate/:kind
func (h *ProjectHandler) Generate(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid project id")
		return
	}

	kind, err := models.ParseDocumentKind(c.Param("kind"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Unknown document kind")
		return
	}

	project, fallback, err := h.projectService.Generate(c.Request.Context(), id, kind)
	if err != nil {
		responses.Error(c, err, fmt.Sprintf("Could not generate %s", kind))
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"project":  h.payload(project),
		"fallback": fallback,
	}, fmt.Sprintf("Generated %s", kind))
}
