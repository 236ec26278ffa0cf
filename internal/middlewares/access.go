package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"classkit/internal/models"
	"classkit/internal/responses"
	"classkit/internal/utils"
)

type Scope string

const (
	ScopeAnonymous Scope = "anonymous"
	ScopeTeacher   Scope = "teacher"
	ScopeStudent   Scope = "student"
)

// Access is the per-request access context. It replaces any ambient
// session state: handlers read it, nothing else mutates it.
type Access struct {
	Scope Scope
	// Project is the single project a student share token grants, nil for
	// other scopes.
	Project *models.Project
}

// TokenResolver is the token lookup the middleware needs from persistence.
type TokenResolver interface {
	GetByToken(token uuid.UUID, role models.TokenRole) (*models.Project, error)
}

const accessKey = "access"

// Resolve classifies every request, in strict priority order: a student
// share token short-circuits everything, then a teacher session, then
// anonymous. An invalid share token is reported immediately rather than
// falling through to the other routes.
func Resolve(store TokenResolver, sessionSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.Query("token"); raw != "" {
			var project *models.Project
			token, err := uuid.Parse(raw)
			if err == nil {
				project, err = store.GetByToken(token, models.RoleStudent)
				if err != nil {
					responses.Fail(c, http.StatusInternalServerError, err, "Could not resolve share token")
					c.Abort()
					return
				}
			}
			if project == nil {
				responses.Fail(c, http.StatusNotFound, nil, "Invalid student token")
				c.Abort()
				return
			}
			c.Set(accessKey, &Access{Scope: ScopeStudent, Project: project})
			c.Next()
			return
		}

		if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.Split(header, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				if _, err := utils.VerifySessionToken(parts[1], sessionSecret); err == nil {
					c.Set(accessKey, &Access{Scope: ScopeTeacher})
					c.Next()
					return
				}
			}
		}

		c.Set(accessKey, &Access{Scope: ScopeAnonymous})
		c.Next()
	}
}

func FromContext(c *gin.Context) *Access {
	if v, ok := c.Get(accessKey); ok {
		if access, ok := v.(*Access); ok {
			return access
		}
	}
	return &Access{Scope: ScopeAnonymous}
}

// RequireTeacher gates dashboard routes. A request carrying a student token
// is read-only by definition and never reaches them.
func RequireTeacher(c *gin.Context) {
	switch FromContext(c).Scope {
	case ScopeTeacher:
		c.Next()
	case ScopeStudent:
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Share links grant read-only student access"})
	default:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Enter the teacher access code to sign in"})
	}
}

// RequireStudent gates the share-link routes.
func RequireStudent(c *gin.Context) {
	if FromContext(c).Scope != ScopeStudent {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Ask your teacher for a share link to view this content"})
		return
	}
	c.Next()
}
