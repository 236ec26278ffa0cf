package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"classkit/internal/config"
	"classkit/internal/responses"
	"classkit/internal/utils"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Login handles POST /api/v1/auth/login. The access code is a single shared
// secret; a match mints a session token with the configured lifetime.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		AccessCode string `json:"access_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide the access code")
		return
	}

	if !utils.SecureEquals(req.AccessCode, h.cfg.TeacherAccessCode) {
		responses.Fail(c, http.StatusUnauthorized, nil, "Invalid access code")
		return
	}

	token, err := utils.GenerateSessionToken(h.cfg.SessionSecret, h.cfg.SessionTTL)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Could not create session")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"session_token":      token,
		"expires_in_seconds": int(h.cfg.SessionTTL.Seconds()),
	}, "Verified Teacher")
}
