package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"classkit/internal/apierr"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := APIResponse{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}

// Error maps a service error onto the envelope. apierr values keep their
// status and code; anything else is an internal error.
func Error(c *gin.Context, err error, message string) {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		c.JSON(ae.Status, APIResponse{
			Status:  "error",
			Message: message,
			Error:   ae.Error(),
			Code:    ae.Code,
		})
		return
	}
	Fail(c, http.StatusInternalServerError, err, message)
}
