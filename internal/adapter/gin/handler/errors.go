package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "forum-api/pkg/errors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// handleError converts usecase errors to the appropriate HTTP response.
// Errors that do not carry a status are masked as internal errors.
func handleError(c *gin.Context, err error) {
	var statusErr pkgerrors.HTTPStatuser
	if errors.As(err, &statusErr) {
		status := statusErr.HTTPStatus()
		message := err.Error()
		if status >= http.StatusInternalServerError {
			// Never leak internals to the caller
			message = "An internal error occurred"
		}
		c.JSON(status, ErrorResponse{
			Error:   errorCode(status),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}

// errorCode maps an HTTP status to a stable machine-readable code.
func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "validation_error"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "already_exists"
	default:
		return "internal_error"
	}
}
