package handler

import (
	"net/http"

	"forum-api/internal/usecase/account"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler handles HTTP requests for account registration and
// authentication.
type AccountHandler struct {
	uc  account.Usecase
	log *zap.Logger
}

// NewAccountHandler creates a new AccountHandler instance
func NewAccountHandler(uc account.Usecase, log *zap.Logger) *AccountHandler {
	return &AccountHandler{
		uc:  uc,
		log: log,
	}
}

// RegisterRequest represents the HTTP request body for creating an account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthenticateRequest represents the HTTP request body for authenticating
type AuthenticateRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse represents the HTTP response for a successful authentication
type SessionResponse struct {
	AccessToken string `json:"access_token"`
}

// Register handles POST /accounts
func (h *AccountHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid register request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	ucReq := account.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := h.uc.Register(c.Request.Context(), ucReq); err != nil {
		h.log.Warn("register failed", zap.Error(err))
		handleError(c, err)
		return
	}

	// The contract returns no body for a created account
	c.Status(http.StatusCreated)
}

// Authenticate handles POST /sessions
func (h *AccountHandler) Authenticate(c *gin.Context) {
	var req AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid authenticate request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	ucReq := account.AuthenticateRequest{
		Email:    req.Email,
		Password: req.Password,
	}

	resp, err := h.uc.Authenticate(c.Request.Context(), ucReq)
	if err != nil {
		h.log.Warn("authenticate failed", zap.Error(err))
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		AccessToken: resp.AccessToken,
	})
}
