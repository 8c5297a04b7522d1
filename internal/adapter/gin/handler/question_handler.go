package handler

import (
	"net/http"
	"strconv"

	"forum-api/internal/adapter/gin/middleware"
	"forum-api/internal/usecase/question"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuestionHandler handles HTTP requests for question operations
type QuestionHandler struct {
	uc  question.Usecase
	log *zap.Logger
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(uc question.Usecase, log *zap.Logger) *QuestionHandler {
	return &QuestionHandler{
		uc:  uc,
		log: log,
	}
}

// CreateQuestionRequest represents the HTTP request body for creating a question
type CreateQuestionRequest struct {
	Title   string `json:"title" binding:"required,min=5,max=200"`
	Content string `json:"content" binding:"required,min=10"`
}

// QuestionResponse represents the HTTP response for question data
type QuestionResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Content  string `json:"content"`
	AuthorID string `json:"author_id"`
}

// ListQuestionsResponse represents the HTTP response for listing questions
type ListQuestionsResponse struct {
	Questions  []QuestionResponse `json:"questions"`
	Pagination *Pagination        `json:"pagination,omitempty"`
}

// Pagination represents pagination information
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	TotalPages int64 `json:"total_pages"`
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create question request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	authorID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		// Route misconfiguration: the auth middleware did not run
		h.log.Error("create question reached without authenticated account")
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "Missing or invalid session token.",
		})
		return
	}

	ucReq := question.CreateQuestionRequest{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
	}

	if _, err := h.uc.CreateQuestion(c.Request.Context(), ucReq); err != nil {
		h.log.Warn("create question failed", zap.Error(err))
		handleError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// ListQuestions handles GET /questions
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	query := c.DefaultQuery("query", "")
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "10")

	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	ucReq := question.ListQuestionsRequest{
		Query: query,
		Page:  page,
		Limit: limit,
	}

	resp, err := h.uc.ListQuestions(c.Request.Context(), ucReq)
	if err != nil {
		h.log.Warn("list questions failed", zap.Error(err))
		handleError(c, err)
		return
	}

	questions := make([]QuestionResponse, len(resp.Questions))
	for i, q := range resp.Questions {
		questions[i] = QuestionResponse{
			ID:       q.ID.String(),
			Title:    q.Title,
			Slug:     q.Slug,
			Content:  q.Content,
			AuthorID: q.AuthorID.String(),
		}
	}

	var pagination *Pagination
	if resp.Pagination != nil {
		pagination = &Pagination{
			Total:      resp.Pagination.Total,
			Page:       resp.Pagination.Page,
			Limit:      resp.Pagination.Limit,
			TotalPages: resp.Pagination.TotalPages,
		}
	}

	c.JSON(http.StatusOK, ListQuestionsResponse{
		Questions:  questions,
		Pagination: pagination,
	})
}
