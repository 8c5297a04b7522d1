package question

import "github.com/google/uuid"

// CreateQuestionRequest represents the payload for creating a question.
// AuthorID comes from the verified session token, not the request body.
type CreateQuestionRequest struct {
	Title    string    `validate:"required,min=5,max=200"`
	Content  string    `validate:"required,min=10"`
	AuthorID uuid.UUID `validate:"required"`
}

// CreateQuestionResponse carries the identifier of the created question.
type CreateQuestionResponse struct {
	ID   uuid.UUID
	Slug string
}

// ListQuestionsRequest represents the payload for listing recent questions.
// It supports pagination and an optional title search.
type ListQuestionsRequest struct {
	Query string
	Page  int64
	Limit int64
}

// ListQuestionsResponse represents the response payload for question listing.
type ListQuestionsResponse struct {
	Questions  []Question
	Pagination *Pagination
}

// Pagination represents pagination information for list responses.
type Pagination struct {
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}

// Question represents a question DTO for API responses.
type Question struct {
	ID       uuid.UUID
	Title    string
	Slug     string
	Content  string
	AuthorID uuid.UUID
}
