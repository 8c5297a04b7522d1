package question

import "context"

// Usecase defines the interface for question business logic operations.
type Usecase interface {
	CreateQuestion(ctx context.Context, in CreateQuestionRequest) (*CreateQuestionResponse, error)
	ListQuestions(ctx context.Context, in ListQuestionsRequest) (*ListQuestionsResponse, error)
}
