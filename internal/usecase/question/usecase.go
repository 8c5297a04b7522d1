package question

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domain "forum-api/internal/domain/question"
	accountuc "forum-api/internal/usecase/account"
	pkgerrors "forum-api/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Repository defines the interface for question data access operations.
type Repository interface {
	Create(ctx context.Context, q *domain.Question) (uuid.UUID, error)
	List(ctx context.Context, query string, page, limit int64) ([]domain.Question, int64, error)
}

// ErrSlugTaken is the conflict surfaced when a question title slugs to an
// already used value.
var ErrSlugTaken = pkgerrors.NewAlreadyExistsError("question", "Question with same title already exists.")

// usecase implements the business logic for question operations.
type usecase struct {
	repo     Repository
	accounts accountuc.Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new instance of Usecase with the provided repositories and logger.
// The account repository resolves the author behind a session token; it is
// expected to be the cached implementation.
func New(r Repository, accounts accountuc.Repository, log *zap.Logger) Usecase {
	return &usecase{repo: r, accounts: accounts, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a human-readable error.
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "min":
				messages = append(messages, fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param()))
			case "max":
				messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return pkgerrors.NewValidationError("", strings.Join(messages, ", "))
	}
	return err
}

// CreateQuestion persists a new question authored by the account bound to the
// caller's session token. The slug derives from the title; its uniqueness is
// enforced by the store.
func (uc *usecase) CreateQuestion(ctx context.Context, in CreateQuestionRequest) (*CreateQuestionResponse, error) {
	uc.log.Info("creating question", zap.String("title", in.Title), zap.String("author_id", in.AuthorID.String()))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	author, err := uc.accounts.GetByID(ctx, in.AuthorID)
	if err != nil {
		uc.log.Error("failed to resolve author", zap.String("author_id", in.AuthorID.String()), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to resolve author", err)
	}
	if author == nil {
		// A verified token for an account that no longer exists
		uc.log.Warn("author not found for valid token", zap.String("author_id", in.AuthorID.String()))
		return nil, pkgerrors.ErrCredentialsMismatch
	}

	slug := domain.Slugify(in.Title)
	if slug == "" {
		return nil, pkgerrors.NewValidationError("Title", "must contain letters or digits")
	}

	id, err := uc.repo.Create(ctx, &domain.Question{
		Title:    in.Title,
		Slug:     slug,
		Content:  in.Content,
		AuthorID: in.AuthorID,
	})
	if err != nil {
		var conflict *pkgerrors.AlreadyExistsError
		if errors.As(err, &conflict) {
			uc.log.Warn("slug already exists", zap.String("slug", slug))
			return nil, ErrSlugTaken
		}
		uc.log.Error("failed to create question", zap.Error(err))
		return nil, err
	}

	uc.log.Info("question created", zap.String("id", id.String()), zap.String("slug", slug))
	return &CreateQuestionResponse{ID: id, Slug: slug}, nil
}

// ListQuestions retrieves a paginated, newest-first list of questions with an
// optional title search.
func (uc *usecase) ListQuestions(ctx context.Context, in ListQuestionsRequest) (*ListQuestionsResponse, error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = 10
	}
	if in.Limit > 100 {
		in.Limit = 100
	}

	uc.log.Info("listing questions", zap.String("query", in.Query), zap.Int64("page", in.Page), zap.Int64("limit", in.Limit))

	domainQuestions, total, err := uc.repo.List(ctx, in.Query, in.Page, in.Limit)
	if err != nil {
		var vErr *pkgerrors.ValidationError
		if errors.As(err, &vErr) {
			uc.log.Warn("invalid search query", zap.String("query", in.Query), zap.Error(err))
			return nil, err
		}
		uc.log.Error("failed to list questions", zap.String("query", in.Query), zap.Error(err))
		return nil, err
	}

	questions := make([]Question, len(domainQuestions))
	for i, dq := range domainQuestions {
		questions[i] = Question{
			ID:       dq.ID,
			Title:    dq.Title,
			Slug:     dq.Slug,
			Content:  dq.Content,
			AuthorID: dq.AuthorID,
		}
	}

	p := domain.NewPagination(total, in.Page, in.Limit)
	return &ListQuestionsResponse{
		Questions: questions,
		Pagination: &Pagination{
			Total:      p.Total,
			Page:       p.Page,
			Limit:      p.Limit,
			TotalPages: p.TotalPages,
		},
	}, nil
}
