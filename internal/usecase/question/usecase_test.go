package question

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	accountdomain "forum-api/internal/domain/account"
	domain "forum-api/internal/domain/question"
	pkgerrors "forum-api/pkg/errors"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, q *domain.Question) (uuid.UUID, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, query string, page, limit int64) ([]domain.Question, int64, error) {
	args := m.Called(ctx, query, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Question), args.Get(1).(int64), args.Error(2)
}

// MockAccountRepository is a mock implementation of the account repository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, a *accountdomain.Account) (uuid.UUID, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*accountdomain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountdomain.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*accountdomain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountdomain.Account), args.Error(1)
}

func setupTestUsecase(t *testing.T) (Usecase, *MockRepository, *MockAccountRepository) {
	mockRepo := new(MockRepository)
	mockAccounts := new(MockAccountRepository)
	logger := zaptest.NewLogger(t)
	uc := New(mockRepo, mockAccounts, logger)
	return uc, mockRepo, mockAccounts
}

func TestCreateQuestion_Success(t *testing.T) {
	uc, mockRepo, mockAccounts := setupTestUsecase(t)
	ctx := context.Background()

	authorID := uuid.New()
	mockAccounts.On("GetByID", ctx, authorID).Return(&accountdomain.Account{ID: authorID, Name: "Alice"}, nil)

	questionID := uuid.New()
	mockRepo.On("Create", ctx, mock.MatchedBy(func(q *domain.Question) bool {
		return q.Title == "New question" && q.Slug == "new-question" && q.AuthorID == authorID
	})).Return(questionID, nil)

	resp, err := uc.CreateQuestion(ctx, CreateQuestionRequest{
		Title:    "New question",
		Content:  "Question content goes here",
		AuthorID: authorID,
	})

	require.NoError(t, err)
	assert.Equal(t, questionID, resp.ID)
	assert.Equal(t, "new-question", resp.Slug)
	mockRepo.AssertExpectations(t)
}

func TestCreateQuestion_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		req      CreateQuestionRequest
		contains string
	}{
		{
			name:     "title required",
			req:      CreateQuestionRequest{Content: "Question content goes here", AuthorID: uuid.New()},
			contains: "Title is required",
		},
		{
			name:     "title too short",
			req:      CreateQuestionRequest{Title: "Hey", Content: "Question content goes here", AuthorID: uuid.New()},
			contains: "Title must be at least 5 characters",
		},
		{
			name:     "content too short",
			req:      CreateQuestionRequest{Title: "New question", Content: "short", AuthorID: uuid.New()},
			contains: "Content must be at least 10 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := setupTestUsecase(t)

			resp, err := uc.CreateQuestion(context.Background(), tt.req)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestCreateQuestion_AuthorMissing(t *testing.T) {
	uc, _, mockAccounts := setupTestUsecase(t)
	ctx := context.Background()

	authorID := uuid.New()
	mockAccounts.On("GetByID", ctx, authorID).Return(nil, nil)

	resp, err := uc.CreateQuestion(ctx, CreateQuestionRequest{
		Title:    "New question",
		Content:  "Question content goes here",
		AuthorID: authorID,
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, pkgerrors.ErrCredentialsMismatch)
}

func TestCreateQuestion_SlugConflict(t *testing.T) {
	uc, mockRepo, mockAccounts := setupTestUsecase(t)
	ctx := context.Background()

	authorID := uuid.New()
	mockAccounts.On("GetByID", ctx, authorID).Return(&accountdomain.Account{ID: authorID}, nil)
	mockRepo.On("Create", ctx, mock.Anything).
		Return(uuid.Nil, pkgerrors.NewAlreadyExistsError("question", "duplicate slug"))

	resp, err := uc.CreateQuestion(ctx, CreateQuestionRequest{
		Title:    "New question",
		Content:  "Question content goes here",
		AuthorID: authorID,
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestListQuestions_ClampsPageAndLimit(t *testing.T) {
	uc, mockRepo, _ := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("List", ctx, "", int64(1), int64(10)).Return([]domain.Question{}, int64(0), nil)

	_, err := uc.ListQuestions(ctx, ListQuestionsRequest{Page: -5, Limit: 0})
	require.NoError(t, err)

	mockRepo.On("List", ctx, "", int64(2), int64(100)).Return([]domain.Question{}, int64(0), nil)

	_, err = uc.ListQuestions(ctx, ListQuestionsRequest{Page: 2, Limit: 500})
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestListQuestions_Success(t *testing.T) {
	uc, mockRepo, _ := setupTestUsecase(t)
	ctx := context.Background()

	stored := []domain.Question{
		{ID: uuid.New(), Title: "Second question", Slug: "second-question", AuthorID: uuid.New()},
		{ID: uuid.New(), Title: "First question", Slug: "first-question", AuthorID: uuid.New()},
	}
	mockRepo.On("List", ctx, "", int64(1), int64(10)).Return(stored, int64(12), nil)

	resp, err := uc.ListQuestions(ctx, ListQuestionsRequest{Page: 1, Limit: 10})

	require.NoError(t, err)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, "second-question", resp.Questions[0].Slug)
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, int64(12), resp.Pagination.Total)
	assert.Equal(t, int64(2), resp.Pagination.TotalPages)
}

func TestListQuestions_InvalidSearchQuery(t *testing.T) {
	uc, mockRepo, _ := setupTestUsecase(t)
	ctx := context.Background()

	// The repository rejects dangerous search terms with a typed validation error
	mockRepo.On("List", ctx, "x OR 1=1", int64(1), int64(10)).
		Return(nil, int64(0), pkgerrors.NewValidationError("query", "invalid search query"))

	resp, err := uc.ListQuestions(ctx, ListQuestionsRequest{Query: "x OR 1=1", Page: 1, Limit: 10})

	require.Error(t, err)
	assert.Nil(t, resp)
	var vErr *pkgerrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
}
