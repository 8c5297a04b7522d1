package cached

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"forum-api/internal/adapter/cache"
	domain "forum-api/internal/domain/account"
)

// MockRepository is a mock implementation of the account repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, a *domain.Account) (uuid.UUID, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func setupCachedRepo(t *testing.T) (*MockRepository, cache.AccountCache, *CachedAccountRepository) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := zaptest.NewLogger(t)
	accountCache := cache.NewRedisAccountCache(client, 5*time.Minute, logger)
	mockRepo := new(MockRepository)
	repo := NewCachedAccountRepository(mockRepo, accountCache, logger).(*CachedAccountRepository)
	return mockRepo, accountCache, repo
}

func TestCachedAccountRepository_GetByID_PopulatesCache(t *testing.T) {
	mockRepo, accountCache, repo := setupCachedRepo(t)
	ctx := context.Background()

	acc := &domain.Account{ID: uuid.New(), Name: "Alice", Email: "alice@x.com"}
	mockRepo.On("GetByID", ctx, acc.ID).Return(acc, nil).Once()

	// First call hits the database
	got, err := repo.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, acc.Email, got.Email)

	// Second call is served from cache; the mock would fail on a second DB hit
	got, err = repo.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, acc.Email, got.Email)

	cachedAcc, err := accountCache.Get(ctx, acc.ID)
	require.NoError(t, err)
	require.NotNil(t, cachedAcc)

	mockRepo.AssertExpectations(t)
}

func TestCachedAccountRepository_GetByID_AbsentNotCached(t *testing.T) {
	mockRepo, accountCache, repo := setupCachedRepo(t)
	ctx := context.Background()

	id := uuid.New()
	mockRepo.On("GetByID", ctx, id).Return(nil, nil).Twice()

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	cachedAcc, err := accountCache.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, cachedAcc)

	// The miss goes back to the database every time
	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	mockRepo.AssertExpectations(t)
}

func TestCachedAccountRepository_GetByID_DBError(t *testing.T) {
	mockRepo, _, repo := setupCachedRepo(t)
	ctx := context.Background()

	id := uuid.New()
	mockRepo.On("GetByID", ctx, id).Return(nil, errors.New("db down"))

	_, err := repo.GetByID(ctx, id)
	assert.Error(t, err)
}

func TestCachedAccountRepository_GetByEmail_Delegates(t *testing.T) {
	mockRepo, _, repo := setupCachedRepo(t)
	ctx := context.Background()

	acc := &domain.Account{ID: uuid.New(), Email: "alice@x.com"}
	mockRepo.On("GetByEmail", ctx, "alice@x.com").Return(acc, nil).Twice()

	// Credential lookups must never be served from cache
	for i := 0; i < 2; i++ {
		got, err := repo.GetByEmail(ctx, "alice@x.com")
		require.NoError(t, err)
		assert.Equal(t, acc.ID, got.ID)
	}

	mockRepo.AssertExpectations(t)
}
