package cached

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"forum-api/internal/adapter/cache"
	domain "forum-api/internal/domain/account"
	"forum-api/internal/usecase/account"
)

// CachedAccountRepository implements account.Repository with caching support.
// It wraps a persistent repository (DB) and a cache implementation. Only
// GetByID is cached: it is the hot path behind token-authenticated requests,
// while GetByEmail feeds credential checks and must always see fresh rows.
type CachedAccountRepository struct {
	dbRepo account.Repository
	cache  cache.AccountCache
	log    *zap.Logger
	group  singleflight.Group
}

// NewCachedAccountRepository creates a new instance of CachedAccountRepository.
func NewCachedAccountRepository(dbRepo account.Repository, cache cache.AccountCache, log *zap.Logger) account.Repository {
	return &CachedAccountRepository{
		dbRepo: dbRepo,
		cache:  cache,
		log:    log,
	}
}

// Create delegates to the DB repository.
func (r *CachedAccountRepository) Create(ctx context.Context, a *domain.Account) (uuid.UUID, error) {
	return r.dbRepo.Create(ctx, a)
}

// GetByID retrieves an account by ID using the cache-aside pattern.
func (r *CachedAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if r.cache != nil {
		cachedAcc, err := r.cache.Get(ctx, id)
		if err != nil {
			r.log.Warn("cache get error, falling back to database", zap.String("id", id.String()), zap.Error(err))
		} else if cachedAcc != nil {
			r.log.Debug("account retrieved from cache", zap.String("id", id.String()))
			return cachedAcc, nil
		}
	}

	// Cache miss or cache disabled - use single-flight to prevent stampede
	key := fmt.Sprintf("account:%s", id)
	result, err, _ := r.group.Do(key, func() (any, error) {
		// Double-check cache in case another request populated it while we were waiting
		if r.cache != nil {
			cachedAcc, err := r.cache.Get(ctx, id)
			if err == nil && cachedAcc != nil {
				r.log.Debug("account retrieved from cache after single-flight wait", zap.String("id", id.String()))
				return cachedAcc, nil
			}
		}

		// Only one request hits the database
		a, err := r.dbRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		// Absent rows are not cached; a stale "missing" entry would lock the
		// account out until the TTL expires
		if a != nil && r.cache != nil {
			if err := r.cache.Set(ctx, a); err != nil {
				r.log.Warn("failed to cache account", zap.String("id", id.String()), zap.Error(err))
			}
		}

		return a, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*domain.Account), nil
}

// GetByEmail delegates to the DB repository.
func (r *CachedAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.dbRepo.GetByEmail(ctx, email)
}
