package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"forum-api/internal/domain/account"
	pkgerrors "forum-api/pkg/errors"
)

// AccountRepoPG implements the account repository interface using PostgreSQL and GORM.
type AccountRepoPG struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewAccountRepoPG creates a new instance of AccountRepoPG.
func NewAccountRepoPG(db *gorm.DB, log *zap.Logger) *AccountRepoPG {
	return &AccountRepoPG{db: db, log: log}
}

// AccountSchema represents the database schema for the accounts table.
// The unique index on email is the authoritative uniqueness guarantee; the
// usecase-level pre-check is advisory only.
type AccountSchema struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName specifies the table name for the AccountSchema model.
func (AccountSchema) TableName() string {
	return "accounts"
}

// Create inserts a new account into the database. A duplicate-email violation
// from the unique index is translated into an AlreadyExistsError.
func (r *AccountRepoPG) Create(ctx context.Context, a *account.Account) (uuid.UUID, error) {
	if a == nil {
		return uuid.Nil, errors.New("account cannot be nil")
	}

	model := AccountSchema{
		ID:           uuid.New(),
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.log.Warn("duplicate email rejected by unique index", zap.String("email", a.Email))
			return uuid.Nil, pkgerrors.NewAlreadyExistsError("account", "email already exists")
		}
		r.log.Error("failed to create account in db", zap.Error(err), zap.String("email", a.Email))
		return uuid.Nil, fmt.Errorf("failed to create account: %w", err)
	}

	r.log.Info("account created in db", zap.String("id", model.ID.String()))
	return model.ID, nil
}

// GetByID retrieves an account from the database by its unique ID.
// Returns nil without error when no row matches.
func (r *AccountRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var model AccountSchema
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("account not found", zap.String("id", id.String()))
			return nil, nil
		}
		r.log.Error("failed to get account from db", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return toDomainAccount(&model), nil
}

// GetByEmail retrieves an account from the database by its email address.
// Returns nil without error when no row matches.
func (r *AccountRepoPG) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	var model AccountSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("account not found by email", zap.String("email", email))
			return nil, nil
		}
		r.log.Error("failed to get account by email from db", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return toDomainAccount(&model), nil
}

func toDomainAccount(model *AccountSchema) *account.Account {
	return &account.Account{
		ID:           model.ID,
		Name:         model.Name,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		CreatedAt:    model.CreatedAt,
	}
}
