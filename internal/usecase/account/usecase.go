package account

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domain "forum-api/internal/domain/account"
	pkgerrors "forum-api/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Repository defines the interface for account data access operations.
// It abstracts the data layer, allowing different implementations
// (e.g., PostgreSQL, cached) to be used interchangeably.
type Repository interface {
	Create(ctx context.Context, a *domain.Account) (uuid.UUID, error)      // Create a new account
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)    // Retrieve account by ID
	GetByEmail(ctx context.Context, email string) (*domain.Account, error) // Retrieve account by email, nil if absent
}

// dummyHash is a valid bcrypt hash that matches no issued password. When
// authentication targets an unknown email, the candidate is still compared
// against it so both failure paths pay one bcrypt comparison.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// ErrEmailTaken is the conflict surfaced when registering an email that
// already has an account.
var ErrEmailTaken = pkgerrors.NewAlreadyExistsError("account", "User with same email already exists.")

// usecase implements registration and authentication of accounts.
type usecase struct {
	repo     Repository
	hasher   Hasher
	tokens   TokenIssuer
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new instance of Usecase with the provided repository, hasher,
// token issuer, and logger.
func New(r Repository, h Hasher, t TokenIssuer, log *zap.Logger) Usecase {
	return &usecase{repo: r, hasher: h, tokens: t, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a human-readable error.
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "email":
				messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
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

// Register creates a new account after checking email uniqueness and hashing
// the password. The pre-check is advisory only: the store's unique index is
// authoritative, and a duplicate-key violation on the write path surfaces the
// same conflict.
func (uc *usecase) Register(ctx context.Context, in RegisterRequest) error {
	uc.log.Info("registering account", zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return formatValidationError(err)
	}

	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return pkgerrors.NewInternalError("failed to validate email uniqueness", err)
	}
	if existing != nil {
		uc.log.Warn("email already registered", zap.String("email", in.Email))
		return ErrEmailTaken
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		uc.log.Error("failed to hash password", zap.Error(err))
		return pkgerrors.NewInternalError("failed to hash password", err)
	}

	id, err := uc.repo.Create(ctx, &domain.Account{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		// Lost the race against a concurrent registration: the unique index
		// rejected the write, which is the same conflict as the pre-check.
		if _, ok := err.(*pkgerrors.AlreadyExistsError); ok {
			uc.log.Warn("email already registered (write path)", zap.String("email", in.Email))
			return ErrEmailTaken
		}
		uc.log.Error("failed to create account", zap.Error(err))
		return err
	}

	uc.log.Info("account registered", zap.String("id", id.String()))
	return nil
}

// Authenticate verifies credentials and issues a session token on success.
// Unknown email and wrong password produce the identical error value so the
// caller cannot tell which one occurred.
func (uc *usecase) Authenticate(ctx context.Context, in AuthenticateRequest) (*AuthenticateResponse, error) {
	uc.log.Info("authenticating account", zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	acc, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to look up account", zap.String("email", in.Email), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to look up account", err)
	}
	if acc == nil {
		// Burn a comparison so the miss path is not observably faster.
		uc.hasher.Verify(in.Password, dummyHash)
		uc.log.Warn("authentication failed: unknown email", zap.String("email", in.Email))
		return nil, pkgerrors.ErrCredentialsMismatch
	}

	if !uc.hasher.Verify(in.Password, acc.PasswordHash) {
		uc.log.Warn("authentication failed: wrong password", zap.String("email", in.Email))
		return nil, pkgerrors.ErrCredentialsMismatch
	}

	signed, err := uc.tokens.Sign(acc.ID)
	if err != nil {
		uc.log.Error("failed to sign session token", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to sign session token", err)
	}

	uc.log.Info("session token issued", zap.String("id", acc.ID.String()))
	return &AuthenticateResponse{AccessToken: signed}, nil
}
