package account

import (
	"context"

	"github.com/google/uuid"
)

// Usecase defines the interface for account business logic operations.
type Usecase interface {
	Register(ctx context.Context, in RegisterRequest) error
	Authenticate(ctx context.Context, in AuthenticateRequest) (*AuthenticateResponse, error)
}

// Hasher abstracts one-way password hashing with a tunable cost factor.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer signs a session token binding an account identity.
type TokenIssuer interface {
	Sign(accountID uuid.UUID) (string, error)
}
