package account

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a registered user account.
type Account struct {
	ID           uuid.UUID // ID is the opaque unique identifier, assigned at creation
	Name         string    // Name is the display name of the account holder
	Email        string    // Email is the unique email address used for authentication
	PasswordHash string    // PasswordHash is the bcrypt hash of the password, never the plaintext
	CreatedAt    time.Time
}
