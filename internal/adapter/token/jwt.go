package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a token fails signature or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// JWTConfig holds token signing configuration.
type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// sessionClaims are the claims carried by a session token. The account id
// travels in the registered "sub" claim.
type sessionClaims struct {
	jwt.RegisteredClaims
}

// JWTIssuer signs and verifies HS256 session tokens.
type JWTIssuer struct {
	cfg JWTConfig
}

// NewJWTIssuer creates a new issuer with the given configuration.
func NewJWTIssuer(cfg JWTConfig) *JWTIssuer {
	return &JWTIssuer{cfg: cfg}
}

// Sign generates a signed token binding the given account id as subject.
func (j *JWTIssuer) Sign(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.cfg.Issuer,
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.cfg.TTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(j.cfg.Secret))
}

// Verify parses a token string and returns the account id it binds.
func (j *JWTIssuer) Verify(tokenString string) (uuid.UUID, error) {
	claims := &sessionClaims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(j.cfg.Secret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !t.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return id, nil
}
