package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Claims holds the validated contents of an access token.
type Claims struct {
	UserID    uuid.UUID
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// JWTService issues and validates the bearer tokens that scope every task
// operation to its owner.
type JWTService interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken checks a token string and returns its claims.
	// Returns ErrExpiredToken for expired tokens and ErrInvalidToken for
	// anything else that fails validation.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// TokenLifetime reports the configured access token lifetime.
	TokenLifetime() time.Duration
}
