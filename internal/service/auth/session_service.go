package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionService defines operations for managing session tokens. A session
// is a stateless signed token carrying the caller's user ID; the auth gate
// resolves it on every request, and nothing is ever written back to it.
type SessionService interface {
	// IssueToken creates a signed session token for the given user.
	// Returns the token string or an error if signing fails.
	IssueToken(ctx context.Context, userID primitive.ObjectID) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the resolved identity carried by a session token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID primitive.ObjectID

	// Standard registered claims
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
