package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the validated content of an access token.
type Claims struct {
	UserID    uuid.UUID
	Roles     []string
	Type      string
	ExpiresAt time.Time
}

// TokenService issues and validates the bearer tokens used by the admin API.
// Login is handled elsewhere; this service only needs to trust the tokens.
type TokenService interface {
	// GenerateAccessToken creates an access token for userID carrying roles.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken parses and verifies an access token.
	ValidateToken(tokenString string) (*Claims, error)
}
