package auth

import (
	"time"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// AuthResult is returned by Signup and Login operations.
type AuthResult struct {
	AccessToken      string
	SessionToken     string // raw token, NOT hash
	SessionExpiresAt time.Time
	User             *domain.User
}
