package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	authtoken "github.com/heartmarshall/flashdeck-backend/internal/auth"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

// Status returns the authenticated user for the current request.
// Returns ErrUnauthorized if no userID is found in context or the
// account was deactivated after the credentials were issued.
func (s *Service) Status(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Status get user: %w", err)
	}

	if !user.IsActive {
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}

// ValidateToken validates a bearer access token and returns the user ID.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// ValidateSession resolves a raw session token to a user ID, along with
// the token hash so the request can later revoke exactly this session.
// Returns ErrUnauthorized for unknown, revoked, or expired sessions and
// for sessions whose user is gone or deactivated.
func (s *Service) ValidateSession(ctx context.Context, rawToken string) (uuid.UUID, string, error) {
	hash := authtoken.HashToken(rawToken)

	session, err := s.sessions.GetByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, "", domain.ErrUnauthorized
		}
		return uuid.Nil, "", fmt.Errorf("auth.ValidateSession get session: %w", err)
	}

	if session.IsRevoked() || session.IsExpired(time.Now()) {
		return uuid.Nil, "", domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, "", domain.ErrUnauthorized
		}
		return uuid.Nil, "", fmt.Errorf("auth.ValidateSession get user: %w", err)
	}
	if !user.IsActive {
		return uuid.Nil, "", domain.ErrUnauthorized
	}

	return user.ID, hash, nil
}
