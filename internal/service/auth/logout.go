package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

// Logout revokes the session the request presented. Requests authenticated
// with a bearer access token carry no session hash; those revoke every
// session of the user instead.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if hash := ctxutil.SessionHashFromCtx(ctx); hash != "" {
		if err := s.sessions.RevokeByHash(ctx, hash); err != nil {
			return fmt.Errorf("auth.Logout: %w", err)
		}
	} else {
		if err := s.sessions.RevokeAllByUser(ctx, userID); err != nil {
			return fmt.Errorf("auth.Logout: %w", err)
		}
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// CleanupExpiredSessions removes all expired sessions from the database.
// Returns the number of sessions deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	count, err := s.sessions.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredSessions: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired sessions", slog.Int64("count", count))
	}

	return count, nil
}
