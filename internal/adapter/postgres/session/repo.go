// Package session implements the Session repository using PostgreSQL.
// Sessions are looked up by the SHA-256 hash of the opaque token; the
// raw token never touches the database.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, token_hash, expires_at, created_at, revoked_at`

const createSQL = `
INSERT INTO sessions (` + sessionColumns + `)
VALUES ($1, $2, $3, $4, $5, NULL)
RETURNING ` + sessionColumns

const getByTokenHashSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE token_hash = $1`

const revokeByHashSQL = `
UPDATE sessions
SET revoked_at = $2
WHERE token_hash = $1 AND revoked_at IS NULL`

const revokeAllByUserSQL = `
UPDATE sessions
SET revoked_at = $2
WHERE user_id = $1 AND revoked_at IS NULL`

const deleteExpiredSQL = `
DELETE FROM sessions
WHERE expires_at < $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a new session for a user.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	s, err := scanSession(querier.QueryRow(ctx, createSQL, id, userID, tokenHash, expiresAt.UTC(), now))
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}

	return s, nil
}

// GetByTokenHash returns the session matching a token hash.
func (r *Repo) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(querier.QueryRow(ctx, getByTokenHashSQL, tokenHash))
	if err != nil {
		return nil, postgres.MapError(err, "session", uuid.Nil)
	}

	return s, nil
}

// RevokeByHash marks the session with the given token hash as revoked.
// Revoking an already revoked or unknown session is not an error.
func (r *Repo) RevokeByHash(ctx context.Context, tokenHash string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	if _, err := querier.Exec(ctx, revokeByHashSQL, tokenHash, now); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	return nil
}

// RevokeAllByUser revokes every active session of a user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	if _, err := querier.Exec(ctx, revokeAllByUserSQL, userID, now); err != nil {
		return fmt.Errorf("revoke sessions for user %s: %w", userID, err)
	}

	return nil
}

// DeleteExpired removes sessions that expired before the cutoff.
// Revoked sessions stay until they expire. Returns the number of rows deleted.
func (r *Repo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteExpiredSQL, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	if err := row.Scan(&s.ID, &s.UserID, &s.TokenHash, &s.ExpiresAt, &s.CreatedAt, &s.RevokedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
