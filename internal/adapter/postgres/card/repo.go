// Package card implements the Card repository using PostgreSQL.
// Ownership is enforced inside each query through a join against the
// folders table, so a card in another user's folder surfaces as
// domain.ErrNotFound rather than leaking its existence.
package card

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new card repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const cardColumns = `c.id, c.folder_id, c.question, c.answer,
	c.first_reviewed, c.second_reviewed, c.last_reviewed,
	c.last_reviewed_at, c.created_at, c.updated_at`

const createSQL = `
INSERT INTO cards (id, folder_id, question, answer,
	first_reviewed, second_reviewed, last_reviewed,
	last_reviewed_at, created_at, updated_at)
SELECT $1, f.id, $3, $4, false, false, false, NULL, $5, $5
FROM folders f
WHERE f.id = $2 AND f.owner_id = $6
RETURNING id, folder_id, question, answer,
	first_reviewed, second_reviewed, last_reviewed,
	last_reviewed_at, created_at, updated_at`

const getByIDSQL = `
SELECT ` + cardColumns + `
FROM cards c
JOIN folders f ON f.id = c.folder_id
WHERE c.id = $1 AND f.owner_id = $2`

const listByFolderSQL = `
SELECT ` + cardColumns + `
FROM cards c
JOIN folders f ON f.id = c.folder_id
WHERE c.folder_id = $1 AND f.owner_id = $2
ORDER BY c.created_at, c.id`

const listByOwnerSQL = `
SELECT ` + cardColumns + `
FROM cards c
JOIN folders f ON f.id = c.folder_id
WHERE f.owner_id = $1
ORDER BY c.created_at, c.id`

const deleteSQL = `
DELETE FROM cards c
USING folders f
WHERE f.id = c.folder_id AND c.id = $1 AND f.owner_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a card whose folder belongs to the given owner.
func (r *Repo) GetByID(ctx context.Context, ownerID, cardID uuid.UUID) (*domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCard(querier.QueryRow(ctx, getByIDSQL, cardID, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}

	return c, nil
}

// ListByFolder returns the cards of one folder in stable insertion order.
// A folder owned by someone else yields an empty list, the same as an
// empty folder; callers that need to distinguish check the folder first.
func (r *Repo) ListByFolder(ctx context.Context, ownerID, folderID uuid.UUID) ([]domain.Card, error) {
	return r.list(ctx, listByFolderSQL, folderID, ownerID)
}

// ListByOwner returns every card across all of the user's folders.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Card, error) {
	return r.list(ctx, listByOwnerSQL, ownerID)
}

func (r *Repo) list(ctx context.Context, query string, args ...any) ([]domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		var c domain.Card
		if err := rows.Scan(
			&c.ID, &c.FolderID, &c.Question, &c.Answer,
			&c.FirstReviewed, &c.SecondReviewed, &c.LastReviewed,
			&c.LastReviewedAt, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}

	if cards == nil {
		cards = []domain.Card{}
	}

	return cards, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a card into one of the owner's folders. The INSERT
// selects from folders, so a foreign or missing folder inserts zero
// rows and comes back as domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, ownerID, folderID uuid.UUID, question, answer string) (*domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	c, err := scanCard(querier.QueryRow(ctx, createSQL, id, folderID, question, answer, now, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "folder", folderID)
	}

	return c, nil
}

// Update applies a partial patch to a card. Only the fields set in the
// patch are written; updated_at always moves, and last_reviewed_at is
// stamped when the patch marks the card mastered. Setting last_reviewed
// back to false leaves last_reviewed_at untouched.
func (r *Repo) Update(ctx context.Context, ownerID, cardID uuid.UUID, patch domain.CardPatch) (*domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	builder := sq.Update("cards c").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", now)

	if patch.Question != nil {
		builder = builder.Set("question", *patch.Question)
	}
	if patch.Answer != nil {
		builder = builder.Set("answer", *patch.Answer)
	}
	if patch.FirstReviewed != nil {
		builder = builder.Set("first_reviewed", *patch.FirstReviewed)
	}
	if patch.SecondReviewed != nil {
		builder = builder.Set("second_reviewed", *patch.SecondReviewed)
	}
	if patch.LastReviewed != nil {
		builder = builder.Set("last_reviewed", *patch.LastReviewed)
	}
	if patch.MarksMastered() {
		builder = builder.Set("last_reviewed_at", now)
	}

	builder = builder.
		From("folders f").
		Where(sq.Expr("f.id = c.folder_id")).
		Where(sq.Eq{"c.id": cardID, "f.owner_id": ownerID}).
		Suffix("RETURNING " + cardColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	c, err := scanCard(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}

	return c, nil
}

// Delete removes a card from one of the owner's folders.
// Returns domain.ErrNotFound if the card does not exist or its folder
// belongs to another user.
func (r *Repo) Delete(ctx context.Context, ownerID, cardID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, cardID, ownerID)
	if err != nil {
		return postgres.MapError(err, "card", cardID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanCard(row pgx.Row) (*domain.Card, error) {
	var c domain.Card
	if err := row.Scan(
		&c.ID, &c.FolderID, &c.Question, &c.Answer,
		&c.FirstReviewed, &c.SecondReviewed, &c.LastReviewed,
		&c.LastReviewedAt, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
