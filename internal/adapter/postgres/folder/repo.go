// Package folder implements the Folder repository using PostgreSQL.
// Every query is filtered by owner_id, so an absent folder and another
// user's folder are indistinguishable to callers: both come back as
// domain.ErrNotFound.
package folder

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

// Repo provides folder persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new folder repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const folderColumns = `id, name, owner_id, created_at, updated_at`

const createSQL = `
INSERT INTO folders (` + folderColumns + `)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + folderColumns

const getByIDSQL = `
SELECT ` + folderColumns + `
FROM folders
WHERE id = $1 AND owner_id = $2`

const getByNameSQL = `
SELECT ` + folderColumns + `
FROM folders
WHERE name = $1 AND owner_id = $2`

const listByOwnerSQL = `
SELECT ` + folderColumns + `
FROM folders
WHERE owner_id = $1
ORDER BY created_at, id`

const renameSQL = `
UPDATE folders
SET name = $3, updated_at = $4
WHERE id = $1 AND owner_id = $2
RETURNING ` + folderColumns

const deleteSQL = `
DELETE FROM folders
WHERE id = $1 AND owner_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a folder by primary key filtered by owner_id.
func (r *Repo) GetByID(ctx context.Context, ownerID, folderID uuid.UUID) (*domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	f, err := scanFolder(querier.QueryRow(ctx, getByIDSQL, folderID, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "folder", folderID)
	}

	return f, nil
}

// GetByName returns the owner's folder with the given name, if any.
func (r *Repo) GetByName(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	f, err := scanFolder(querier.QueryRow(ctx, getByNameSQL, name, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "folder", uuid.Nil)
	}

	return f, nil
}

// ListByOwner returns all folders of a user in stable insertion order.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var folders []domain.Folder
	for rows.Next() {
		var f domain.Folder
		if err := rows.Scan(&f.ID, &f.Name, &f.OwnerID, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	if folders == nil {
		folders = []domain.Folder{}
	}

	return folders, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new folder and returns the persisted domain.Folder.
func (r *Repo) Create(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	f, err := scanFolder(querier.QueryRow(ctx, createSQL, id, name, ownerID, now, now))
	if err != nil {
		return nil, postgres.MapError(err, "folder", id)
	}

	return f, nil
}

// Rename updates the folder name.
// Returns domain.ErrNotFound if the folder does not exist or belongs to another user.
func (r *Repo) Rename(ctx context.Context, ownerID, folderID uuid.UUID, name string) (*domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	f, err := scanFolder(querier.QueryRow(ctx, renameSQL, folderID, ownerID, name, now))
	if err != nil {
		return nil, postgres.MapError(err, "folder", folderID)
	}

	return f, nil
}

// Delete removes a folder; its cards go with it via ON DELETE CASCADE.
// Returns domain.ErrNotFound if the folder does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, ownerID, folderID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, folderID, ownerID)
	if err != nil {
		return postgres.MapError(err, "folder", folderID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanFolder(row pgx.Row) (*domain.Folder, error) {
	var f domain.Folder
	if err := row.Scan(&f.ID, &f.Name, &f.OwnerID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}
