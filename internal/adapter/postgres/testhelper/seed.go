package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user with a placeholder password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$test-hash-" + suffix,
		Name:         "Test User " + suffix,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.PasswordHash, user.Name, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedFolder creates a folder for the given owner. Returns a filled domain.Folder.
func SeedFolder(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Folder {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	folder := domain.Folder{
		ID:        uuid.New(),
		Name:      "Folder " + suffix,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO folders (id, name, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		folder.ID, folder.Name, folder.OwnerID, folder.CreatedAt, folder.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFolder insert folder: %v", err)
	}

	return folder
}

// SeedCard creates an unreviewed card in the given folder. Returns a filled domain.Card.
func SeedCard(t *testing.T, pool *pgxpool.Pool, folderID uuid.UUID) domain.Card {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.Card{
		ID:        uuid.New(),
		FolderID:  folderID,
		Question:  "Question " + suffix,
		Answer:    "Answer " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO cards (id, folder_id, question, answer,
			first_reviewed, second_reviewed, last_reviewed,
			last_reviewed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, false, false, false, NULL, $5, $5)`,
		card.ID, card.FolderID, card.Question, card.Answer, card.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard insert card: %v", err)
	}

	return card
}

// SeedSession creates an active session for the given user.
// Returns a filled domain.Session.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, tokenHash string) domain.Session {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	session := domain.Session{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: now.Add(24 * time.Hour),
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO sessions (id, user_id, token_hash, expires_at, created_at, revoked_at)
		 VALUES ($1, $2, $3, $4, $5, NULL)`,
		session.ID, session.UserID, session.TokenHash, session.ExpiresAt, session.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert session: %v", err)
	}

	return session
}
