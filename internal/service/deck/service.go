// Package deck implements folder and card management for the
// authenticated user. Every operation resolves the user from context
// and only ever touches rows the user owns.
package deck

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// folderRepo defines the folder repository interface needed by deck service.
type folderRepo interface {
	Create(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Folder, error)
	GetByID(ctx context.Context, ownerID, folderID uuid.UUID) (*domain.Folder, error)
	GetByName(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Folder, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Folder, error)
	Rename(ctx context.Context, ownerID, folderID uuid.UUID, name string) (*domain.Folder, error)
	Delete(ctx context.Context, ownerID, folderID uuid.UUID) error
}

// cardRepo defines the card repository interface needed by deck service.
type cardRepo interface {
	Create(ctx context.Context, ownerID, folderID uuid.UUID, question, answer string) (*domain.Card, error)
	GetByID(ctx context.Context, ownerID, cardID uuid.UUID) (*domain.Card, error)
	ListByFolder(ctx context.Context, ownerID, folderID uuid.UUID) ([]domain.Card, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Card, error)
	Update(ctx context.Context, ownerID, cardID uuid.UUID, patch domain.CardPatch) (*domain.Card, error)
	Delete(ctx context.Context, ownerID, cardID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by deck service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides folder and card management operations.
type Service struct {
	folders folderRepo
	cards   cardRepo
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new Deck service.
func NewService(
	log *slog.Logger,
	folders folderRepo,
	cards cardRepo,
	tx txManager,
) *Service {
	return &Service{
		folders: folders,
		cards:   cards,
		tx:      tx,
		log:     log.With("service", "deck"),
	}
}
