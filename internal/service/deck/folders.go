package deck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

// ListFolders returns all folders of the authenticated user in creation order.
func (s *Service) ListFolders(ctx context.Context) ([]domain.Folder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	folders, err := s.folders.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("deck.ListFolders: %w", err)
	}

	return folders, nil
}

// CreateFolder creates a new folder for the authenticated user.
// Folder names are unique per user; a taken name returns ErrAlreadyExists.
func (s *Service) CreateFolder(ctx context.Context, input CreateFolderInput) (*domain.Folder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	var folder *domain.Folder
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, err := s.folders.GetByName(txCtx, userID, name)
		if err == nil {
			return fmt.Errorf("folder %q: %w", name, domain.ErrAlreadyExists)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check folder name: %w", err)
		}

		folder, err = s.folders.Create(txCtx, userID, name)
		if err != nil {
			return fmt.Errorf("create folder: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("deck.CreateFolder: %w", err)
	}

	s.log.InfoContext(ctx, "folder created",
		slog.String("user_id", userID.String()),
		slog.String("folder_id", folder.ID.String()),
	)

	return folder, nil
}

// RenameFolder changes a folder's name.
// Returns ErrNotFound if the folder does not exist or belongs to another user.
func (s *Service) RenameFolder(ctx context.Context, input UpdateFolderInput) (*domain.Folder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	var folder *domain.Folder
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.folders.GetByName(txCtx, userID, name)
		if err == nil && existing.ID != input.FolderID {
			return fmt.Errorf("folder %q: %w", name, domain.ErrAlreadyExists)
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check folder name: %w", err)
		}

		folder, err = s.folders.Rename(txCtx, userID, input.FolderID, name)
		if err != nil {
			return fmt.Errorf("rename folder: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("deck.RenameFolder: %w", err)
	}

	s.log.InfoContext(ctx, "folder renamed",
		slog.String("user_id", userID.String()),
		slog.String("folder_id", folder.ID.String()),
	)

	return folder, nil
}

// DeleteFolder removes a folder and every card inside it.
// Returns ErrNotFound if the folder does not exist or belongs to another user.
func (s *Service) DeleteFolder(ctx context.Context, input DeleteFolderInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.folders.Delete(ctx, userID, input.FolderID); err != nil {
		return fmt.Errorf("deck.DeleteFolder: %w", err)
	}

	s.log.InfoContext(ctx, "folder deleted",
		slog.String("user_id", userID.String()),
		slog.String("folder_id", input.FolderID.String()),
	)

	return nil
}
