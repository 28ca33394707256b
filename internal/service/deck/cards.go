package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

// GetCards returns cards selected by the input: a single card by ID, the
// contents of one folder, or every card the user owns.
func (s *Service) GetCards(ctx context.Context, input GetCardsInput) ([]domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	switch {
	case input.CardID != nil:
		card, err := s.cards.GetByID(ctx, userID, *input.CardID)
		if err != nil {
			return nil, fmt.Errorf("deck.GetCards: %w", err)
		}
		return []domain.Card{*card}, nil

	case input.FolderID != nil:
		// Resolve the folder first so a missing or foreign folder is
		// reported as not found instead of an empty list.
		if _, err := s.folders.GetByID(ctx, userID, *input.FolderID); err != nil {
			return nil, fmt.Errorf("deck.GetCards: %w", err)
		}
		cards, err := s.cards.ListByFolder(ctx, userID, *input.FolderID)
		if err != nil {
			return nil, fmt.Errorf("deck.GetCards: %w", err)
		}
		return cards, nil

	default:
		cards, err := s.cards.ListByOwner(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("deck.GetCards: %w", err)
		}
		return cards, nil
	}
}

// CreateCard adds a card to one of the user's folders.
// Returns ErrNotFound if the folder does not exist or belongs to another user.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	question := strings.TrimSpace(input.Question)
	answer := strings.TrimSpace(input.Answer)

	card, err := s.cards.Create(ctx, userID, input.FolderID, question, answer)
	if err != nil {
		return nil, fmt.Errorf("deck.CreateCard: %w", err)
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
		slog.String("folder_id", card.FolderID.String()),
	)

	return card, nil
}

// UpdateCard applies a partial update to a card: question and answer text
// or any of the three review flags. Marking the card mastered stamps
// LastReviewedAt; unmarking it leaves the timestamp in place.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (*domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.cards.Update(ctx, userID, input.CardID, input.Patch())
	if err != nil {
		return nil, fmt.Errorf("deck.UpdateCard: %w", err)
	}

	s.log.InfoContext(ctx, "card updated",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
	)

	return card, nil
}

// DeleteCard removes a card.
// Returns ErrNotFound if the card does not exist or belongs to another user.
func (s *Service) DeleteCard(ctx context.Context, input DeleteCardInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, userID, input.CardID); err != nil {
		return fmt.Errorf("deck.DeleteCard: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
	)

	return nil
}
