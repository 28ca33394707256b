package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/internal/service/deck"
)

// cardService defines the minimal interface needed by CardHandler.
type cardService interface {
	GetCards(ctx context.Context, input deck.GetCardsInput) ([]domain.Card, error)
	CreateCard(ctx context.Context, input deck.CreateCardInput) (*domain.Card, error)
	UpdateCard(ctx context.Context, input deck.UpdateCardInput) (*domain.Card, error)
	DeleteCard(ctx context.Context, input deck.DeleteCardInput) error
}

// CardHandler serves card REST endpoints.
type CardHandler struct {
	svc cardService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "card")}
}

type createCardRequest struct {
	FolderID string `json:"folder_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type updateCardRequest struct {
	CardID         string  `json:"card_id"`
	Question       *string `json:"question"`
	Answer         *string `json:"answer"`
	FirstReviewed  *bool   `json:"first_reviewed"`
	SecondReviewed *bool   `json:"second_reviewed"`
	LastReviewed   *bool   `json:"last_reviewed"`
}

type deleteCardRequest struct {
	CardID string `json:"card_id"`
}

type cardResponse struct {
	ID             string     `json:"id"`
	FolderID       string     `json:"folder_id"`
	Question       string     `json:"question"`
	Answer         string     `json:"answer"`
	FirstReviewed  bool       `json:"first_reviewed"`
	SecondReviewed bool       `json:"second_reviewed"`
	LastReviewed   bool       `json:"last_reviewed"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Get handles GET /cards/get_cards. Dispatch follows the query string:
// card_id selects one card, folder_id selects a folder's cards, and with
// neither set every card owned by the caller is returned.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	var input deck.GetCardsInput

	if raw := r.URL.Query().Get("card_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid card_id")
			return
		}
		input.CardID = &id
	}
	if raw := r.URL.Query().Get("folder_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid folder_id")
			return
		}
		input.FolderID = &id
	}

	cards, err := h.svc.GetCards(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	// A card_id lookup returns a single object, not a one-element list.
	if input.CardID != nil {
		writeJSON(w, http.StatusOK, toCardResponse(&cards[0]))
		return
	}

	resp := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		resp = append(resp, toCardResponse(&c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /cards/create_card.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folderID, err := uuid.Parse(req.FolderID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid folder_id")
		return
	}

	card, err := h.svc.CreateCard(r.Context(), deck.CreateCardInput{
		FolderID: folderID,
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "card created successfully",
		"card":    toCardResponse(card),
	})
}

// Update handles PUT /cards/update_card. Absent fields are left untouched.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cardID, err := uuid.Parse(req.CardID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card_id")
		return
	}

	card, err := h.svc.UpdateCard(r.Context(), deck.UpdateCardInput{
		CardID:         cardID,
		Question:       req.Question,
		Answer:         req.Answer,
		FirstReviewed:  req.FirstReviewed,
		SecondReviewed: req.SecondReviewed,
		LastReviewed:   req.LastReviewed,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "card updated successfully",
		"card":    toCardResponse(card),
	})
}

// Delete handles DELETE /cards/delete_card.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cardID, err := uuid.Parse(req.CardID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card_id")
		return
	}

	if err := h.svc.DeleteCard(r.Context(), deck.DeleteCardInput{CardID: cardID}); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "card deleted successfully",
		"card_id": cardID.String(),
	})
}

func (h *CardHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleServiceError(w, r, h.log, err)
}

func toCardResponse(c *domain.Card) cardResponse {
	return cardResponse{
		ID:             c.ID.String(),
		FolderID:       c.FolderID.String(),
		Question:       c.Question,
		Answer:         c.Answer,
		FirstReviewed:  c.FirstReviewed,
		SecondReviewed: c.SecondReviewed,
		LastReviewed:   c.LastReviewed,
		LastReviewedAt: c.LastReviewedAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
