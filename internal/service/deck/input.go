package deck

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// CreateFolderInput holds the parameters for creating a folder.
type CreateFolderInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateFolderInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateFolderInput holds the parameters for renaming a folder.
type UpdateFolderInput struct {
	FolderID uuid.UUID
	Name     string
}

// Validate checks all fields and collects all errors.
func (i UpdateFolderInput) Validate() error {
	var errs []domain.FieldError

	if i.FolderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteFolderInput holds the parameters for deleting a folder.
type DeleteFolderInput struct {
	FolderID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteFolderInput) Validate() error {
	if i.FolderID == uuid.Nil {
		return domain.NewValidationError("folder_id", "required")
	}
	return nil
}

// GetCardsInput selects which cards to return. At most one of CardID and
// FolderID may be set; with neither set the whole collection is returned.
type GetCardsInput struct {
	CardID   *uuid.UUID
	FolderID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetCardsInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID != nil && i.FolderID != nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "card_id and folder_id are mutually exclusive"})
	}
	if i.CardID != nil && *i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.FolderID != nil && *i.FolderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateCardInput holds the parameters for creating a card.
type CreateCardInput struct {
	FolderID uuid.UUID
	Question string
	Answer   string
}

// Validate checks all fields and collects all errors.
func (i CreateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.FolderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}
	if strings.TrimSpace(i.Question) == "" {
		errs = append(errs, domain.FieldError{Field: "question", Message: "required"})
	}
	if strings.TrimSpace(i.Answer) == "" {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "required"})
	}
	if len(i.Question) > 10000 {
		errs = append(errs, domain.FieldError{Field: "question", Message: "too long"})
	}
	if len(i.Answer) > 10000 {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCardInput holds the parameters for a partial card update.
// Nil fields are left unchanged.
type UpdateCardInput struct {
	CardID         uuid.UUID
	Question       *string
	Answer         *string
	FirstReviewed  *bool
	SecondReviewed *bool
	LastReviewed   *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.Patch().IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Question != nil && strings.TrimSpace(*i.Question) == "" {
		errs = append(errs, domain.FieldError{Field: "question", Message: "required"})
	}
	if i.Answer != nil && strings.TrimSpace(*i.Answer) == "" {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "required"})
	}
	if i.Question != nil && len(*i.Question) > 10000 {
		errs = append(errs, domain.FieldError{Field: "question", Message: "too long"})
	}
	if i.Answer != nil && len(*i.Answer) > 10000 {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Patch converts the input into a domain.CardPatch.
func (i UpdateCardInput) Patch() domain.CardPatch {
	return domain.CardPatch{
		Question:       i.Question,
		Answer:         i.Answer,
		FirstReviewed:  i.FirstReviewed,
		SecondReviewed: i.SecondReviewed,
		LastReviewed:   i.LastReviewed,
	}
}

// DeleteCardInput holds the parameters for deleting a card.
type DeleteCardInput struct {
	CardID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteCardInput) Validate() error {
	if i.CardID == uuid.Nil {
		return domain.NewValidationError("card_id", "required")
	}
	return nil
}
