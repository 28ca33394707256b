package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is a question/answer pair inside a folder. The three review flags
// form a permissive lifecycle (Unreviewed → FirstPass → SecondPass →
// Mastered): clients may set them in any order and the server does not
// enforce transitions between them.
type Card struct {
	ID             uuid.UUID
	FolderID       uuid.UUID
	Question       string
	Answer         string
	FirstReviewed  bool
	SecondReviewed bool
	LastReviewed   bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastReviewedAt *time.Time
}

// Mastered returns true once the final review flag is set.
func (c *Card) Mastered() bool {
	return c.LastReviewed
}

// CardPatch describes a partial card update. Nil fields are left untouched.
type CardPatch struct {
	Question       *string
	Answer         *string
	FirstReviewed  *bool
	SecondReviewed *bool
	LastReviewed   *bool
}

// IsEmpty returns true when the patch contains no changes.
func (p CardPatch) IsEmpty() bool {
	return p.Question == nil && p.Answer == nil &&
		p.FirstReviewed == nil && p.SecondReviewed == nil && p.LastReviewed == nil
}

// MarksMastered returns true when the patch sets last_reviewed to true,
// which is the only transition that stamps LastReviewedAt. Setting the flag
// back to false leaves the timestamp in place.
func (p CardPatch) MarksMastered() bool {
	return p.LastReviewed != nil && *p.LastReviewed
}
