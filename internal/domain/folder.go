package domain

import (
	"time"

	"github.com/google/uuid"
)

// Folder is a study deck owned by exactly one user.
// Folder names are unique per owner; the check is performed by the deck
// service inside the create transaction, not by a storage constraint.
type Folder struct {
	ID        uuid.UUID
	Name      string
	OwnerID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
