package entity

import "github.com/google/uuid"

// Reference represents one canonical entry of a reference vocabulary.
// Names are unique case-insensitively within a vocabulary; a loaded snapshot
// is immutable for the duration of a batch.
type Reference struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
