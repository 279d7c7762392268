package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item represents one smartject for data transfer between layers.
type Item struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Mission      string    `json:"mission"`
	Problematics string    `json:"problematics"`
	Scope        string    `json:"scope"`
	Audience     string    `json:"audience"` // raw audience cell, JSON-encoded list after strict sync
	HowItWorks   string    `json:"how_it_works"`
	Architecture string    `json:"architecture"`
	Innovation   string    `json:"innovation"`
	UseCase      string    `json:"use_case"`
	ImageURL     *string   `json:"image_url,omitempty"`
	Team         []string  `json:"team"`
	Link         string    `json:"link"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizedTitle is the deduplication key for an item title.
func NormalizedTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
