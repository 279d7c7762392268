// Package dedupe tracks which item titles are already known within a batch.
package dedupe

import (
	"github.com/smartjects/importer/internal/entity"
)

// Classification is the dedup verdict for one incoming title.
type Classification int

const (
	New Classification = iota
	Exists
	Empty
)

// Tracker holds the normalized titles known so far. It is seeded once per
// batch from the store and only ever grows; same-batch duplicates are caught
// because every persisted title is recorded before the next row is
// classified. Not safe for concurrent use; the orchestrator owns it.
type Tracker struct {
	known map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{known: make(map[string]struct{})}
}

// Seed registers the titles already present in the store. Titles are
// normalized on the way in, so callers may pass raw or normalized forms.
func (t *Tracker) Seed(titles []string) {
	for _, title := range titles {
		if n := entity.NormalizedTitle(title); n != "" {
			t.known[n] = struct{}{}
		}
	}
}

// Classify normalizes title via trim+lowercase and reports whether it is
// empty, already known, or new.
func (t *Tracker) Classify(title string) Classification {
	n := entity.NormalizedTitle(title)
	if n == "" {
		return Empty
	}
	if _, ok := t.known[n]; ok {
		return Exists
	}
	return New
}

// Record marks a title as known. Call it after every successful persistence
// of a New title, before classifying the next row.
func (t *Tracker) Record(title string) {
	if n := entity.NormalizedTitle(title); n != "" {
		t.known[n] = struct{}{}
	}
}

// Len reports the number of tracked titles.
func (t *Tracker) Len() int {
	return len(t.known)
}
