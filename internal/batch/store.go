package batch

import (
	"context"

	"github.com/google/uuid"

	"github.com/smartjects/importer/constants"
	"github.com/smartjects/importer/internal/entity"
)

// Store is the persistence surface one batch run depends on. The repository
// package provides the ent-backed implementation; tests use in-memory fakes.
// No consistency guarantee beyond last-write-wins per row is assumed.
type Store interface {
	// ListReferences returns the full reference vocabulary for kind,
	// paginating internally. Loaded once per batch as an immutable snapshot.
	ListReferences(ctx context.Context, kind constants.CategoryKind) ([]entity.Reference, error)

	// ListTitles returns every persisted item title (raw form).
	ListTitles(ctx context.Context) ([]string, error)

	// InsertItem persists a new item, returning the stored id. When an item
	// with the same title already exists the existing id is returned.
	InsertItem(ctx context.Context, item *entity.Item) (uuid.UUID, error)

	// AttachReferences links an item to canonical entries of one vocabulary,
	// probing for existing relations first; duplicates are not errors.
	AttachReferences(ctx context.Context, itemID uuid.UUID, kind constants.CategoryKind, refIDs []uuid.UUID) error

	// SyncTeams rebuilds the organization<->item relations from all
	// persisted items. Idempotent; safe to re-run.
	SyncTeams(ctx context.Context) (TeamSyncStats, error)
}

// TeamSyncStats summarizes the consolidated end-of-batch team pass.
type TeamSyncStats struct {
	NewTeams     int
	NewRelations int
	Errors       int
}
