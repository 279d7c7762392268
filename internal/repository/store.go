package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smartjects/importer/constants"
	"github.com/smartjects/importer/gen/ent"
	"github.com/smartjects/importer/internal/batch"
	"github.com/smartjects/importer/internal/entity"
	"github.com/smartjects/importer/internal/logos"
)

// ImportStore bundles the per-aggregate repositories behind the surfaces the
// batch orchestrator, the strict synchronizer, and the logo relinker expect.
type ImportStore struct {
	Refs  ReferenceRepository
	Items ItemRepository
	Teams TeamRepository
}

func NewImportStore(client *ent.Client, logger *slog.Logger) *ImportStore {
	return &ImportStore{
		Refs:  NewReferenceRepository(client, logger),
		Items: NewItemRepository(client, logger),
		Teams: NewTeamRepository(client, logger),
	}
}

// batch.Store

func (s *ImportStore) ListReferences(ctx context.Context, kind constants.CategoryKind) ([]entity.Reference, error) {
	return s.Refs.List(ctx, kind)
}

func (s *ImportStore) ListTitles(ctx context.Context) ([]string, error) {
	return s.Items.ListTitles(ctx)
}

func (s *ImportStore) InsertItem(ctx context.Context, it *entity.Item) (uuid.UUID, error) {
	return s.Items.Insert(ctx, it)
}

func (s *ImportStore) AttachReferences(ctx context.Context, itemID uuid.UUID, kind constants.CategoryKind, refIDs []uuid.UUID) error {
	return s.Items.AttachReferences(ctx, itemID, kind, refIDs)
}

func (s *ImportStore) SyncTeams(ctx context.Context) (batch.TeamSyncStats, error) {
	return s.Teams.SyncAll(ctx)
}

// batch.SyncStore

func (s *ImportStore) GetOrCreateReference(ctx context.Context, kind constants.CategoryKind, name string) (*entity.Reference, bool, error) {
	return s.Refs.GetOrCreate(ctx, kind, name)
}

func (s *ImportStore) ListItemIndex(ctx context.Context) (map[string]uuid.UUID, error) {
	return s.Items.ListIndex(ctx)
}

func (s *ImportStore) CreateItem(ctx context.Context, it *entity.Item) error {
	return s.Items.Create(ctx, it)
}

func (s *ImportStore) UpdateItem(ctx context.Context, id uuid.UUID, it *entity.Item) error {
	return s.Items.Update(ctx, id, it)
}

func (s *ImportStore) ReplaceReferences(ctx context.Context, itemID uuid.UUID, kind constants.CategoryKind, refIDs []uuid.UUID) error {
	return s.Items.ReplaceReferences(ctx, itemID, kind, refIDs)
}

func (s *ImportStore) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return s.Items.Delete(ctx, id)
}

// logos.ItemStore

func (s *ImportStore) ListItems(ctx context.Context) ([]*entity.Item, error) {
	return s.Items.ListItems(ctx)
}

func (s *ImportStore) UpdateItemLogo(ctx context.Context, id uuid.UUID, assetURL string) error {
	return s.Items.UpdateLogo(ctx, id, assetURL)
}

var (
	_ batch.Store     = (*ImportStore)(nil)
	_ batch.SyncStore = (*ImportStore)(nil)
	_ logos.ItemStore = (*ImportStore)(nil)
)
