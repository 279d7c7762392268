package logos_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/smartjects/importer/internal/entity"
	"github.com/smartjects/importer/internal/logos"
)

type fakeItemStore struct {
	items   []*entity.Item
	updated map[uuid.UUID]string
	failFor uuid.UUID
}

func (s *fakeItemStore) ListItems(context.Context) ([]*entity.Item, error) {
	return s.items, nil
}

func (s *fakeItemStore) UpdateItemLogo(_ context.Context, id uuid.UUID, assetURL string) error {
	if id == s.failFor {
		return errors.New("update refused")
	}
	if s.updated == nil {
		s.updated = make(map[uuid.UUID]string)
	}
	s.updated[id] = assetURL
	return nil
}

func strPtr(s string) *string { return &s }

func TestRelinkUpdatesStaleLogos(t *testing.T) {
	t.Parallel()

	registry := logos.NewRegistry(map[string]string{
		"Stanford University": "https://cdn.example.com/stanford.png",
		"ETH Zurich":          "https://cdn.example.com/eth.png",
	}, nil)

	stale := &entity.Item{ID: uuid.New(), Title: "A", Team: []string{"Stanford University"}, ImageURL: strPtr("https://old.example.com/x.png")}
	correct := &entity.Item{ID: uuid.New(), Title: "B", Team: []string{"ETH Zurich"}, ImageURL: strPtr("https://cdn.example.com/eth.png")}
	missing := &entity.Item{ID: uuid.New(), Title: "C", Team: []string{"Stanford University"}}
	noTeam := &entity.Item{ID: uuid.New(), Title: "D"}
	unknown := &entity.Item{ID: uuid.New(), Title: "E", Team: []string{"Unknown Lab Somewhere"}}
	store := &fakeItemStore{items: []*entity.Item{stale, correct, missing, noTeam, unknown}}

	stats, err := logos.Relink(context.Background(), store, registry, false, nil)
	require.NoError(t, err)

	require.Equal(t, 5, stats.Total)
	require.Equal(t, 4, stats.WithTeams)
	require.Equal(t, 3, stats.FoundMatches)
	require.Equal(t, 1, stats.AlreadyCorrect)
	require.Equal(t, 2, stats.Updated)
	require.Zero(t, stats.Errors)

	require.Equal(t, "https://cdn.example.com/stanford.png", store.updated[stale.ID])
	require.Equal(t, "https://cdn.example.com/stanford.png", store.updated[missing.ID])
	require.NotContains(t, store.updated, correct.ID)
}

func TestRelinkDryRunWritesNothing(t *testing.T) {
	t.Parallel()

	registry := logos.NewRegistry(map[string]string{
		"Stanford University": "https://cdn.example.com/stanford.png",
	}, nil)
	item := &entity.Item{ID: uuid.New(), Title: "A", Team: []string{"Stanford University"}}
	store := &fakeItemStore{items: []*entity.Item{item}}

	stats, err := logos.Relink(context.Background(), store, registry, true, nil)
	require.NoError(t, err)
	require.Equal(t, 1, stats.FoundMatches)
	require.Zero(t, stats.Updated)
	require.Empty(t, store.updated)
}

func TestRelinkCountsUpdateFailures(t *testing.T) {
	t.Parallel()

	registry := logos.NewRegistry(map[string]string{
		"Stanford University": "https://cdn.example.com/stanford.png",
	}, nil)
	broken := &entity.Item{ID: uuid.New(), Title: "A", Team: []string{"Stanford University"}}
	fine := &entity.Item{ID: uuid.New(), Title: "B", Team: []string{"Stanford University"}}
	store := &fakeItemStore{items: []*entity.Item{broken, fine}, failFor: broken.ID}

	stats, err := logos.Relink(context.Background(), store, registry, false, nil)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Errors)
	require.Equal(t, 1, stats.Updated)
	require.Equal(t, "https://cdn.example.com/stanford.png", store.updated[fine.ID])
}
