package batch_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/smartjects/importer/constants"
	"github.com/smartjects/importer/internal/batch"
	"github.com/smartjects/importer/internal/entity"
)

func newSynchronizer(s *fakeStore, opts batch.SyncOptions) *batch.Synchronizer {
	return batch.NewSynchronizer(s, opts, nil)
}

func TestSyncCreatesAndUpdatesByTitle(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	existing := &entity.Item{ID: uuid.New(), Title: "Known Project"}
	require.NoError(t, store.CreateItem(context.Background(), existing))
	store.updates = 0

	stats, err := newSynchronizer(store, batch.SyncOptions{}).Run(context.Background(), []entity.Row{
		{Title: "known project", Mission: "updated mission"},
		{Title: "Brand New Project"},
	})
	require.NoError(t, err)

	require.Equal(t, 2, stats.TotalRows)
	require.Equal(t, 2, stats.Valid)
	require.Equal(t, 1, stats.Created)
	require.Equal(t, 1, stats.Updated)
	require.Empty(t, stats.Errors)

	require.Equal(t, 1, store.updates)
	require.Equal(t, "updated mission", store.items[existing.ID].Mission)
	require.Len(t, store.items, 2)
}

func TestSyncDryRunWritesNothing(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	require.NoError(t, store.CreateItem(context.Background(), &entity.Item{ID: uuid.New(), Title: "Known Project"}))

	stats, err := newSynchronizer(store, batch.SyncOptions{DryRun: true}).Run(context.Background(), []entity.Row{
		{Title: "Known Project"},
		{Title: "Brand New Project", Audience: `["Researchers"]`},
	})
	require.NoError(t, err)

	require.Equal(t, 2, stats.Valid)
	require.Equal(t, 1, stats.Created)
	require.Equal(t, 1, stats.Updated)
	require.Len(t, store.items, 1)
	require.Empty(t, store.createdRefs)
}

func TestSyncRejectsMalformedAudienceArray(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	stats, err := newSynchronizer(store, batch.SyncOptions{}).Run(context.Background(), []entity.Row{
		{Title: "Project X", Audience: `["Researchers", 42]`},
		{Title: "Project Y", Audience: "researchers and clinicians"},
	})
	require.NoError(t, err)

	require.Equal(t, 1, stats.InvalidFormat)
	require.Equal(t, 1, stats.Skipped)
	require.Equal(t, 1, stats.Valid)
	require.Len(t, store.items, 1)

	// The prose row passed, with its audience persisted as a JSON list.
	for _, it := range store.items {
		require.Equal(t, "Project Y", it.Title)
		require.JSONEq(t, `["researchers","clinicians"]`, it.Audience)
	}
}

func TestSyncUnclosedBracketIsProse(t *testing.T) {
	t.Parallel()

	// Only a cell bracketed on both ends takes the JSON branch; a missing
	// closing bracket falls through to prose parsing.
	store := newFakeStore()
	stats, err := newSynchronizer(store, batch.SyncOptions{}).Run(context.Background(), []entity.Row{
		{Title: "Project X", Audience: "[researchers and clinicians"},
	})
	require.NoError(t, err)

	require.Zero(t, stats.InvalidFormat)
	require.Equal(t, 1, stats.Valid)
	require.Len(t, store.items, 1)
}

func TestSyncLenientAudienceFallsBackToEmpty(t *testing.T) {
	t.Parallel()

	// An explicitly empty StrictFields map makes every field lenient, so a
	// malformed audience array degrades to no tokens instead of a skip.
	store := newFakeStore()
	opts := batch.SyncOptions{StrictFields: map[constants.Field]bool{}}
	stats, err := newSynchronizer(store, opts).Run(context.Background(), []entity.Row{
		{Title: "Project X", Audience: `["Researchers", 42]`},
	})
	require.NoError(t, err)

	require.Zero(t, stats.InvalidFormat)
	require.Zero(t, stats.Skipped)
	require.Equal(t, 1, stats.Valid)
	require.Len(t, store.items, 1)
	require.Zero(t, store.createdRefs[constants.KindAudience])

	for _, it := range store.items {
		require.Equal(t, "null", it.Audience)
	}
}

func TestSyncLenientIndustriesFallBackToEmpty(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	stats, err := newSynchronizer(store, batch.SyncOptions{}).Run(context.Background(), []entity.Row{
		{Title: "Project X", Industries: "healthcare, finance"},
	})
	require.NoError(t, err)

	require.Equal(t, 1, stats.Valid)
	require.Zero(t, stats.InvalidFormat)
	require.Zero(t, store.createdRefs[constants.KindIndustry])
}

func TestSyncStrictIndustriesSkipRow(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	opts := batch.SyncOptions{
		StrictFields: map[constants.Field]bool{
			constants.FieldAudience:   true,
			constants.FieldIndustries: true,
		},
	}
	stats, err := newSynchronizer(store, opts).Run(context.Background(), []entity.Row{
		{Title: "Project X", Industries: "healthcare, finance"},
	})
	require.NoError(t, err)

	require.Equal(t, 1, stats.InvalidFormat)
	require.Equal(t, 1, stats.Skipped)
	require.Empty(t, store.items)
}

func TestSyncCreatesMissingReferences(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.addRef(constants.KindIndustry, "Healthcare")

	stats, err := newSynchronizer(store, batch.SyncOptions{}).Run(context.Background(), []entity.Row{
		{
			Title:      "Project X",
			Industries: `["Healthcare", "Quantum Farming"]`,
			Audience:   `["Researchers"]`,
		},
	})
	require.NoError(t, err)

	require.Equal(t, 1, stats.Valid)
	require.Equal(t, 1, stats.NewReferences[constants.KindIndustry])
	require.Equal(t, 1, stats.NewReferences[constants.KindAudience])

	var itemID uuid.UUID
	for id := range store.items {
		itemID = id
	}
	require.Len(t, store.replaced[itemID][constants.KindIndustry], 2)
	require.Len(t, store.replaced[itemID][constants.KindAudience], 1)
}

func TestSyncHonorsLimit(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	stats, err := newSynchronizer(store, batch.SyncOptions{Limit: 2}).Run(context.Background(), []entity.Row{
		{Title: "A1"}, {Title: "A2"}, {Title: "A3"}, {Title: "A4"},
	})
	require.NoError(t, err)

	require.Equal(t, 4, stats.TotalRows)
	require.Equal(t, 2, stats.Valid)
	require.Len(t, store.items, 2)
}

func TestSyncSkipsEmptyTitles(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	stats, err := newSynchronizer(store, batch.SyncOptions{}).Run(context.Background(), []entity.Row{
		{Title: ""},
		{Title: "Project X"},
	})
	require.NoError(t, err)

	require.Equal(t, 1, stats.Skipped)
	require.Equal(t, 1, stats.Valid)
	require.Len(t, store.items, 1)
}
