package batch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/smartjects/importer/constants"
	"github.com/smartjects/importer/internal/batch"
	"github.com/smartjects/importer/internal/entity"
	"github.com/smartjects/importer/internal/logos"
	"github.com/smartjects/importer/internal/reconcile"
	"github.com/smartjects/importer/internal/rows"
)

// fakeStore is an in-memory batch.Store and batch.SyncStore.
type fakeStore struct {
	refs     map[constants.CategoryKind][]entity.Reference
	titles   []string
	items    map[uuid.UUID]*entity.Item
	attached map[uuid.UUID]map[constants.CategoryKind][]uuid.UUID
	replaced map[uuid.UUID]map[constants.CategoryKind][]uuid.UUID

	insertErrFor string
	teamSyncs    int
	createdRefs  map[constants.CategoryKind]int
	updates      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		refs:        make(map[constants.CategoryKind][]entity.Reference),
		items:       make(map[uuid.UUID]*entity.Item),
		attached:    make(map[uuid.UUID]map[constants.CategoryKind][]uuid.UUID),
		replaced:    make(map[uuid.UUID]map[constants.CategoryKind][]uuid.UUID),
		createdRefs: make(map[constants.CategoryKind]int),
	}
}

func (s *fakeStore) addRef(kind constants.CategoryKind, name string) entity.Reference {
	ref := entity.Reference{ID: uuid.New(), Name: name}
	s.refs[kind] = append(s.refs[kind], ref)
	return ref
}

func (s *fakeStore) ListReferences(_ context.Context, kind constants.CategoryKind) ([]entity.Reference, error) {
	return s.refs[kind], nil
}

func (s *fakeStore) ListTitles(context.Context) ([]string, error) {
	out := make([]string, len(s.titles))
	copy(out, s.titles)
	for _, it := range s.items {
		out = append(out, it.Title)
	}
	return out, nil
}

func (s *fakeStore) InsertItem(_ context.Context, item *entity.Item) (uuid.UUID, error) {
	if item.Title == s.insertErrFor {
		return uuid.Nil, errors.New("insert refused")
	}
	for id, existing := range s.items {
		if entity.NormalizedTitle(existing.Title) == entity.NormalizedTitle(item.Title) {
			return id, nil
		}
	}
	cp := *item
	s.items[item.ID] = &cp
	return item.ID, nil
}

func (s *fakeStore) AttachReferences(_ context.Context, itemID uuid.UUID, kind constants.CategoryKind, refIDs []uuid.UUID) error {
	if s.attached[itemID] == nil {
		s.attached[itemID] = make(map[constants.CategoryKind][]uuid.UUID)
	}
	s.attached[itemID][kind] = append(s.attached[itemID][kind], refIDs...)
	return nil
}

func (s *fakeStore) SyncTeams(context.Context) (batch.TeamSyncStats, error) {
	s.teamSyncs++
	return batch.TeamSyncStats{NewTeams: 1}, nil
}

func (s *fakeStore) GetOrCreateReference(_ context.Context, kind constants.CategoryKind, name string) (*entity.Reference, bool, error) {
	for i := range s.refs[kind] {
		if entity.NormalizedTitle(s.refs[kind][i].Name) == entity.NormalizedTitle(name) {
			return &s.refs[kind][i], false, nil
		}
	}
	ref := s.addRef(kind, name)
	s.createdRefs[kind]++
	return &ref, true, nil
}

func (s *fakeStore) ListItemIndex(context.Context) (map[string]uuid.UUID, error) {
	index := make(map[string]uuid.UUID, len(s.items))
	for id, it := range s.items {
		index[entity.NormalizedTitle(it.Title)] = id
	}
	for _, title := range s.titles {
		if _, ok := index[entity.NormalizedTitle(title)]; !ok {
			index[entity.NormalizedTitle(title)] = uuid.New()
		}
	}
	return index, nil
}

func (s *fakeStore) CreateItem(_ context.Context, item *entity.Item) error {
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *fakeStore) UpdateItem(_ context.Context, id uuid.UUID, item *entity.Item) error {
	cp := *item
	cp.ID = id
	s.items[id] = &cp
	s.updates++
	return nil
}

func (s *fakeStore) ReplaceReferences(_ context.Context, itemID uuid.UUID, kind constants.CategoryKind, refIDs []uuid.UUID) error {
	if s.replaced[itemID] == nil {
		s.replaced[itemID] = make(map[constants.CategoryKind][]uuid.UUID)
	}
	s.replaced[itemID][kind] = refIDs
	return nil
}

func seededStore() *fakeStore {
	s := newFakeStore()
	s.addRef(constants.KindIndustry, "Healthcare & Life Sciences")
	s.addRef(constants.KindIndustry, "Finance & Banking")
	s.addRef(constants.KindAudience, "Researchers")
	s.addRef(constants.KindFunction, "Marketing")
	return s
}

func newOrchestrator(s *fakeStore, registry *logos.Registry, opts batch.Options, sink batch.ProgressSink) *batch.Orchestrator {
	return batch.NewOrchestrator(s, registry, reconcile.DefaultConfig(), opts, sink, nil)
}

func TestRunImportsNewRows(t *testing.T) {
	t.Parallel()

	store := seededStore()
	orch := newOrchestrator(store, nil, batch.Options{}, nil)

	input := []entity.Row{
		{
			Title:      "Project X",
			Industries: "Healthcare",
			Audience:   `["Researchers"]`,
			Functions:  "Marketing",
			Team:       "Stanford University",
		},
		{
			Title:      "Project Y",
			Industries: "Finance",
		},
	}
	report, err := orch.Run(context.Background(), input)
	require.NoError(t, err)

	require.Equal(t, 2, report.Stats.Total)
	require.Equal(t, 2, report.Stats.Processed)
	require.Zero(t, report.Stats.Errors)
	require.Len(t, store.items, 2)
	require.Equal(t, 1, store.teamSyncs)
	require.Equal(t, batch.TeamSyncStats{NewTeams: 1}, report.TeamSync)

	first := report.Results[0]
	require.Equal(t, constants.RowStatusSuccess, first.Status)
	require.Equal(t, []string{"Healthcare & Life Sciences"}, first.MatchedCategories[constants.KindIndustry])
	require.Equal(t, []string{"Researchers"}, first.MatchedCategories[constants.KindAudience])
	require.Equal(t, []string{"Marketing"}, first.MatchedCategories[constants.KindFunction])
}

func TestRunNeverCreatesDuplicateTitles(t *testing.T) {
	t.Parallel()

	store := seededStore()
	store.titles = []string{"Existing Project"}
	orch := newOrchestrator(store, nil, batch.Options{}, nil)

	input := []entity.Row{
		{Title: "existing project"},
		{Title: " Project X "},
		{Title: "project x"}, // same title, later in the same batch
		{Title: ""},
	}
	report, err := orch.Run(context.Background(), input)
	require.NoError(t, err)

	require.Equal(t, 1, report.Stats.Processed)
	require.Equal(t, 2, report.Stats.SkippedExists)
	require.Equal(t, 1, report.Stats.SkippedEmptyTitle)
	require.Len(t, store.items, 1)

	require.Equal(t, constants.SkipExists, report.Results[0].Reason)
	require.Equal(t, constants.SkipExists, report.Results[2].Reason)
	require.Equal(t, constants.SkipEmptyTitle, report.Results[3].Reason)
}

func TestRunSkipsNotRelevantRows(t *testing.T) {
	t.Parallel()

	store := seededStore()
	orch := newOrchestrator(store, nil, batch.Options{}, nil)

	report, err := orch.Run(context.Background(), []entity.Row{
		{Title: "Project X", Summarized: constants.SummarizedNotRelevant},
	})
	require.NoError(t, err)
	require.Equal(t, 1, report.Stats.SkippedNotRelevant)
	require.Zero(t, report.Stats.Processed)
	require.Empty(t, store.items)
	require.Equal(t, constants.SkipNotRelevant, report.Results[0].Reason)
}

func TestRunStrictFieldInvalidFormat(t *testing.T) {
	t.Parallel()

	store := seededStore()
	orch := newOrchestrator(store, nil, batch.Options{
		FieldModes: map[constants.Field]rows.Mode{constants.FieldAudience: rows.ModeStrictJSON},
	}, nil)

	report, err := orch.Run(context.Background(), []entity.Row{
		{Title: "Project X", Audience: "researchers and clinicians"},
		{Title: "Project Y"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, report.Stats.InvalidFormat)
	require.Equal(t, 1, report.Stats.Processed)
	require.Equal(t, constants.RowStatusInvalidFormat, report.Results[0].Status)
	require.Len(t, store.items, 1)
}

func TestRunContinuesAfterInsertError(t *testing.T) {
	t.Parallel()

	store := seededStore()
	store.insertErrFor = "Broken Project"
	orch := newOrchestrator(store, nil, batch.Options{}, nil)

	report, err := orch.Run(context.Background(), []entity.Row{
		{Title: "Broken Project"},
		{Title: "Fine Project"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, report.Stats.Errors)
	require.Equal(t, 1, report.Stats.Processed)
	require.Equal(t, constants.RowStatusError, report.Results[0].Status)
	require.Equal(t, constants.RowStatusSuccess, report.Results[1].Status)
}

func TestRunRerunIsIdempotent(t *testing.T) {
	t.Parallel()

	store := seededStore()
	input := []entity.Row{{Title: "Project X"}, {Title: "Project Y"}}

	first, err := newOrchestrator(store, nil, batch.Options{}, nil).Run(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, 2, first.Stats.Processed)

	second, err := newOrchestrator(store, nil, batch.Options{}, nil).Run(context.Background(), input)
	require.NoError(t, err)
	require.Zero(t, second.Stats.Processed)
	require.Equal(t, 2, second.Stats.SkippedExists)
	require.Len(t, store.items, 2)
}

func TestRunRecordsUnmappedTokens(t *testing.T) {
	t.Parallel()

	store := seededStore()
	orch := newOrchestrator(store, nil, batch.Options{}, nil)

	report, err := orch.Run(context.Background(), []entity.Row{
		{Title: "Project X", Industries: "zzzzqqqq"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, report.Stats.Processed)
	require.Equal(t, 1, report.Stats.UnmappedByKind[constants.KindIndustry])
	require.Len(t, report.Unmapped, 1)
	require.Equal(t, "zzzzqqqq", report.Unmapped[0].Token)
	require.Equal(t, constants.KindIndustry, report.Unmapped[0].Kind)
}

func TestRunMatchesInstitutionLogos(t *testing.T) {
	t.Parallel()

	store := seededStore()
	registry := logos.NewRegistry(map[string]string{
		"Stanford University": "https://cdn.example.com/stanford.png",
	}, nil)
	orch := newOrchestrator(store, registry, batch.Options{}, nil)

	report, err := orch.Run(context.Background(), []entity.Row{
		{Title: "Project X", Team: "Stanford University"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, report.Stats.MatchedInstitutions)
	require.Equal(t, constants.LogoDirect, report.Results[0].LogoTier)

	var stored *entity.Item
	for _, it := range store.items {
		stored = it
	}
	require.NotNil(t, stored.ImageURL)
	require.Equal(t, "https://cdn.example.com/stanford.png", *stored.ImageURL)
}

func TestProgressThrottled(t *testing.T) {
	t.Parallel()

	store := seededStore()
	var calls []int
	sink := batch.ProgressFunc(func(current, total int, title string) error {
		calls = append(calls, current)
		return nil
	})
	orch := newOrchestrator(store, nil, batch.Options{MinProgressInterval: time.Hour}, sink)

	input := []entity.Row{
		{Title: "A1"}, {Title: "A2"}, {Title: "A3"}, {Title: "A4"}, {Title: "A5"},
	}
	_, err := orch.Run(context.Background(), input)
	require.NoError(t, err)

	// First notification goes out immediately, then the interval suppresses
	// everything except the final row.
	require.Equal(t, []int{1, 5}, calls)
}

func TestProgressRateLimitRetriesOnce(t *testing.T) {
	t.Parallel()

	store := seededStore()
	attempts := 0
	sink := batch.ProgressFunc(func(current, total int, title string) error {
		attempts++
		if attempts == 1 {
			return &batch.RateLimitError{RetryAfter: time.Millisecond}
		}
		return nil
	})
	orch := newOrchestrator(store, nil, batch.Options{}, sink)

	_, err := orch.Run(context.Background(), []entity.Row{{Title: "Project X"}})
	require.NoError(t, err)
	require.Equal(t, 2, attempts)
}

func TestRunStopsOnCancellation(t *testing.T) {
	t.Parallel()

	store := seededStore()
	ctx, cancel := context.WithCancel(context.Background())
	sink := batch.ProgressFunc(func(current, total int, title string) error {
		if current == 2 {
			cancel()
		}
		return nil
	})
	orch := newOrchestrator(store, nil, batch.Options{MinProgressInterval: time.Nanosecond}, sink)

	input := []entity.Row{
		{Title: "A1"}, {Title: "A2"}, {Title: "A3"}, {Title: "A4"},
	}
	report, err := orch.Run(ctx, input)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	require.Less(t, report.Stats.Processed, len(input))
}
