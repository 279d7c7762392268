package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartjects/importer/constants"
	"github.com/smartjects/importer/internal/entity"
	"github.com/smartjects/importer/internal/rows"
)

// SyncStore is the persistence surface of the strict synchronizer. Unlike
// the core import path it may create reference entries: GetOrCreateReference
// probes for an existing name (case-insensitive) immediately before creating,
// so concurrent writers do not inflate creation counts.
type SyncStore interface {
	GetOrCreateReference(ctx context.Context, kind constants.CategoryKind, name string) (ref *entity.Reference, created bool, err error)

	// ListItemIndex returns normalized title -> id for every persisted item.
	ListItemIndex(ctx context.Context) (map[string]uuid.UUID, error)

	CreateItem(ctx context.Context, item *entity.Item) error
	UpdateItem(ctx context.Context, id uuid.UUID, item *entity.Item) error

	// ReplaceReferences rebuilds an item's relations for one vocabulary.
	ReplaceReferences(ctx context.Context, itemID uuid.UUID, kind constants.CategoryKind, refIDs []uuid.UUID) error
}

// SyncOptions configures one synchronizer run.
type SyncOptions struct {
	// StrictFields marks tag fields whose parse failure skips the whole
	// row. Lenient fields degrade to an empty list with a warning. The
	// audience field is strict by default.
	StrictFields map[constants.Field]bool
	// DryRun classifies rows without writing.
	DryRun bool
	// Limit processes only the first N rows when positive.
	Limit int
}

// SyncStats summarizes one synchronizer run.
type SyncStats struct {
	TotalRows     int
	Valid         int
	InvalidFormat int
	Created       int
	Updated       int
	Skipped       int
	NewReferences map[constants.CategoryKind]int
	Errors        []RowResult
}

// Synchronizer is the create-or-update ingestion policy: rows are matched to
// existing items by title and reference names are get-or-created instead of
// reconciled. It deliberately sits outside the core matching algorithm.
type Synchronizer struct {
	store  SyncStore
	opts   SyncOptions
	logger *slog.Logger
	now    func() time.Time
}

func NewSynchronizer(store SyncStore, opts SyncOptions, logger *slog.Logger) *Synchronizer {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.StrictFields == nil {
		opts.StrictFields = map[constants.Field]bool{constants.FieldAudience: true}
	}
	return &Synchronizer{store: store, opts: opts, logger: logger, now: time.Now}
}

// Run synchronizes all rows against the store.
func (s *Synchronizer) Run(ctx context.Context, input []entity.Row) (*SyncStats, error) {
	stats := &SyncStats{NewReferences: make(map[constants.CategoryKind]int)}
	stats.TotalRows = len(input)

	index, err := s.store.ListItemIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("load item index: %w", err)
	}
	s.logger.Info("sync.seeded", "existing_items", len(index), "rows", len(input))

	limit := len(input)
	if s.opts.Limit > 0 && s.opts.Limit < limit {
		limit = s.opts.Limit
	}

	for i := 0; i < limit; i++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		s.syncRow(ctx, input[i], index, stats)
	}
	return stats, nil
}

func (s *Synchronizer) syncRow(ctx context.Context, row entity.Row, index map[string]uuid.UUID, stats *SyncStats) {
	if row.Title == "" {
		stats.Skipped++
		return
	}

	audience, ok := parseAudienceCell(row.Audience)
	if !ok {
		if s.opts.StrictFields[constants.FieldAudience] {
			s.logger.Warn("sync.row.invalid_audience", "title", row.Title)
			stats.InvalidFormat++
			stats.Skipped++
			return
		}
		s.logger.Warn("sync.row.lenient_fallback", "title", row.Title, "field", string(constants.FieldAudience))
		audience = nil
	}

	tags := map[constants.CategoryKind][]string{constants.KindAudience: audience}
	lenientCells := map[constants.CategoryKind]struct {
		field constants.Field
		cell  string
	}{
		constants.KindIndustry: {constants.FieldIndustries, row.Industries},
		constants.KindFunction: {constants.FieldFunctions, row.Functions},
	}
	for kind, tc := range lenientCells {
		tokens, err := rows.ExtractTokens(tc.field, tc.cell, rows.ModeStrictJSON)
		if err != nil {
			if s.opts.StrictFields[tc.field] {
				s.logger.Warn("sync.row.invalid_format", "title", row.Title, "field", string(tc.field))
				stats.InvalidFormat++
				stats.Skipped++
				return
			}
			s.logger.Warn("sync.row.lenient_fallback", "title", row.Title, "field", string(tc.field))
			tokens = nil
		}
		tags[kind] = tokens
	}

	existingID, exists := index[entity.NormalizedTitle(row.Title)]
	if s.opts.DryRun {
		stats.Valid++
		if exists {
			stats.Updated++
		} else {
			stats.Created++
		}
		return
	}

	audienceJSON, _ := json.Marshal(audience)
	team, _ := rows.ExtractTokens(constants.FieldTeam, row.Team, rows.ModePermissive)
	now := s.now().UTC()
	item := &entity.Item{
		Title:        row.Title,
		Mission:      row.Mission,
		Problematics: row.Problematics,
		Scope:        row.Scope,
		Audience:     string(audienceJSON),
		HowItWorks:   row.HowItWorks,
		Architecture: row.Architecture,
		Innovation:   row.Innovation,
		UseCase:      row.UseCase,
		Team:         team,
		Link:         row.Link,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var itemID uuid.UUID
	var err error
	if exists {
		itemID = existingID
		err = s.store.UpdateItem(ctx, itemID, item)
	} else {
		itemID = uuid.New()
		item.ID = itemID
		err = s.store.CreateItem(ctx, item)
	}
	if err != nil {
		s.recordError(stats, row.Title, err)
		return
	}
	if !exists {
		index[entity.NormalizedTitle(row.Title)] = itemID
		stats.Created++
	} else {
		stats.Updated++
	}

	for _, kind := range constants.Kinds() {
		names := tags[kind]
		if len(names) == 0 {
			continue
		}
		var refIDs []uuid.UUID
		for _, name := range names {
			ref, created, err := s.store.GetOrCreateReference(ctx, kind, name)
			if err != nil {
				s.recordError(stats, row.Title, err)
				return
			}
			if ref == nil {
				continue
			}
			if created {
				stats.NewReferences[kind]++
				s.logger.Info("sync.reference.created", "kind", string(kind), "name", ref.Name)
			}
			refIDs = append(refIDs, ref.ID)
		}
		if len(refIDs) == 0 {
			continue
		}
		if err := s.store.ReplaceReferences(ctx, itemID, kind, refIDs); err != nil {
			s.recordError(stats, row.Title, err)
			return
		}
	}

	stats.Valid++
}

func (s *Synchronizer) recordError(stats *SyncStats, title string, err error) {
	s.logger.Error("sync.row.failed", "title", title, "error", err)
	stats.Errors = append(stats.Errors, RowResult{
		Title:  title,
		Status: constants.RowStatusError,
		Err:    err.Error(),
	})
}

// parseAudienceCell accepts either a strict JSON array of non-empty strings
// or comma-separated prose; empty input is valid and yields no tokens. Only
// a cell bracketed on both ends takes the JSON branch; anything else is
// treated as prose.
func parseAudienceCell(cell string) ([]string, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, true
	}
	if strings.HasPrefix(cell, "[") && strings.HasSuffix(cell, "]") {
		tokens, err := rows.ExtractTokens(constants.FieldAudience, cell, rows.ModeStrictJSON)
		if err != nil {
			return nil, false
		}
		return tokens, true
	}
	if items := rows.ParseProse(cell); len(items) > 0 {
		return items, true
	}
	return nil, false
}
