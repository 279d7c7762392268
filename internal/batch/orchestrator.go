// Package batch drives rows through normalization, tag reconciliation,
// institution matching and deduplication, then hands them to the store.
// One Orchestrator run covers exactly one source file.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/smartjects/importer/constants"
	"github.com/smartjects/importer/internal/dedupe"
	"github.com/smartjects/importer/internal/entity"
	"github.com/smartjects/importer/internal/logos"
	"github.com/smartjects/importer/internal/reconcile"
	"github.com/smartjects/importer/internal/rows"
)

// Options configures one batch run. Zero values fall back to the defaults.
type Options struct {
	// ChunkSize is the number of rows processed between suspension points.
	ChunkSize int
	// ChunkDelay is the pause after each chunk except the last, bounding
	// output rate to downstream collaborators.
	ChunkDelay time.Duration
	// MinProgressInterval throttles deliveries to the progress sink; the
	// final row is always delivered.
	MinProgressInterval time.Duration
	// FieldModes selects strict or permissive token extraction per tag
	// field. Unset fields are permissive.
	FieldModes map[constants.Field]rows.Mode
	// SummaryHead bounds the per-bucket detail listing in the summary.
	SummaryHead int
}

const (
	defaultChunkSize   = 50
	defaultChunkDelay  = 100 * time.Millisecond
	defaultMinInterval = 2 * time.Second
	defaultSummaryHead = 10
)

func (o *Options) withDefaults() {
	if o.ChunkSize <= 0 {
		o.ChunkSize = defaultChunkSize
	}
	if o.ChunkDelay < 0 {
		o.ChunkDelay = defaultChunkDelay
	}
	if o.MinProgressInterval <= 0 {
		o.MinProgressInterval = defaultMinInterval
	}
	if o.SummaryHead <= 0 {
		o.SummaryHead = defaultSummaryHead
	}
}

// Orchestrator owns all mutable batch state: the dedup tracker, the stats
// accumulator and the unmapped-token review list. Row processing is strictly
// sequential; no locking is needed because state is only touched between
// suspension points.
type Orchestrator struct {
	store    Store
	registry *logos.Registry
	rcfg     reconcile.Config
	opts     Options
	sink     ProgressSink
	logger   *slog.Logger
	now      func() time.Time
}

// NewOrchestrator wires a batch runner. registry and sink may be nil; the
// run then skips logo matching and progress delivery respectively.
func NewOrchestrator(store Store, registry *logos.Registry, rcfg reconcile.Config, opts Options, sink ProgressSink, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	opts.withDefaults()
	return &Orchestrator{
		store:    store,
		registry: registry,
		rcfg:     rcfg,
		opts:     opts,
		sink:     sink,
		logger:   logger,
		now:      time.Now,
	}
}

// Run processes all rows of one source file. A snapshot-load failure aborts
// before any row; per-row failures are recorded and never escape the chunk
// loop. Cancellation between rows stops further processing without rolling
// back persisted items.
func (o *Orchestrator) Run(ctx context.Context, input []entity.Row) (*Report, error) {
	report := &Report{Stats: newStats()}

	// Seeding: reference snapshots and the dedup set, loaded exactly once.
	snapshots := make(map[constants.CategoryKind][]entity.Reference, len(constants.Kinds()))
	for _, kind := range constants.Kinds() {
		refs, err := o.store.ListReferences(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("load %s snapshot: %w", kind, err)
		}
		snapshots[kind] = refs
		o.logger.Info("batch.snapshot.loaded", "kind", string(kind), "entries", len(refs))
	}
	titles, err := o.store.ListTitles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load existing titles: %w", err)
	}
	tracker := dedupe.NewTracker()
	tracker.Seed(titles)
	o.logger.Info("batch.seeded", "existing_titles", tracker.Len(), "rows", len(input))

	reconciler := reconcile.New(snapshots, o.rcfg)
	report.Stats.Total = len(input)

	var lastNotified time.Time
	for start := 0; start < len(input); start += o.opts.ChunkSize {
		end := start + o.opts.ChunkSize
		if end > len(input) {
			end = len(input)
		}

		for idx := start; idx < end; idx++ {
			if err := ctx.Err(); err != nil {
				o.logger.Warn("batch.cancelled", "processed", idx, "total", len(input))
				return report, err
			}
			row := input[idx]

			o.notify(ctx, idx+1, len(input), row.Title, &lastNotified)

			res := o.processRow(ctx, row, reconciler, tracker, report)
			report.Results = append(report.Results, res)
		}

		if end < len(input) && o.opts.ChunkDelay > 0 {
			if err := sleepCtx(ctx, o.opts.ChunkDelay); err != nil {
				return report, err
			}
		}
	}

	if report.Stats.Processed > 0 {
		sync, err := o.store.SyncTeams(ctx)
		if err != nil {
			o.logger.Error("batch.teams.sync_failed", "error", err)
		} else {
			report.TeamSync = sync
			o.logger.Info("batch.teams.synced", "new_teams", sync.NewTeams, "new_relations", sync.NewRelations)
		}
	}

	o.logger.Info("batch.done",
		"total", report.Stats.Total,
		"processed", report.Stats.Processed,
		"skipped_exists", report.Stats.SkippedExists,
		"errors", report.Stats.Errors,
	)
	return report, nil
}

func (o *Orchestrator) processRow(ctx context.Context, row entity.Row, reconciler *reconcile.Reconciler, tracker *dedupe.Tracker, report *Report) RowResult {
	stats := &report.Stats

	if row.Summarized == constants.SummarizedNotRelevant {
		stats.SkippedNotRelevant++
		return RowResult{Title: row.Title, Status: constants.RowStatusSkipped, Reason: constants.SkipNotRelevant}
	}

	switch tracker.Classify(row.Title) {
	case dedupe.Exists:
		stats.SkippedExists++
		o.logger.Info("batch.row.exists", "title", row.Title)
		return RowResult{Title: row.Title, Status: constants.RowStatusSkipped, Reason: constants.SkipExists}
	case dedupe.Empty:
		stats.SkippedEmptyTitle++
		return RowResult{Title: row.Title, Status: constants.RowStatusSkipped, Reason: constants.SkipEmptyTitle}
	}

	tagCells := map[constants.CategoryKind]struct {
		field constants.Field
		cell  string
	}{
		constants.KindIndustry: {constants.FieldIndustries, row.Industries},
		constants.KindAudience: {constants.FieldAudience, row.Audience},
		constants.KindFunction: {constants.FieldFunctions, row.Functions},
	}

	matched := make(map[constants.CategoryKind][]entity.Reference)
	for _, kind := range constants.Kinds() {
		tc := tagCells[kind]
		tokens, err := rows.ExtractTokens(tc.field, tc.cell, o.mode(tc.field))
		if err != nil {
			var ferr *rows.FormatError
			if errors.As(err, &ferr) {
				stats.InvalidFormat++
				o.logger.Warn("batch.row.invalid_format", "title", row.Title, "field", string(tc.field))
				return RowResult{Title: row.Title, Status: constants.RowStatusInvalidFormat, Err: ferr.Error()}
			}
			stats.Errors++
			return RowResult{Title: row.Title, Status: constants.RowStatusError, Err: err.Error()}
		}
		for _, token := range tokens {
			m := reconciler.Reconcile(token, kind)
			if !m.Matched() {
				stats.UnmappedByKind[kind]++
				report.Unmapped = append(report.Unmapped, UnmappedTag{Token: token, Kind: kind, Title: row.Title})
				continue
			}
			if !containsRef(matched[kind], m.Entry.ID) {
				matched[kind] = append(matched[kind], *m.Entry)
			}
		}
	}

	team, _ := rows.ExtractTokens(constants.FieldTeam, row.Team, rows.ModePermissive)

	var logoMatch *entity.LogoMatch
	if o.registry != nil && len(team) > 0 {
		if logoMatch = o.registry.FindMatch(team); logoMatch != nil {
			stats.MatchedInstitutions++
			o.logger.Info("batch.row.logo", "title", row.Title, "institution", logoMatch.Organization, "tier", string(logoMatch.Tier))
		}
	}

	createdAt := parsePublishDate(row.PublishDate, o.now())
	item := &entity.Item{
		ID:           uuid.New(),
		Title:        row.Title,
		Mission:      row.Mission,
		Problematics: row.Problematics,
		Scope:        row.Scope,
		Audience:     row.Audience,
		HowItWorks:   row.HowItWorks,
		Architecture: row.Architecture,
		Innovation:   row.Innovation,
		UseCase:      row.UseCase,
		Team:         team,
		Link:         row.Link,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	if logoMatch != nil {
		item.ImageURL = &logoMatch.AssetURL
	}

	itemID, err := o.store.InsertItem(ctx, item)
	if err != nil {
		stats.Errors++
		o.logger.Error("batch.row.insert_failed", "title", row.Title, "error", err)
		return RowResult{Title: row.Title, Status: constants.RowStatusError, Err: err.Error()}
	}
	for _, kind := range constants.Kinds() {
		refs := matched[kind]
		if len(refs) == 0 {
			continue
		}
		ids := make([]uuid.UUID, len(refs))
		for i, ref := range refs {
			ids[i] = ref.ID
		}
		if err := o.store.AttachReferences(ctx, itemID, kind, ids); err != nil {
			stats.Errors++
			o.logger.Error("batch.row.relations_failed", "title", row.Title, "kind", string(kind), "error", err)
			return RowResult{Title: row.Title, Status: constants.RowStatusError, Err: err.Error()}
		}
	}

	// Record before the next row is classified so same-batch duplicates of
	// this title resolve to already_exists.
	tracker.Record(row.Title)
	stats.Processed++

	res := RowResult{
		Title:             row.Title,
		Status:            constants.RowStatusSuccess,
		MatchedCategories: make(map[constants.CategoryKind][]string),
	}
	for kind, refs := range matched {
		for _, ref := range refs {
			res.MatchedCategories[kind] = append(res.MatchedCategories[kind], ref.Name)
		}
	}
	if logoMatch != nil {
		res.LogoTier = logoMatch.Tier
	}
	return res
}

func (o *Orchestrator) mode(field constants.Field) rows.Mode {
	if m, ok := o.opts.FieldModes[field]; ok {
		return m
	}
	return rows.ModePermissive
}

// notify delivers a progress notification when the minimum interval elapsed
// or the row is the last one. A rate-limit error suspends for the required
// wait and retries once; any further failure is logged and dropped.
func (o *Orchestrator) notify(ctx context.Context, current, total int, title string, lastNotified *time.Time) {
	if o.sink == nil {
		return
	}
	now := o.now()
	if current != total && now.Sub(*lastNotified) < o.opts.MinProgressInterval {
		return
	}

	err := o.sink.Notify(current, total, title)
	if err == nil {
		*lastNotified = o.now()
		return
	}

	var rl *RateLimitError
	if errors.As(err, &rl) {
		o.logger.Warn("batch.progress.rate_limited", "retry_after", rl.RetryAfter)
		if sleepCtx(ctx, rl.RetryAfter) != nil {
			return
		}
		if err = o.sink.Notify(current, total, title); err == nil {
			*lastNotified = o.now()
			return
		}
	}
	o.logger.Error("batch.progress.dropped", "current", current, "error", err)
}

func containsRef(refs []entity.Reference, id uuid.UUID) bool {
	for _, r := range refs {
		if r.ID == id {
			return true
		}
	}
	return false
}

// parsePublishDate accepts ISO timestamps and the feed's RFC1123-style
// format; anything else falls back to now.
func parsePublishDate(s string, now time.Time) time.Time {
	if s == "" {
		return now.UTC()
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC1123Z, s); err == nil {
		return t
	}
	return now.UTC()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
