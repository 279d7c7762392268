package logos

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smartjects/importer/internal/entity"
)

// ItemStore is the persistence surface the relink pass depends on.
type ItemStore interface {
	ListItems(ctx context.Context) ([]*entity.Item, error)
	UpdateItemLogo(ctx context.Context, id uuid.UUID, assetURL string) error
}

// RelinkStats summarizes one relink pass over existing items.
type RelinkStats struct {
	Total          int
	WithTeams      int
	FoundMatches   int
	AlreadyCorrect int
	Updated        int
	Errors         int
}

// Relink re-runs the matcher over every persisted item that carries an
// organization list and updates the stored logo URL where it differs.
// The pass is idempotent; with dryRun set it only counts what would change.
func Relink(ctx context.Context, store ItemStore, registry *Registry, dryRun bool, logger *slog.Logger) (RelinkStats, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var stats RelinkStats
	items, err := store.ListItems(ctx)
	if err != nil {
		return stats, err
	}
	stats.Total = len(items)
	logger.Info("logos.relink.start", "items", stats.Total, "dry_run", dryRun)

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if len(item.Team) == 0 {
			continue
		}
		stats.WithTeams++

		match := registry.FindMatch(item.Team)
		if match == nil {
			continue
		}
		stats.FoundMatches++

		if item.ImageURL != nil && *item.ImageURL == match.AssetURL {
			stats.AlreadyCorrect++
			continue
		}
		if dryRun {
			continue
		}
		if err := store.UpdateItemLogo(ctx, item.ID, match.AssetURL); err != nil {
			stats.Errors++
			logger.Error("logos.relink.update_failed", "title", item.Title, "error", err)
			continue
		}
		stats.Updated++
		logger.Info("logos.relink.updated", "title", item.Title, "tier", match.Tier)
	}

	logger.Info("logos.relink.done",
		"with_teams", stats.WithTeams,
		"matched", stats.FoundMatches,
		"updated", stats.Updated,
		"errors", stats.Errors,
	)
	return stats, nil
}
