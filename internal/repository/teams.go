package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/smartjects/importer/gen/ent"
	"github.com/smartjects/importer/gen/ent/item"
	"github.com/smartjects/importer/gen/ent/team"
	"github.com/smartjects/importer/internal/batch"
)

// TeamRepository materializes team rows and item-team relations from the
// team lists stored on items.
type TeamRepository interface {
	SyncAll(ctx context.Context) (batch.TeamSyncStats, error)
}

type teamRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTeamRepository(client *ent.Client, logger *slog.Logger) TeamRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &teamRepository{client: client, logger: logger}
}

func (r *teamRepository) SyncAll(ctx context.Context) (batch.TeamSyncStats, error) {
	var stats batch.TeamSyncStats

	items, err := r.client.Item.Query().All(ctx)
	if err != nil {
		return stats, err
	}

	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		for _, name := range it.Team {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			teamID, created, err := r.getOrCreate(ctx, name)
			if err != nil {
				r.logger.Error("teams.sync.failed", "team", name, "error", err)
				stats.Errors++
				continue
			}
			if created {
				stats.NewTeams++
			}
			linked, err := r.link(ctx, it.ID, teamID)
			if err != nil {
				r.logger.Error("teams.sync.link_failed", "team", name, "item_id", it.ID, "error", err)
				stats.Errors++
				continue
			}
			if linked {
				stats.NewRelations++
			}
		}
	}

	r.logger.Info("teams.sync.done",
		"new_teams", stats.NewTeams,
		"new_relations", stats.NewRelations,
		"errors", stats.Errors,
	)
	return stats, nil
}

func (r *teamRepository) getOrCreate(ctx context.Context, name string) (uuid.UUID, bool, error) {
	existing, err := r.client.Team.Query().
		Where(team.NameEqualFold(name)).
		First(ctx)
	if err == nil {
		return existing.ID, false, nil
	}
	if !ent.IsNotFound(err) {
		return uuid.Nil, false, err
	}
	created, err := r.client.Team.Create().SetName(name).Save(ctx)
	if err != nil {
		return uuid.Nil, false, err
	}
	return created.ID, true, nil
}

// link attaches the team to the item unless the relation already exists.
func (r *teamRepository) link(ctx context.Context, itemID, teamID uuid.UUID) (bool, error) {
	exists, err := r.client.Item.Query().
		Where(item.ID(itemID)).
		QueryTeams().
		Where(team.ID(teamID)).
		Exist(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if _, err := r.client.Item.UpdateOneID(itemID).AddTeamIDs(teamID).Save(ctx); err != nil {
		return false, err
	}
	return true, nil
}
