package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/smartjects/importer/constants"
	"github.com/smartjects/importer/gen/ent"
	"github.com/smartjects/importer/gen/ent/audience"
	"github.com/smartjects/importer/gen/ent/businessfunction"
	"github.com/smartjects/importer/gen/ent/industry"
	"github.com/smartjects/importer/internal/entity"
)

// ReferenceRepository serves the three closed vocabularies behind one
// kind-keyed surface.
type ReferenceRepository interface {
	List(ctx context.Context, kind constants.CategoryKind) ([]entity.Reference, error)
	// GetOrCreate returns the entry for name, creating it when absent. The
	// existence probe is case-insensitive and runs immediately before the
	// insert, so concurrent writers converge on one row.
	GetOrCreate(ctx context.Context, kind constants.CategoryKind, name string) (*entity.Reference, bool, error)
}

type referenceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReferenceRepository(client *ent.Client, logger *slog.Logger) ReferenceRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &referenceRepository{client: client, logger: logger}
}

// listPageSize bounds one vocabulary page fetch.
const listPageSize = 500

func (r *referenceRepository) List(ctx context.Context, kind constants.CategoryKind) ([]entity.Reference, error) {
	var out []entity.Reference
	for offset := 0; ; offset += listPageSize {
		page, err := r.listPage(ctx, kind, offset)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < listPageSize {
			return out, nil
		}
	}
}

func (r *referenceRepository) listPage(ctx context.Context, kind constants.CategoryKind, offset int) ([]entity.Reference, error) {
	switch kind {
	case constants.KindIndustry:
		rows, err := r.client.Industry.Query().
			Order(industry.ByName()).
			Offset(offset).
			Limit(listPageSize).
			All(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]entity.Reference, len(rows))
		for i, row := range rows {
			out[i] = entity.Reference{ID: row.ID, Name: row.Name}
		}
		return out, nil
	case constants.KindAudience:
		rows, err := r.client.Audience.Query().
			Order(audience.ByName()).
			Offset(offset).
			Limit(listPageSize).
			All(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]entity.Reference, len(rows))
		for i, row := range rows {
			out[i] = entity.Reference{ID: row.ID, Name: row.Name}
		}
		return out, nil
	case constants.KindFunction:
		rows, err := r.client.BusinessFunction.Query().
			Order(businessfunction.ByName()).
			Offset(offset).
			Limit(listPageSize).
			All(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]entity.Reference, len(rows))
		for i, row := range rows {
			out[i] = entity.Reference{ID: row.ID, Name: row.Name}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown vocabulary %q", kind)
	}
}

func (r *referenceRepository) GetOrCreate(ctx context.Context, kind constants.CategoryKind, name string) (*entity.Reference, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, nil
	}

	switch kind {
	case constants.KindIndustry:
		existing, err := r.client.Industry.Query().
			Where(industry.NameEqualFold(name)).
			First(ctx)
		if err == nil {
			return &entity.Reference{ID: existing.ID, Name: existing.Name}, false, nil
		}
		if !ent.IsNotFound(err) {
			return nil, false, err
		}
		created, err := r.client.Industry.Create().SetName(name).Save(ctx)
		if err != nil {
			return nil, false, err
		}
		return &entity.Reference{ID: created.ID, Name: created.Name}, true, nil
	case constants.KindAudience:
		existing, err := r.client.Audience.Query().
			Where(audience.NameEqualFold(name)).
			First(ctx)
		if err == nil {
			return &entity.Reference{ID: existing.ID, Name: existing.Name}, false, nil
		}
		if !ent.IsNotFound(err) {
			return nil, false, err
		}
		created, err := r.client.Audience.Create().SetName(name).Save(ctx)
		if err != nil {
			return nil, false, err
		}
		return &entity.Reference{ID: created.ID, Name: created.Name}, true, nil
	case constants.KindFunction:
		existing, err := r.client.BusinessFunction.Query().
			Where(businessfunction.NameEqualFold(name)).
			First(ctx)
		if err == nil {
			return &entity.Reference{ID: existing.ID, Name: existing.Name}, false, nil
		}
		if !ent.IsNotFound(err) {
			return nil, false, err
		}
		created, err := r.client.BusinessFunction.Create().SetName(name).Save(ctx)
		if err != nil {
			return nil, false, err
		}
		return &entity.Reference{ID: created.ID, Name: created.Name}, true, nil
	default:
		return nil, false, fmt.Errorf("unknown vocabulary %q", kind)
	}
}
