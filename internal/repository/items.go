package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smartjects/importer/constants"
	"github.com/smartjects/importer/gen/ent"
	"github.com/smartjects/importer/gen/ent/item"
	"github.com/smartjects/importer/internal/entity"
	"github.com/smartjects/importer/internal/utils"
)

// ErrItemNotFound reports a delete or update against an unknown item id.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository persists imported items and their vocabulary relations.
type ItemRepository interface {
	ListTitles(ctx context.Context) ([]string, error)
	ListIndex(ctx context.Context) (map[string]uuid.UUID, error)
	ListItems(ctx context.Context) ([]*entity.Item, error)

	// Insert creates the item unless one with the same title already
	// exists; the existing row's id is returned in that case.
	Insert(ctx context.Context, it *entity.Item) (uuid.UUID, error)
	Create(ctx context.Context, it *entity.Item) error
	Update(ctx context.Context, id uuid.UUID, it *entity.Item) error
	UpdateLogo(ctx context.Context, id uuid.UUID, assetURL string) error

	// Delete removes the item; relation rows cascade with it.
	Delete(ctx context.Context, id uuid.UUID) error

	// AttachReferences adds relations, skipping ones already present.
	AttachReferences(ctx context.Context, itemID uuid.UUID, kind constants.CategoryKind, refIDs []uuid.UUID) error
	// ReplaceReferences clears one vocabulary's relations and writes refIDs.
	ReplaceReferences(ctx context.Context, itemID uuid.UUID, kind constants.CategoryKind, refIDs []uuid.UUID) error
}

type itemRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewItemRepository(client *ent.Client, logger *slog.Logger) ItemRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &itemRepository{client: client, logger: logger}
}

func (r *itemRepository) ListTitles(ctx context.Context) ([]string, error) {
	return r.client.Item.Query().
		Order(item.ByTitle()).
		Select(item.FieldTitle).
		Strings(ctx)
}

func (r *itemRepository) ListIndex(ctx context.Context) (map[string]uuid.UUID, error) {
	rows, err := r.client.Item.Query().
		Select(item.FieldID, item.FieldTitle).
		All(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]uuid.UUID, len(rows))
	for _, row := range rows {
		index[entity.NormalizedTitle(row.Title)] = row.ID
	}
	return index, nil
}

func (r *itemRepository) ListItems(ctx context.Context) ([]*entity.Item, error) {
	rows, err := r.client.Item.Query().Order(item.ByTitle()).All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Item, len(rows))
	for i, row := range rows {
		out[i] = utils.ToItem(row)
	}
	return out, nil
}

func (r *itemRepository) Insert(ctx context.Context, it *entity.Item) (uuid.UUID, error) {
	existing, err := r.client.Item.Query().
		Where(item.TitleEqualFold(it.Title)).
		First(ctx)
	if err == nil {
		r.logger.Debug("item already present", "title", it.Title, "id", existing.ID)
		return existing.ID, nil
	}
	if !ent.IsNotFound(err) {
		return uuid.Nil, err
	}

	created, err := r.builder(it).Save(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}

func (r *itemRepository) Create(ctx context.Context, it *entity.Item) error {
	b := r.builder(it)
	if it.ID != uuid.Nil {
		b.SetID(it.ID)
	}
	_, err := b.Save(ctx)
	return err
}

func (r *itemRepository) Update(ctx context.Context, id uuid.UUID, it *entity.Item) error {
	_, err := r.client.Item.UpdateOneID(id).
		SetTitle(it.Title).
		SetMission(it.Mission).
		SetProblematics(it.Problematics).
		SetScope(it.Scope).
		SetAudience(it.Audience).
		SetHowItWorks(it.HowItWorks).
		SetArchitecture(it.Architecture).
		SetInnovation(it.Innovation).
		SetUseCase(it.UseCase).
		SetTeam(it.Team).
		SetLink(it.Link).
		Save(ctx)
	return err
}

func (r *itemRepository) UpdateLogo(ctx context.Context, id uuid.UUID, assetURL string) error {
	_, err := r.client.Item.UpdateOneID(id).
		SetImageURL(assetURL).
		Save(ctx)
	return err
}

func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Item.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if err != nil {
		return err
	}
	r.logger.Info("item.deleted", "id", id)
	return nil
}

func (r *itemRepository) AttachReferences(ctx context.Context, itemID uuid.UUID, kind constants.CategoryKind, refIDs []uuid.UUID) error {
	if len(refIDs) == 0 {
		return nil
	}
	existing, err := r.linkedIDs(ctx, itemID, kind)
	if err != nil {
		return err
	}
	var missing []uuid.UUID
	for _, id := range refIDs {
		if _, ok := existing[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return r.addIDs(ctx, itemID, kind, missing)
}

func (r *itemRepository) ReplaceReferences(ctx context.Context, itemID uuid.UUID, kind constants.CategoryKind, refIDs []uuid.UUID) error {
	upd := r.client.Item.UpdateOneID(itemID)
	switch kind {
	case constants.KindIndustry:
		upd.ClearIndustries().AddIndustryIDs(refIDs...)
	case constants.KindAudience:
		upd.ClearAudiences().AddAudienceIDs(refIDs...)
	case constants.KindFunction:
		upd.ClearFunctions().AddFunctionIDs(refIDs...)
	default:
		return fmt.Errorf("unknown vocabulary %q", kind)
	}
	_, err := upd.Save(ctx)
	return err
}

func (r *itemRepository) builder(it *entity.Item) *ent.ItemCreate {
	b := r.client.Item.Create().
		SetTitle(it.Title).
		SetMission(it.Mission).
		SetProblematics(it.Problematics).
		SetScope(it.Scope).
		SetAudience(it.Audience).
		SetHowItWorks(it.HowItWorks).
		SetArchitecture(it.Architecture).
		SetInnovation(it.Innovation).
		SetUseCase(it.UseCase).
		SetTeam(it.Team).
		SetLink(it.Link).
		SetNillableImageURL(it.ImageURL)
	if !it.CreatedAt.IsZero() {
		b.SetCreatedAt(it.CreatedAt)
	}
	if !it.UpdatedAt.IsZero() {
		b.SetUpdatedAt(it.UpdatedAt)
	}
	return b
}

func (r *itemRepository) linkedIDs(ctx context.Context, itemID uuid.UUID, kind constants.CategoryKind) (map[uuid.UUID]struct{}, error) {
	q := r.client.Item.Query().Where(item.ID(itemID))
	out := make(map[uuid.UUID]struct{})
	switch kind {
	case constants.KindIndustry:
		ids, err := q.QueryIndustries().IDs(ctx)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			out[id] = struct{}{}
		}
	case constants.KindAudience:
		ids, err := q.QueryAudiences().IDs(ctx)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			out[id] = struct{}{}
		}
	case constants.KindFunction:
		ids, err := q.QueryFunctions().IDs(ctx)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			out[id] = struct{}{}
		}
	default:
		return nil, fmt.Errorf("unknown vocabulary %q", kind)
	}
	return out, nil
}

func (r *itemRepository) addIDs(ctx context.Context, itemID uuid.UUID, kind constants.CategoryKind, ids []uuid.UUID) error {
	upd := r.client.Item.UpdateOneID(itemID)
	switch kind {
	case constants.KindIndustry:
		upd.AddIndustryIDs(ids...)
	case constants.KindAudience:
		upd.AddAudienceIDs(ids...)
	case constants.KindFunction:
		upd.AddFunctionIDs(ids...)
	default:
		return fmt.Errorf("unknown vocabulary %q", kind)
	}
	_, err := upd.Save(ctx)
	return err
}
