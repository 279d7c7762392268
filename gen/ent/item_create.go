// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/smartjects/importer/gen/ent/audience"
	"github.com/smartjects/importer/gen/ent/businessfunction"
	"github.com/smartjects/importer/gen/ent/industry"
	"github.com/smartjects/importer/gen/ent/item"
	"github.com/smartjects/importer/gen/ent/team"
)

// ItemCreate is the builder for creating a Item entity.
type ItemCreate struct {
	config
	mutation *ItemMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *ItemCreate) SetTitle(v string) *ItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetMission sets the "mission" field.
func (_c *ItemCreate) SetMission(v string) *ItemCreate {
	_c.mutation.SetMission(v)
	return _c
}

// SetNillableMission sets the "mission" field if the given value is not nil.
func (_c *ItemCreate) SetNillableMission(v *string) *ItemCreate {
	if v != nil {
		_c.SetMission(*v)
	}
	return _c
}

// SetProblematics sets the "problematics" field.
func (_c *ItemCreate) SetProblematics(v string) *ItemCreate {
	_c.mutation.SetProblematics(v)
	return _c
}

// SetNillableProblematics sets the "problematics" field if the given value is not nil.
func (_c *ItemCreate) SetNillableProblematics(v *string) *ItemCreate {
	if v != nil {
		_c.SetProblematics(*v)
	}
	return _c
}

// SetScope sets the "scope" field.
func (_c *ItemCreate) SetScope(v string) *ItemCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_c *ItemCreate) SetNillableScope(v *string) *ItemCreate {
	if v != nil {
		_c.SetScope(*v)
	}
	return _c
}

// SetAudience sets the "audience" field.
func (_c *ItemCreate) SetAudience(v string) *ItemCreate {
	_c.mutation.SetAudience(v)
	return _c
}

// SetNillableAudience sets the "audience" field if the given value is not nil.
func (_c *ItemCreate) SetNillableAudience(v *string) *ItemCreate {
	if v != nil {
		_c.SetAudience(*v)
	}
	return _c
}

// SetHowItWorks sets the "how_it_works" field.
func (_c *ItemCreate) SetHowItWorks(v string) *ItemCreate {
	_c.mutation.SetHowItWorks(v)
	return _c
}

// SetNillableHowItWorks sets the "how_it_works" field if the given value is not nil.
func (_c *ItemCreate) SetNillableHowItWorks(v *string) *ItemCreate {
	if v != nil {
		_c.SetHowItWorks(*v)
	}
	return _c
}

// SetArchitecture sets the "architecture" field.
func (_c *ItemCreate) SetArchitecture(v string) *ItemCreate {
	_c.mutation.SetArchitecture(v)
	return _c
}

// SetNillableArchitecture sets the "architecture" field if the given value is not nil.
func (_c *ItemCreate) SetNillableArchitecture(v *string) *ItemCreate {
	if v != nil {
		_c.SetArchitecture(*v)
	}
	return _c
}

// SetInnovation sets the "innovation" field.
func (_c *ItemCreate) SetInnovation(v string) *ItemCreate {
	_c.mutation.SetInnovation(v)
	return _c
}

// SetNillableInnovation sets the "innovation" field if the given value is not nil.
func (_c *ItemCreate) SetNillableInnovation(v *string) *ItemCreate {
	if v != nil {
		_c.SetInnovation(*v)
	}
	return _c
}

// SetUseCase sets the "use_case" field.
func (_c *ItemCreate) SetUseCase(v string) *ItemCreate {
	_c.mutation.SetUseCase(v)
	return _c
}

// SetNillableUseCase sets the "use_case" field if the given value is not nil.
func (_c *ItemCreate) SetNillableUseCase(v *string) *ItemCreate {
	if v != nil {
		_c.SetUseCase(*v)
	}
	return _c
}

// SetImageURL sets the "image_url" field.
func (_c *ItemCreate) SetImageURL(v string) *ItemCreate {
	_c.mutation.SetImageURL(v)
	return _c
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_c *ItemCreate) SetNillableImageURL(v *string) *ItemCreate {
	if v != nil {
		_c.SetImageURL(*v)
	}
	return _c
}

// SetTeam sets the "team" field.
func (_c *ItemCreate) SetTeam(v []string) *ItemCreate {
	_c.mutation.SetTeam(v)
	return _c
}

// SetLink sets the "link" field.
func (_c *ItemCreate) SetLink(v string) *ItemCreate {
	_c.mutation.SetLink(v)
	return _c
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_c *ItemCreate) SetNillableLink(v *string) *ItemCreate {
	if v != nil {
		_c.SetLink(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ItemCreate) SetCreatedAt(v time.Time) *ItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ItemCreate) SetNillableCreatedAt(v *time.Time) *ItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ItemCreate) SetUpdatedAt(v time.Time) *ItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ItemCreate) SetNillableUpdatedAt(v *time.Time) *ItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ItemCreate) SetID(v uuid.UUID) *ItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ItemCreate) SetNillableID(v *uuid.UUID) *ItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddIndustryIDs adds the "industries" edge to the Industry entity by IDs.
func (_c *ItemCreate) AddIndustryIDs(ids ...uuid.UUID) *ItemCreate {
	_c.mutation.AddIndustryIDs(ids...)
	return _c
}

// AddIndustries adds the "industries" edges to the Industry entity.
func (_c *ItemCreate) AddIndustries(v ...*Industry) *ItemCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIndustryIDs(ids...)
}

// AddAudienceIDs adds the "audiences" edge to the Audience entity by IDs.
func (_c *ItemCreate) AddAudienceIDs(ids ...uuid.UUID) *ItemCreate {
	_c.mutation.AddAudienceIDs(ids...)
	return _c
}

// AddAudiences adds the "audiences" edges to the Audience entity.
func (_c *ItemCreate) AddAudiences(v ...*Audience) *ItemCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAudienceIDs(ids...)
}

// AddFunctionIDs adds the "functions" edge to the BusinessFunction entity by IDs.
func (_c *ItemCreate) AddFunctionIDs(ids ...uuid.UUID) *ItemCreate {
	_c.mutation.AddFunctionIDs(ids...)
	return _c
}

// AddFunctions adds the "functions" edges to the BusinessFunction entity.
func (_c *ItemCreate) AddFunctions(v ...*BusinessFunction) *ItemCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFunctionIDs(ids...)
}

// AddTeamIDs adds the "teams" edge to the Team entity by IDs.
func (_c *ItemCreate) AddTeamIDs(ids ...uuid.UUID) *ItemCreate {
	_c.mutation.AddTeamIDs(ids...)
	return _c
}

// AddTeams adds the "teams" edges to the Team entity.
func (_c *ItemCreate) AddTeams(v ...*Team) *ItemCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTeamIDs(ids...)
}

// Mutation returns the ItemMutation object of the builder.
func (_c *ItemCreate) Mutation() *ItemMutation {
	return _c.mutation
}

// Save creates the Item in the database.
func (_c *ItemCreate) Save(ctx context.Context) (*Item, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemCreate) SaveX(ctx context.Context) *Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := item.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := item.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := item.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Item.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := item.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Item.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Item.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Item.updated_at"`)}
	}
	return nil
}

func (_c *ItemCreate) sqlSave(ctx context.Context) (*Item, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ItemCreate) createSpec() (*Item, *sqlgraph.CreateSpec) {
	var (
		_node = &Item{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(item.Table, sqlgraph.NewFieldSpec(item.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(item.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Mission(); ok {
		_spec.SetField(item.FieldMission, field.TypeString, value)
		_node.Mission = value
	}
	if value, ok := _c.mutation.Problematics(); ok {
		_spec.SetField(item.FieldProblematics, field.TypeString, value)
		_node.Problematics = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(item.FieldScope, field.TypeString, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.Audience(); ok {
		_spec.SetField(item.FieldAudience, field.TypeString, value)
		_node.Audience = value
	}
	if value, ok := _c.mutation.HowItWorks(); ok {
		_spec.SetField(item.FieldHowItWorks, field.TypeString, value)
		_node.HowItWorks = value
	}
	if value, ok := _c.mutation.Architecture(); ok {
		_spec.SetField(item.FieldArchitecture, field.TypeString, value)
		_node.Architecture = value
	}
	if value, ok := _c.mutation.Innovation(); ok {
		_spec.SetField(item.FieldInnovation, field.TypeString, value)
		_node.Innovation = value
	}
	if value, ok := _c.mutation.UseCase(); ok {
		_spec.SetField(item.FieldUseCase, field.TypeString, value)
		_node.UseCase = value
	}
	if value, ok := _c.mutation.ImageURL(); ok {
		_spec.SetField(item.FieldImageURL, field.TypeString, value)
		_node.ImageURL = &value
	}
	if value, ok := _c.mutation.Team(); ok {
		_spec.SetField(item.FieldTeam, field.TypeJSON, value)
		_node.Team = value
	}
	if value, ok := _c.mutation.Link(); ok {
		_spec.SetField(item.FieldLink, field.TypeString, value)
		_node.Link = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(item.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(item.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.IndustriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   item.IndustriesTable,
			Columns: item.IndustriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(industry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AudiencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   item.AudiencesTable,
			Columns: item.AudiencesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audience.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FunctionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   item.FunctionsTable,
			Columns: item.FunctionsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(businessfunction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TeamsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   item.TeamsTable,
			Columns: item.TeamsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ItemCreateBulk is the builder for creating many Item entities in bulk.
type ItemCreateBulk struct {
	config
	err      error
	builders []*ItemCreate
}

// Save creates the Item entities in the database.
func (_c *ItemCreateBulk) Save(ctx context.Context) ([]*Item, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Item, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ItemCreateBulk) SaveX(ctx context.Context) []*Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
