// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/smartjects/importer/gen/ent/audience"
	"github.com/smartjects/importer/gen/ent/businessfunction"
	"github.com/smartjects/importer/gen/ent/industry"
	"github.com/smartjects/importer/gen/ent/item"
	"github.com/smartjects/importer/gen/ent/predicate"
	"github.com/smartjects/importer/gen/ent/team"
)

// ItemUpdate is the builder for updating Item entities.
type ItemUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdate) Where(ps ...predicate.Item) *ItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ItemUpdate) SetTitle(v string) *ItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableTitle(v *string) *ItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMission sets the "mission" field.
func (_u *ItemUpdate) SetMission(v string) *ItemUpdate {
	_u.mutation.SetMission(v)
	return _u
}

// SetNillableMission sets the "mission" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableMission(v *string) *ItemUpdate {
	if v != nil {
		_u.SetMission(*v)
	}
	return _u
}

// ClearMission clears the value of the "mission" field.
func (_u *ItemUpdate) ClearMission() *ItemUpdate {
	_u.mutation.ClearMission()
	return _u
}

// SetProblematics sets the "problematics" field.
func (_u *ItemUpdate) SetProblematics(v string) *ItemUpdate {
	_u.mutation.SetProblematics(v)
	return _u
}

// SetNillableProblematics sets the "problematics" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableProblematics(v *string) *ItemUpdate {
	if v != nil {
		_u.SetProblematics(*v)
	}
	return _u
}

// ClearProblematics clears the value of the "problematics" field.
func (_u *ItemUpdate) ClearProblematics() *ItemUpdate {
	_u.mutation.ClearProblematics()
	return _u
}

// SetScope sets the "scope" field.
func (_u *ItemUpdate) SetScope(v string) *ItemUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableScope(v *string) *ItemUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// ClearScope clears the value of the "scope" field.
func (_u *ItemUpdate) ClearScope() *ItemUpdate {
	_u.mutation.ClearScope()
	return _u
}

// SetAudience sets the "audience" field.
func (_u *ItemUpdate) SetAudience(v string) *ItemUpdate {
	_u.mutation.SetAudience(v)
	return _u
}

// SetNillableAudience sets the "audience" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableAudience(v *string) *ItemUpdate {
	if v != nil {
		_u.SetAudience(*v)
	}
	return _u
}

// ClearAudience clears the value of the "audience" field.
func (_u *ItemUpdate) ClearAudience() *ItemUpdate {
	_u.mutation.ClearAudience()
	return _u
}

// SetHowItWorks sets the "how_it_works" field.
func (_u *ItemUpdate) SetHowItWorks(v string) *ItemUpdate {
	_u.mutation.SetHowItWorks(v)
	return _u
}

// SetNillableHowItWorks sets the "how_it_works" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableHowItWorks(v *string) *ItemUpdate {
	if v != nil {
		_u.SetHowItWorks(*v)
	}
	return _u
}

// ClearHowItWorks clears the value of the "how_it_works" field.
func (_u *ItemUpdate) ClearHowItWorks() *ItemUpdate {
	_u.mutation.ClearHowItWorks()
	return _u
}

// SetArchitecture sets the "architecture" field.
func (_u *ItemUpdate) SetArchitecture(v string) *ItemUpdate {
	_u.mutation.SetArchitecture(v)
	return _u
}

// SetNillableArchitecture sets the "architecture" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableArchitecture(v *string) *ItemUpdate {
	if v != nil {
		_u.SetArchitecture(*v)
	}
	return _u
}

// ClearArchitecture clears the value of the "architecture" field.
func (_u *ItemUpdate) ClearArchitecture() *ItemUpdate {
	_u.mutation.ClearArchitecture()
	return _u
}

// SetInnovation sets the "innovation" field.
func (_u *ItemUpdate) SetInnovation(v string) *ItemUpdate {
	_u.mutation.SetInnovation(v)
	return _u
}

// SetNillableInnovation sets the "innovation" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableInnovation(v *string) *ItemUpdate {
	if v != nil {
		_u.SetInnovation(*v)
	}
	return _u
}

// ClearInnovation clears the value of the "innovation" field.
func (_u *ItemUpdate) ClearInnovation() *ItemUpdate {
	_u.mutation.ClearInnovation()
	return _u
}

// SetUseCase sets the "use_case" field.
func (_u *ItemUpdate) SetUseCase(v string) *ItemUpdate {
	_u.mutation.SetUseCase(v)
	return _u
}

// SetNillableUseCase sets the "use_case" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableUseCase(v *string) *ItemUpdate {
	if v != nil {
		_u.SetUseCase(*v)
	}
	return _u
}

// ClearUseCase clears the value of the "use_case" field.
func (_u *ItemUpdate) ClearUseCase() *ItemUpdate {
	_u.mutation.ClearUseCase()
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *ItemUpdate) SetImageURL(v string) *ItemUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableImageURL(v *string) *ItemUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *ItemUpdate) ClearImageURL() *ItemUpdate {
	_u.mutation.ClearImageURL()
	return _u
}

// SetTeam sets the "team" field.
func (_u *ItemUpdate) SetTeam(v []string) *ItemUpdate {
	_u.mutation.SetTeam(v)
	return _u
}

// AppendTeam appends value to the "team" field.
func (_u *ItemUpdate) AppendTeam(v []string) *ItemUpdate {
	_u.mutation.AppendTeam(v)
	return _u
}

// ClearTeam clears the value of the "team" field.
func (_u *ItemUpdate) ClearTeam() *ItemUpdate {
	_u.mutation.ClearTeam()
	return _u
}

// SetLink sets the "link" field.
func (_u *ItemUpdate) SetLink(v string) *ItemUpdate {
	_u.mutation.SetLink(v)
	return _u
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableLink(v *string) *ItemUpdate {
	if v != nil {
		_u.SetLink(*v)
	}
	return _u
}

// ClearLink clears the value of the "link" field.
func (_u *ItemUpdate) ClearLink() *ItemUpdate {
	_u.mutation.ClearLink()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ItemUpdate) SetCreatedAt(v time.Time) *ItemUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableCreatedAt(v *time.Time) *ItemUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItemUpdate) SetUpdatedAt(v time.Time) *ItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddIndustryIDs adds the "industries" edge to the Industry entity by IDs.
func (_u *ItemUpdate) AddIndustryIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.AddIndustryIDs(ids...)
	return _u
}

// AddIndustries adds the "industries" edges to the Industry entity.
func (_u *ItemUpdate) AddIndustries(v ...*Industry) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIndustryIDs(ids...)
}

// AddAudienceIDs adds the "audiences" edge to the Audience entity by IDs.
func (_u *ItemUpdate) AddAudienceIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.AddAudienceIDs(ids...)
	return _u
}

// AddAudiences adds the "audiences" edges to the Audience entity.
func (_u *ItemUpdate) AddAudiences(v ...*Audience) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAudienceIDs(ids...)
}

// AddFunctionIDs adds the "functions" edge to the BusinessFunction entity by IDs.
func (_u *ItemUpdate) AddFunctionIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.AddFunctionIDs(ids...)
	return _u
}

// AddFunctions adds the "functions" edges to the BusinessFunction entity.
func (_u *ItemUpdate) AddFunctions(v ...*BusinessFunction) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFunctionIDs(ids...)
}

// AddTeamIDs adds the "teams" edge to the Team entity by IDs.
func (_u *ItemUpdate) AddTeamIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.AddTeamIDs(ids...)
	return _u
}

// AddTeams adds the "teams" edges to the Team entity.
func (_u *ItemUpdate) AddTeams(v ...*Team) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTeamIDs(ids...)
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdate) Mutation() *ItemMutation {
	return _u.mutation
}

// ClearIndustries clears all "industries" edges to the Industry entity.
func (_u *ItemUpdate) ClearIndustries() *ItemUpdate {
	_u.mutation.ClearIndustries()
	return _u
}

// RemoveIndustryIDs removes the "industries" edge to Industry entities by IDs.
func (_u *ItemUpdate) RemoveIndustryIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.RemoveIndustryIDs(ids...)
	return _u
}

// RemoveIndustries removes "industries" edges to Industry entities.
func (_u *ItemUpdate) RemoveIndustries(v ...*Industry) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIndustryIDs(ids...)
}

// ClearAudiences clears all "audiences" edges to the Audience entity.
func (_u *ItemUpdate) ClearAudiences() *ItemUpdate {
	_u.mutation.ClearAudiences()
	return _u
}

// RemoveAudienceIDs removes the "audiences" edge to Audience entities by IDs.
func (_u *ItemUpdate) RemoveAudienceIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.RemoveAudienceIDs(ids...)
	return _u
}

// RemoveAudiences removes "audiences" edges to Audience entities.
func (_u *ItemUpdate) RemoveAudiences(v ...*Audience) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAudienceIDs(ids...)
}

// ClearFunctions clears all "functions" edges to the BusinessFunction entity.
func (_u *ItemUpdate) ClearFunctions() *ItemUpdate {
	_u.mutation.ClearFunctions()
	return _u
}

// RemoveFunctionIDs removes the "functions" edge to BusinessFunction entities by IDs.
func (_u *ItemUpdate) RemoveFunctionIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.RemoveFunctionIDs(ids...)
	return _u
}

// RemoveFunctions removes "functions" edges to BusinessFunction entities.
func (_u *ItemUpdate) RemoveFunctions(v ...*BusinessFunction) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFunctionIDs(ids...)
}

// ClearTeams clears all "teams" edges to the Team entity.
func (_u *ItemUpdate) ClearTeams() *ItemUpdate {
	_u.mutation.ClearTeams()
	return _u
}

// RemoveTeamIDs removes the "teams" edge to Team entities by IDs.
func (_u *ItemUpdate) RemoveTeamIDs(ids ...uuid.UUID) *ItemUpdate {
	_u.mutation.RemoveTeamIDs(ids...)
	return _u
}

// RemoveTeams removes "teams" edges to Team entities.
func (_u *ItemUpdate) RemoveTeams(v ...*Team) *ItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTeamIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := item.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := item.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Item.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(item.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mission(); ok {
		_spec.SetField(item.FieldMission, field.TypeString, value)
	}
	if _u.mutation.MissionCleared() {
		_spec.ClearField(item.FieldMission, field.TypeString)
	}
	if value, ok := _u.mutation.Problematics(); ok {
		_spec.SetField(item.FieldProblematics, field.TypeString, value)
	}
	if _u.mutation.ProblematicsCleared() {
		_spec.ClearField(item.FieldProblematics, field.TypeString)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(item.FieldScope, field.TypeString, value)
	}
	if _u.mutation.ScopeCleared() {
		_spec.ClearField(item.FieldScope, field.TypeString)
	}
	if value, ok := _u.mutation.Audience(); ok {
		_spec.SetField(item.FieldAudience, field.TypeString, value)
	}
	if _u.mutation.AudienceCleared() {
		_spec.ClearField(item.FieldAudience, field.TypeString)
	}
	if value, ok := _u.mutation.HowItWorks(); ok {
		_spec.SetField(item.FieldHowItWorks, field.TypeString, value)
	}
	if _u.mutation.HowItWorksCleared() {
		_spec.ClearField(item.FieldHowItWorks, field.TypeString)
	}
	if value, ok := _u.mutation.Architecture(); ok {
		_spec.SetField(item.FieldArchitecture, field.TypeString, value)
	}
	if _u.mutation.ArchitectureCleared() {
		_spec.ClearField(item.FieldArchitecture, field.TypeString)
	}
	if value, ok := _u.mutation.Innovation(); ok {
		_spec.SetField(item.FieldInnovation, field.TypeString, value)
	}
	if _u.mutation.InnovationCleared() {
		_spec.ClearField(item.FieldInnovation, field.TypeString)
	}
	if value, ok := _u.mutation.UseCase(); ok {
		_spec.SetField(item.FieldUseCase, field.TypeString, value)
	}
	if _u.mutation.UseCaseCleared() {
		_spec.ClearField(item.FieldUseCase, field.TypeString)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(item.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(item.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.Team(); ok {
		_spec.SetField(item.FieldTeam, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTeam(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldTeam, value)
		})
	}
	if _u.mutation.TeamCleared() {
		_spec.ClearField(item.FieldTeam, field.TypeJSON)
	}
	if value, ok := _u.mutation.Link(); ok {
		_spec.SetField(item.FieldLink, field.TypeString, value)
	}
	if _u.mutation.LinkCleared() {
		_spec.ClearField(item.FieldLink, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(item.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(item.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IndustriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIndustriesIDs(); len(nodes) > 0 && !_u.mutation.IndustriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IndustriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AudiencesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAudiencesIDs(); len(nodes) > 0 && !_u.mutation.AudiencesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AudiencesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FunctionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFunctionsIDs(); len(nodes) > 0 && !_u.mutation.FunctionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FunctionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TeamsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTeamsIDs(); len(nodes) > 0 && !_u.mutation.TeamsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemUpdateOne is the builder for updating a single Item entity.
type ItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMutation
}

// SetTitle sets the "title" field.
func (_u *ItemUpdateOne) SetTitle(v string) *ItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableTitle(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMission sets the "mission" field.
func (_u *ItemUpdateOne) SetMission(v string) *ItemUpdateOne {
	_u.mutation.SetMission(v)
	return _u
}

// SetNillableMission sets the "mission" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableMission(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetMission(*v)
	}
	return _u
}

// ClearMission clears the value of the "mission" field.
func (_u *ItemUpdateOne) ClearMission() *ItemUpdateOne {
	_u.mutation.ClearMission()
	return _u
}

// SetProblematics sets the "problematics" field.
func (_u *ItemUpdateOne) SetProblematics(v string) *ItemUpdateOne {
	_u.mutation.SetProblematics(v)
	return _u
}

// SetNillableProblematics sets the "problematics" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableProblematics(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetProblematics(*v)
	}
	return _u
}

// ClearProblematics clears the value of the "problematics" field.
func (_u *ItemUpdateOne) ClearProblematics() *ItemUpdateOne {
	_u.mutation.ClearProblematics()
	return _u
}

// SetScope sets the "scope" field.
func (_u *ItemUpdateOne) SetScope(v string) *ItemUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableScope(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// ClearScope clears the value of the "scope" field.
func (_u *ItemUpdateOne) ClearScope() *ItemUpdateOne {
	_u.mutation.ClearScope()
	return _u
}

// SetAudience sets the "audience" field.
func (_u *ItemUpdateOne) SetAudience(v string) *ItemUpdateOne {
	_u.mutation.SetAudience(v)
	return _u
}

// SetNillableAudience sets the "audience" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableAudience(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetAudience(*v)
	}
	return _u
}

// ClearAudience clears the value of the "audience" field.
func (_u *ItemUpdateOne) ClearAudience() *ItemUpdateOne {
	_u.mutation.ClearAudience()
	return _u
}

// SetHowItWorks sets the "how_it_works" field.
func (_u *ItemUpdateOne) SetHowItWorks(v string) *ItemUpdateOne {
	_u.mutation.SetHowItWorks(v)
	return _u
}

// SetNillableHowItWorks sets the "how_it_works" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableHowItWorks(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetHowItWorks(*v)
	}
	return _u
}

// ClearHowItWorks clears the value of the "how_it_works" field.
func (_u *ItemUpdateOne) ClearHowItWorks() *ItemUpdateOne {
	_u.mutation.ClearHowItWorks()
	return _u
}

// SetArchitecture sets the "architecture" field.
func (_u *ItemUpdateOne) SetArchitecture(v string) *ItemUpdateOne {
	_u.mutation.SetArchitecture(v)
	return _u
}

// SetNillableArchitecture sets the "architecture" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableArchitecture(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetArchitecture(*v)
	}
	return _u
}

// ClearArchitecture clears the value of the "architecture" field.
func (_u *ItemUpdateOne) ClearArchitecture() *ItemUpdateOne {
	_u.mutation.ClearArchitecture()
	return _u
}

// SetInnovation sets the "innovation" field.
func (_u *ItemUpdateOne) SetInnovation(v string) *ItemUpdateOne {
	_u.mutation.SetInnovation(v)
	return _u
}

// SetNillableInnovation sets the "innovation" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableInnovation(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetInnovation(*v)
	}
	return _u
}

// ClearInnovation clears the value of the "innovation" field.
func (_u *ItemUpdateOne) ClearInnovation() *ItemUpdateOne {
	_u.mutation.ClearInnovation()
	return _u
}

// SetUseCase sets the "use_case" field.
func (_u *ItemUpdateOne) SetUseCase(v string) *ItemUpdateOne {
	_u.mutation.SetUseCase(v)
	return _u
}

// SetNillableUseCase sets the "use_case" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableUseCase(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetUseCase(*v)
	}
	return _u
}

// ClearUseCase clears the value of the "use_case" field.
func (_u *ItemUpdateOne) ClearUseCase() *ItemUpdateOne {
	_u.mutation.ClearUseCase()
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *ItemUpdateOne) SetImageURL(v string) *ItemUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableImageURL(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *ItemUpdateOne) ClearImageURL() *ItemUpdateOne {
	_u.mutation.ClearImageURL()
	return _u
}

// SetTeam sets the "team" field.
func (_u *ItemUpdateOne) SetTeam(v []string) *ItemUpdateOne {
	_u.mutation.SetTeam(v)
	return _u
}

// AppendTeam appends value to the "team" field.
func (_u *ItemUpdateOne) AppendTeam(v []string) *ItemUpdateOne {
	_u.mutation.AppendTeam(v)
	return _u
}

// ClearTeam clears the value of the "team" field.
func (_u *ItemUpdateOne) ClearTeam() *ItemUpdateOne {
	_u.mutation.ClearTeam()
	return _u
}

// SetLink sets the "link" field.
func (_u *ItemUpdateOne) SetLink(v string) *ItemUpdateOne {
	_u.mutation.SetLink(v)
	return _u
}

// SetNillableLink sets the "link" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableLink(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetLink(*v)
	}
	return _u
}

// ClearLink clears the value of the "link" field.
func (_u *ItemUpdateOne) ClearLink() *ItemUpdateOne {
	_u.mutation.ClearLink()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ItemUpdateOne) SetCreatedAt(v time.Time) *ItemUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableCreatedAt(v *time.Time) *ItemUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItemUpdateOne) SetUpdatedAt(v time.Time) *ItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddIndustryIDs adds the "industries" edge to the Industry entity by IDs.
func (_u *ItemUpdateOne) AddIndustryIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.AddIndustryIDs(ids...)
	return _u
}

// AddIndustries adds the "industries" edges to the Industry entity.
func (_u *ItemUpdateOne) AddIndustries(v ...*Industry) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIndustryIDs(ids...)
}

// AddAudienceIDs adds the "audiences" edge to the Audience entity by IDs.
func (_u *ItemUpdateOne) AddAudienceIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.AddAudienceIDs(ids...)
	return _u
}

// AddAudiences adds the "audiences" edges to the Audience entity.
func (_u *ItemUpdateOne) AddAudiences(v ...*Audience) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAudienceIDs(ids...)
}

// AddFunctionIDs adds the "functions" edge to the BusinessFunction entity by IDs.
func (_u *ItemUpdateOne) AddFunctionIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.AddFunctionIDs(ids...)
	return _u
}

// AddFunctions adds the "functions" edges to the BusinessFunction entity.
func (_u *ItemUpdateOne) AddFunctions(v ...*BusinessFunction) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFunctionIDs(ids...)
}

// AddTeamIDs adds the "teams" edge to the Team entity by IDs.
func (_u *ItemUpdateOne) AddTeamIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.AddTeamIDs(ids...)
	return _u
}

// AddTeams adds the "teams" edges to the Team entity.
func (_u *ItemUpdateOne) AddTeams(v ...*Team) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTeamIDs(ids...)
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdateOne) Mutation() *ItemMutation {
	return _u.mutation
}

// ClearIndustries clears all "industries" edges to the Industry entity.
func (_u *ItemUpdateOne) ClearIndustries() *ItemUpdateOne {
	_u.mutation.ClearIndustries()
	return _u
}

// RemoveIndustryIDs removes the "industries" edge to Industry entities by IDs.
func (_u *ItemUpdateOne) RemoveIndustryIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.RemoveIndustryIDs(ids...)
	return _u
}

// RemoveIndustries removes "industries" edges to Industry entities.
func (_u *ItemUpdateOne) RemoveIndustries(v ...*Industry) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIndustryIDs(ids...)
}

// ClearAudiences clears all "audiences" edges to the Audience entity.
func (_u *ItemUpdateOne) ClearAudiences() *ItemUpdateOne {
	_u.mutation.ClearAudiences()
	return _u
}

// RemoveAudienceIDs removes the "audiences" edge to Audience entities by IDs.
func (_u *ItemUpdateOne) RemoveAudienceIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.RemoveAudienceIDs(ids...)
	return _u
}

// RemoveAudiences removes "audiences" edges to Audience entities.
func (_u *ItemUpdateOne) RemoveAudiences(v ...*Audience) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAudienceIDs(ids...)
}

// ClearFunctions clears all "functions" edges to the BusinessFunction entity.
func (_u *ItemUpdateOne) ClearFunctions() *ItemUpdateOne {
	_u.mutation.ClearFunctions()
	return _u
}

// RemoveFunctionIDs removes the "functions" edge to BusinessFunction entities by IDs.
func (_u *ItemUpdateOne) RemoveFunctionIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.RemoveFunctionIDs(ids...)
	return _u
}

// RemoveFunctions removes "functions" edges to BusinessFunction entities.
func (_u *ItemUpdateOne) RemoveFunctions(v ...*BusinessFunction) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFunctionIDs(ids...)
}

// ClearTeams clears all "teams" edges to the Team entity.
func (_u *ItemUpdateOne) ClearTeams() *ItemUpdateOne {
	_u.mutation.ClearTeams()
	return _u
}

// RemoveTeamIDs removes the "teams" edge to Team entities by IDs.
func (_u *ItemUpdateOne) RemoveTeamIDs(ids ...uuid.UUID) *ItemUpdateOne {
	_u.mutation.RemoveTeamIDs(ids...)
	return _u
}

// RemoveTeams removes "teams" edges to Team entities.
func (_u *ItemUpdateOne) RemoveTeams(v ...*Team) *ItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTeamIDs(ids...)
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdateOne) Where(ps ...predicate.Item) *ItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemUpdateOne) Select(field string, fields ...string) *ItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Item entity.
func (_u *ItemUpdateOne) Save(ctx context.Context) (*Item, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdateOne) SaveX(ctx context.Context) *Item {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := item.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := item.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Item.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdateOne) sqlSave(ctx context.Context) (_node *Item, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Item.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, item.FieldID)
		for _, f := range fields {
			if !item.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != item.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(item.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mission(); ok {
		_spec.SetField(item.FieldMission, field.TypeString, value)
	}
	if _u.mutation.MissionCleared() {
		_spec.ClearField(item.FieldMission, field.TypeString)
	}
	if value, ok := _u.mutation.Problematics(); ok {
		_spec.SetField(item.FieldProblematics, field.TypeString, value)
	}
	if _u.mutation.ProblematicsCleared() {
		_spec.ClearField(item.FieldProblematics, field.TypeString)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(item.FieldScope, field.TypeString, value)
	}
	if _u.mutation.ScopeCleared() {
		_spec.ClearField(item.FieldScope, field.TypeString)
	}
	if value, ok := _u.mutation.Audience(); ok {
		_spec.SetField(item.FieldAudience, field.TypeString, value)
	}
	if _u.mutation.AudienceCleared() {
		_spec.ClearField(item.FieldAudience, field.TypeString)
	}
	if value, ok := _u.mutation.HowItWorks(); ok {
		_spec.SetField(item.FieldHowItWorks, field.TypeString, value)
	}
	if _u.mutation.HowItWorksCleared() {
		_spec.ClearField(item.FieldHowItWorks, field.TypeString)
	}
	if value, ok := _u.mutation.Architecture(); ok {
		_spec.SetField(item.FieldArchitecture, field.TypeString, value)
	}
	if _u.mutation.ArchitectureCleared() {
		_spec.ClearField(item.FieldArchitecture, field.TypeString)
	}
	if value, ok := _u.mutation.Innovation(); ok {
		_spec.SetField(item.FieldInnovation, field.TypeString, value)
	}
	if _u.mutation.InnovationCleared() {
		_spec.ClearField(item.FieldInnovation, field.TypeString)
	}
	if value, ok := _u.mutation.UseCase(); ok {
		_spec.SetField(item.FieldUseCase, field.TypeString, value)
	}
	if _u.mutation.UseCaseCleared() {
		_spec.ClearField(item.FieldUseCase, field.TypeString)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(item.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(item.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.Team(); ok {
		_spec.SetField(item.FieldTeam, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTeam(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldTeam, value)
		})
	}
	if _u.mutation.TeamCleared() {
		_spec.ClearField(item.FieldTeam, field.TypeJSON)
	}
	if value, ok := _u.mutation.Link(); ok {
		_spec.SetField(item.FieldLink, field.TypeString, value)
	}
	if _u.mutation.LinkCleared() {
		_spec.ClearField(item.FieldLink, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(item.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(item.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IndustriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIndustriesIDs(); len(nodes) > 0 && !_u.mutation.IndustriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IndustriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AudiencesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAudiencesIDs(); len(nodes) > 0 && !_u.mutation.AudiencesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AudiencesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FunctionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFunctionsIDs(); len(nodes) > 0 && !_u.mutation.FunctionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FunctionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TeamsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTeamsIDs(); len(nodes) > 0 && !_u.mutation.TeamsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Item{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
