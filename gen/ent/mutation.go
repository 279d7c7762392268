// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/smartjects/importer/gen/ent/audience"
	"github.com/smartjects/importer/gen/ent/businessfunction"
	"github.com/smartjects/importer/gen/ent/industry"
	"github.com/smartjects/importer/gen/ent/item"
	"github.com/smartjects/importer/gen/ent/predicate"
	"github.com/smartjects/importer/gen/ent/team"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAudience         = "Audience"
	TypeBusinessFunction = "BusinessFunction"
	TypeIndustry         = "Industry"
	TypeItem             = "Item"
	TypeTeam             = "Team"
)

// AudienceMutation represents an operation that mutates the Audience nodes in the graph.
type AudienceMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	clearedFields map[string]struct{}
	items         map[uuid.UUID]struct{}
	removeditems  map[uuid.UUID]struct{}
	cleareditems  bool
	done          bool
	oldValue      func(context.Context) (*Audience, error)
	predicates    []predicate.Audience
}

var _ ent.Mutation = (*AudienceMutation)(nil)

// audienceOption allows management of the mutation configuration using functional options.
type audienceOption func(*AudienceMutation)

// newAudienceMutation creates new mutation for the Audience entity.
func newAudienceMutation(c config, op Op, opts ...audienceOption) *AudienceMutation {
	m := &AudienceMutation{
		config:        c,
		op:            op,
		typ:           TypeAudience,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAudienceID sets the ID field of the mutation.
func withAudienceID(id uuid.UUID) audienceOption {
	return func(m *AudienceMutation) {
		var (
			err   error
			once  sync.Once
			value *Audience
		)
		m.oldValue = func(ctx context.Context) (*Audience, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Audience.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAudience sets the old Audience of the mutation.
func withAudience(node *Audience) audienceOption {
	return func(m *AudienceMutation) {
		m.oldValue = func(context.Context) (*Audience, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AudienceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AudienceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Audience entities.
func (m *AudienceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AudienceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AudienceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Audience.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AudienceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AudienceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Audience entity.
// If the Audience object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AudienceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AudienceMutation) ResetName() {
	m.name = nil
}

// AddItemIDs adds the "items" edge to the Item entity by ids.
func (m *AudienceMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the Item entity.
func (m *AudienceMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the Item entity was cleared.
func (m *AudienceMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the Item entity by IDs.
func (m *AudienceMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the Item entity.
func (m *AudienceMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *AudienceMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *AudienceMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the AudienceMutation builder.
func (m *AudienceMutation) Where(ps ...predicate.Audience) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AudienceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AudienceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Audience, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AudienceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AudienceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Audience).
func (m *AudienceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AudienceMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.name != nil {
		fields = append(fields, audience.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AudienceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case audience.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AudienceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case audience.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Audience field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AudienceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case audience.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Audience field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AudienceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AudienceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AudienceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Audience numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AudienceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AudienceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AudienceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Audience nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AudienceMutation) ResetField(name string) error {
	switch name {
	case audience.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Audience field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AudienceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.items != nil {
		edges = append(edges, audience.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AudienceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case audience.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AudienceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeditems != nil {
		edges = append(edges, audience.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AudienceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case audience.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AudienceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditems {
		edges = append(edges, audience.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AudienceMutation) EdgeCleared(name string) bool {
	switch name {
	case audience.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AudienceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Audience unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AudienceMutation) ResetEdge(name string) error {
	switch name {
	case audience.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown Audience edge %s", name)
}

// BusinessFunctionMutation represents an operation that mutates the BusinessFunction nodes in the graph.
type BusinessFunctionMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	clearedFields map[string]struct{}
	items         map[uuid.UUID]struct{}
	removeditems  map[uuid.UUID]struct{}
	cleareditems  bool
	done          bool
	oldValue      func(context.Context) (*BusinessFunction, error)
	predicates    []predicate.BusinessFunction
}

var _ ent.Mutation = (*BusinessFunctionMutation)(nil)

// businessfunctionOption allows management of the mutation configuration using functional options.
type businessfunctionOption func(*BusinessFunctionMutation)

// newBusinessFunctionMutation creates new mutation for the BusinessFunction entity.
func newBusinessFunctionMutation(c config, op Op, opts ...businessfunctionOption) *BusinessFunctionMutation {
	m := &BusinessFunctionMutation{
		config:        c,
		op:            op,
		typ:           TypeBusinessFunction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBusinessFunctionID sets the ID field of the mutation.
func withBusinessFunctionID(id uuid.UUID) businessfunctionOption {
	return func(m *BusinessFunctionMutation) {
		var (
			err   error
			once  sync.Once
			value *BusinessFunction
		)
		m.oldValue = func(ctx context.Context) (*BusinessFunction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BusinessFunction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBusinessFunction sets the old BusinessFunction of the mutation.
func withBusinessFunction(node *BusinessFunction) businessfunctionOption {
	return func(m *BusinessFunctionMutation) {
		m.oldValue = func(context.Context) (*BusinessFunction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BusinessFunctionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BusinessFunctionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BusinessFunction entities.
func (m *BusinessFunctionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BusinessFunctionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BusinessFunctionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BusinessFunction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *BusinessFunctionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BusinessFunctionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the BusinessFunction entity.
// If the BusinessFunction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessFunctionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BusinessFunctionMutation) ResetName() {
	m.name = nil
}

// AddItemIDs adds the "items" edge to the Item entity by ids.
func (m *BusinessFunctionMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the Item entity.
func (m *BusinessFunctionMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the Item entity was cleared.
func (m *BusinessFunctionMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the Item entity by IDs.
func (m *BusinessFunctionMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the Item entity.
func (m *BusinessFunctionMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *BusinessFunctionMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *BusinessFunctionMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the BusinessFunctionMutation builder.
func (m *BusinessFunctionMutation) Where(ps ...predicate.BusinessFunction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BusinessFunctionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BusinessFunctionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BusinessFunction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BusinessFunctionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BusinessFunctionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BusinessFunction).
func (m *BusinessFunctionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BusinessFunctionMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.name != nil {
		fields = append(fields, businessfunction.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BusinessFunctionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case businessfunction.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BusinessFunctionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case businessfunction.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown BusinessFunction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessFunctionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case businessfunction.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown BusinessFunction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BusinessFunctionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BusinessFunctionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessFunctionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BusinessFunction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BusinessFunctionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BusinessFunctionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BusinessFunctionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BusinessFunction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BusinessFunctionMutation) ResetField(name string) error {
	switch name {
	case businessfunction.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown BusinessFunction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BusinessFunctionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.items != nil {
		edges = append(edges, businessfunction.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BusinessFunctionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case businessfunction.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BusinessFunctionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeditems != nil {
		edges = append(edges, businessfunction.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BusinessFunctionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case businessfunction.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BusinessFunctionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditems {
		edges = append(edges, businessfunction.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BusinessFunctionMutation) EdgeCleared(name string) bool {
	switch name {
	case businessfunction.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BusinessFunctionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown BusinessFunction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BusinessFunctionMutation) ResetEdge(name string) error {
	switch name {
	case businessfunction.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown BusinessFunction edge %s", name)
}

// IndustryMutation represents an operation that mutates the Industry nodes in the graph.
type IndustryMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	clearedFields map[string]struct{}
	items         map[uuid.UUID]struct{}
	removeditems  map[uuid.UUID]struct{}
	cleareditems  bool
	done          bool
	oldValue      func(context.Context) (*Industry, error)
	predicates    []predicate.Industry
}

var _ ent.Mutation = (*IndustryMutation)(nil)

// industryOption allows management of the mutation configuration using functional options.
type industryOption func(*IndustryMutation)

// newIndustryMutation creates new mutation for the Industry entity.
func newIndustryMutation(c config, op Op, opts ...industryOption) *IndustryMutation {
	m := &IndustryMutation{
		config:        c,
		op:            op,
		typ:           TypeIndustry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIndustryID sets the ID field of the mutation.
func withIndustryID(id uuid.UUID) industryOption {
	return func(m *IndustryMutation) {
		var (
			err   error
			once  sync.Once
			value *Industry
		)
		m.oldValue = func(ctx context.Context) (*Industry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Industry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIndustry sets the old Industry of the mutation.
func withIndustry(node *Industry) industryOption {
	return func(m *IndustryMutation) {
		m.oldValue = func(context.Context) (*Industry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IndustryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IndustryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Industry entities.
func (m *IndustryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IndustryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IndustryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Industry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *IndustryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *IndustryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Industry entity.
// If the Industry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IndustryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *IndustryMutation) ResetName() {
	m.name = nil
}

// AddItemIDs adds the "items" edge to the Item entity by ids.
func (m *IndustryMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the Item entity.
func (m *IndustryMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the Item entity was cleared.
func (m *IndustryMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the Item entity by IDs.
func (m *IndustryMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the Item entity.
func (m *IndustryMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *IndustryMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *IndustryMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the IndustryMutation builder.
func (m *IndustryMutation) Where(ps ...predicate.Industry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IndustryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IndustryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Industry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IndustryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IndustryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Industry).
func (m *IndustryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IndustryMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.name != nil {
		fields = append(fields, industry.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IndustryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case industry.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IndustryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case industry.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Industry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IndustryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case industry.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Industry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IndustryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IndustryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IndustryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Industry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IndustryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IndustryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IndustryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Industry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IndustryMutation) ResetField(name string) error {
	switch name {
	case industry.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Industry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IndustryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.items != nil {
		edges = append(edges, industry.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IndustryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case industry.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IndustryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeditems != nil {
		edges = append(edges, industry.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IndustryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case industry.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IndustryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditems {
		edges = append(edges, industry.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IndustryMutation) EdgeCleared(name string) bool {
	switch name {
	case industry.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IndustryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Industry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IndustryMutation) ResetEdge(name string) error {
	switch name {
	case industry.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown Industry edge %s", name)
}

// ItemMutation represents an operation that mutates the Item nodes in the graph.
type ItemMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	title             *string
	mission           *string
	problematics      *string
	scope             *string
	audience          *string
	how_it_works      *string
	architecture      *string
	innovation        *string
	use_case          *string
	image_url         *string
	team              *[]string
	appendteam        []string
	link              *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	industries        map[uuid.UUID]struct{}
	removedindustries map[uuid.UUID]struct{}
	clearedindustries bool
	audiences         map[uuid.UUID]struct{}
	removedaudiences  map[uuid.UUID]struct{}
	clearedaudiences  bool
	functions         map[uuid.UUID]struct{}
	removedfunctions  map[uuid.UUID]struct{}
	clearedfunctions  bool
	teams             map[uuid.UUID]struct{}
	removedteams      map[uuid.UUID]struct{}
	clearedteams      bool
	done              bool
	oldValue          func(context.Context) (*Item, error)
	predicates        []predicate.Item
}

var _ ent.Mutation = (*ItemMutation)(nil)

// itemOption allows management of the mutation configuration using functional options.
type itemOption func(*ItemMutation)

// newItemMutation creates new mutation for the Item entity.
func newItemMutation(c config, op Op, opts ...itemOption) *ItemMutation {
	m := &ItemMutation{
		config:        c,
		op:            op,
		typ:           TypeItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItemID sets the ID field of the mutation.
func withItemID(id uuid.UUID) itemOption {
	return func(m *ItemMutation) {
		var (
			err   error
			once  sync.Once
			value *Item
		)
		m.oldValue = func(ctx context.Context) (*Item, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Item.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItem sets the old Item of the mutation.
func withItem(node *Item) itemOption {
	return func(m *ItemMutation) {
		m.oldValue = func(context.Context) (*Item, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Item entities.
func (m *ItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Item.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *ItemMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ItemMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ItemMutation) ResetTitle() {
	m.title = nil
}

// SetMission sets the "mission" field.
func (m *ItemMutation) SetMission(s string) {
	m.mission = &s
}

// Mission returns the value of the "mission" field in the mutation.
func (m *ItemMutation) Mission() (r string, exists bool) {
	v := m.mission
	if v == nil {
		return
	}
	return *v, true
}

// OldMission returns the old "mission" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldMission(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMission is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMission requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMission: %w", err)
	}
	return oldValue.Mission, nil
}

// ClearMission clears the value of the "mission" field.
func (m *ItemMutation) ClearMission() {
	m.mission = nil
	m.clearedFields[item.FieldMission] = struct{}{}
}

// MissionCleared returns if the "mission" field was cleared in this mutation.
func (m *ItemMutation) MissionCleared() bool {
	_, ok := m.clearedFields[item.FieldMission]
	return ok
}

// ResetMission resets all changes to the "mission" field.
func (m *ItemMutation) ResetMission() {
	m.mission = nil
	delete(m.clearedFields, item.FieldMission)
}

// SetProblematics sets the "problematics" field.
func (m *ItemMutation) SetProblematics(s string) {
	m.problematics = &s
}

// Problematics returns the value of the "problematics" field in the mutation.
func (m *ItemMutation) Problematics() (r string, exists bool) {
	v := m.problematics
	if v == nil {
		return
	}
	return *v, true
}

// OldProblematics returns the old "problematics" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldProblematics(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblematics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblematics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblematics: %w", err)
	}
	return oldValue.Problematics, nil
}

// ClearProblematics clears the value of the "problematics" field.
func (m *ItemMutation) ClearProblematics() {
	m.problematics = nil
	m.clearedFields[item.FieldProblematics] = struct{}{}
}

// ProblematicsCleared returns if the "problematics" field was cleared in this mutation.
func (m *ItemMutation) ProblematicsCleared() bool {
	_, ok := m.clearedFields[item.FieldProblematics]
	return ok
}

// ResetProblematics resets all changes to the "problematics" field.
func (m *ItemMutation) ResetProblematics() {
	m.problematics = nil
	delete(m.clearedFields, item.FieldProblematics)
}

// SetScope sets the "scope" field.
func (m *ItemMutation) SetScope(s string) {
	m.scope = &s
}

// Scope returns the value of the "scope" field in the mutation.
func (m *ItemMutation) Scope() (r string, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldScope(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ClearScope clears the value of the "scope" field.
func (m *ItemMutation) ClearScope() {
	m.scope = nil
	m.clearedFields[item.FieldScope] = struct{}{}
}

// ScopeCleared returns if the "scope" field was cleared in this mutation.
func (m *ItemMutation) ScopeCleared() bool {
	_, ok := m.clearedFields[item.FieldScope]
	return ok
}

// ResetScope resets all changes to the "scope" field.
func (m *ItemMutation) ResetScope() {
	m.scope = nil
	delete(m.clearedFields, item.FieldScope)
}

// SetAudience sets the "audience" field.
func (m *ItemMutation) SetAudience(s string) {
	m.audience = &s
}

// Audience returns the value of the "audience" field in the mutation.
func (m *ItemMutation) Audience() (r string, exists bool) {
	v := m.audience
	if v == nil {
		return
	}
	return *v, true
}

// OldAudience returns the old "audience" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldAudience(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudience: %w", err)
	}
	return oldValue.Audience, nil
}

// ClearAudience clears the value of the "audience" field.
func (m *ItemMutation) ClearAudience() {
	m.audience = nil
	m.clearedFields[item.FieldAudience] = struct{}{}
}

// AudienceCleared returns if the "audience" field was cleared in this mutation.
func (m *ItemMutation) AudienceCleared() bool {
	_, ok := m.clearedFields[item.FieldAudience]
	return ok
}

// ResetAudience resets all changes to the "audience" field.
func (m *ItemMutation) ResetAudience() {
	m.audience = nil
	delete(m.clearedFields, item.FieldAudience)
}

// SetHowItWorks sets the "how_it_works" field.
func (m *ItemMutation) SetHowItWorks(s string) {
	m.how_it_works = &s
}

// HowItWorks returns the value of the "how_it_works" field in the mutation.
func (m *ItemMutation) HowItWorks() (r string, exists bool) {
	v := m.how_it_works
	if v == nil {
		return
	}
	return *v, true
}

// OldHowItWorks returns the old "how_it_works" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldHowItWorks(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHowItWorks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHowItWorks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHowItWorks: %w", err)
	}
	return oldValue.HowItWorks, nil
}

// ClearHowItWorks clears the value of the "how_it_works" field.
func (m *ItemMutation) ClearHowItWorks() {
	m.how_it_works = nil
	m.clearedFields[item.FieldHowItWorks] = struct{}{}
}

// HowItWorksCleared returns if the "how_it_works" field was cleared in this mutation.
func (m *ItemMutation) HowItWorksCleared() bool {
	_, ok := m.clearedFields[item.FieldHowItWorks]
	return ok
}

// ResetHowItWorks resets all changes to the "how_it_works" field.
func (m *ItemMutation) ResetHowItWorks() {
	m.how_it_works = nil
	delete(m.clearedFields, item.FieldHowItWorks)
}

// SetArchitecture sets the "architecture" field.
func (m *ItemMutation) SetArchitecture(s string) {
	m.architecture = &s
}

// Architecture returns the value of the "architecture" field in the mutation.
func (m *ItemMutation) Architecture() (r string, exists bool) {
	v := m.architecture
	if v == nil {
		return
	}
	return *v, true
}

// OldArchitecture returns the old "architecture" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldArchitecture(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchitecture is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchitecture requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchitecture: %w", err)
	}
	return oldValue.Architecture, nil
}

// ClearArchitecture clears the value of the "architecture" field.
func (m *ItemMutation) ClearArchitecture() {
	m.architecture = nil
	m.clearedFields[item.FieldArchitecture] = struct{}{}
}

// ArchitectureCleared returns if the "architecture" field was cleared in this mutation.
func (m *ItemMutation) ArchitectureCleared() bool {
	_, ok := m.clearedFields[item.FieldArchitecture]
	return ok
}

// ResetArchitecture resets all changes to the "architecture" field.
func (m *ItemMutation) ResetArchitecture() {
	m.architecture = nil
	delete(m.clearedFields, item.FieldArchitecture)
}

// SetInnovation sets the "innovation" field.
func (m *ItemMutation) SetInnovation(s string) {
	m.innovation = &s
}

// Innovation returns the value of the "innovation" field in the mutation.
func (m *ItemMutation) Innovation() (r string, exists bool) {
	v := m.innovation
	if v == nil {
		return
	}
	return *v, true
}

// OldInnovation returns the old "innovation" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldInnovation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInnovation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInnovation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInnovation: %w", err)
	}
	return oldValue.Innovation, nil
}

// ClearInnovation clears the value of the "innovation" field.
func (m *ItemMutation) ClearInnovation() {
	m.innovation = nil
	m.clearedFields[item.FieldInnovation] = struct{}{}
}

// InnovationCleared returns if the "innovation" field was cleared in this mutation.
func (m *ItemMutation) InnovationCleared() bool {
	_, ok := m.clearedFields[item.FieldInnovation]
	return ok
}

// ResetInnovation resets all changes to the "innovation" field.
func (m *ItemMutation) ResetInnovation() {
	m.innovation = nil
	delete(m.clearedFields, item.FieldInnovation)
}

// SetUseCase sets the "use_case" field.
func (m *ItemMutation) SetUseCase(s string) {
	m.use_case = &s
}

// UseCase returns the value of the "use_case" field in the mutation.
func (m *ItemMutation) UseCase() (r string, exists bool) {
	v := m.use_case
	if v == nil {
		return
	}
	return *v, true
}

// OldUseCase returns the old "use_case" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldUseCase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUseCase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUseCase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUseCase: %w", err)
	}
	return oldValue.UseCase, nil
}

// ClearUseCase clears the value of the "use_case" field.
func (m *ItemMutation) ClearUseCase() {
	m.use_case = nil
	m.clearedFields[item.FieldUseCase] = struct{}{}
}

// UseCaseCleared returns if the "use_case" field was cleared in this mutation.
func (m *ItemMutation) UseCaseCleared() bool {
	_, ok := m.clearedFields[item.FieldUseCase]
	return ok
}

// ResetUseCase resets all changes to the "use_case" field.
func (m *ItemMutation) ResetUseCase() {
	m.use_case = nil
	delete(m.clearedFields, item.FieldUseCase)
}

// SetImageURL sets the "image_url" field.
func (m *ItemMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *ItemMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldImageURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ClearImageURL clears the value of the "image_url" field.
func (m *ItemMutation) ClearImageURL() {
	m.image_url = nil
	m.clearedFields[item.FieldImageURL] = struct{}{}
}

// ImageURLCleared returns if the "image_url" field was cleared in this mutation.
func (m *ItemMutation) ImageURLCleared() bool {
	_, ok := m.clearedFields[item.FieldImageURL]
	return ok
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *ItemMutation) ResetImageURL() {
	m.image_url = nil
	delete(m.clearedFields, item.FieldImageURL)
}

// SetTeam sets the "team" field.
func (m *ItemMutation) SetTeam(s []string) {
	m.team = &s
	m.appendteam = nil
}

// Team returns the value of the "team" field in the mutation.
func (m *ItemMutation) Team() (r []string, exists bool) {
	v := m.team
	if v == nil {
		return
	}
	return *v, true
}

// OldTeam returns the old "team" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldTeam(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeam is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeam requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeam: %w", err)
	}
	return oldValue.Team, nil
}

// AppendTeam adds s to the "team" field.
func (m *ItemMutation) AppendTeam(s []string) {
	m.appendteam = append(m.appendteam, s...)
}

// AppendedTeam returns the list of values that were appended to the "team" field in this mutation.
func (m *ItemMutation) AppendedTeam() ([]string, bool) {
	if len(m.appendteam) == 0 {
		return nil, false
	}
	return m.appendteam, true
}

// ClearTeam clears the value of the "team" field.
func (m *ItemMutation) ClearTeam() {
	m.team = nil
	m.appendteam = nil
	m.clearedFields[item.FieldTeam] = struct{}{}
}

// TeamCleared returns if the "team" field was cleared in this mutation.
func (m *ItemMutation) TeamCleared() bool {
	_, ok := m.clearedFields[item.FieldTeam]
	return ok
}

// ResetTeam resets all changes to the "team" field.
func (m *ItemMutation) ResetTeam() {
	m.team = nil
	m.appendteam = nil
	delete(m.clearedFields, item.FieldTeam)
}

// SetLink sets the "link" field.
func (m *ItemMutation) SetLink(s string) {
	m.link = &s
}

// Link returns the value of the "link" field in the mutation.
func (m *ItemMutation) Link() (r string, exists bool) {
	v := m.link
	if v == nil {
		return
	}
	return *v, true
}

// OldLink returns the old "link" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldLink(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLink is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLink requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLink: %w", err)
	}
	return oldValue.Link, nil
}

// ClearLink clears the value of the "link" field.
func (m *ItemMutation) ClearLink() {
	m.link = nil
	m.clearedFields[item.FieldLink] = struct{}{}
}

// LinkCleared returns if the "link" field was cleared in this mutation.
func (m *ItemMutation) LinkCleared() bool {
	_, ok := m.clearedFields[item.FieldLink]
	return ok
}

// ResetLink resets all changes to the "link" field.
func (m *ItemMutation) ResetLink() {
	m.link = nil
	delete(m.clearedFields, item.FieldLink)
}

// SetCreatedAt sets the "created_at" field.
func (m *ItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddIndustryIDs adds the "industries" edge to the Industry entity by ids.
func (m *ItemMutation) AddIndustryIDs(ids ...uuid.UUID) {
	if m.industries == nil {
		m.industries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.industries[ids[i]] = struct{}{}
	}
}

// ClearIndustries clears the "industries" edge to the Industry entity.
func (m *ItemMutation) ClearIndustries() {
	m.clearedindustries = true
}

// IndustriesCleared reports if the "industries" edge to the Industry entity was cleared.
func (m *ItemMutation) IndustriesCleared() bool {
	return m.clearedindustries
}

// RemoveIndustryIDs removes the "industries" edge to the Industry entity by IDs.
func (m *ItemMutation) RemoveIndustryIDs(ids ...uuid.UUID) {
	if m.removedindustries == nil {
		m.removedindustries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.industries, ids[i])
		m.removedindustries[ids[i]] = struct{}{}
	}
}

// RemovedIndustries returns the removed IDs of the "industries" edge to the Industry entity.
func (m *ItemMutation) RemovedIndustriesIDs() (ids []uuid.UUID) {
	for id := range m.removedindustries {
		ids = append(ids, id)
	}
	return
}

// IndustriesIDs returns the "industries" edge IDs in the mutation.
func (m *ItemMutation) IndustriesIDs() (ids []uuid.UUID) {
	for id := range m.industries {
		ids = append(ids, id)
	}
	return
}

// ResetIndustries resets all changes to the "industries" edge.
func (m *ItemMutation) ResetIndustries() {
	m.industries = nil
	m.clearedindustries = false
	m.removedindustries = nil
}

// AddAudienceIDs adds the "audiences" edge to the Audience entity by ids.
func (m *ItemMutation) AddAudienceIDs(ids ...uuid.UUID) {
	if m.audiences == nil {
		m.audiences = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.audiences[ids[i]] = struct{}{}
	}
}

// ClearAudiences clears the "audiences" edge to the Audience entity.
func (m *ItemMutation) ClearAudiences() {
	m.clearedaudiences = true
}

// AudiencesCleared reports if the "audiences" edge to the Audience entity was cleared.
func (m *ItemMutation) AudiencesCleared() bool {
	return m.clearedaudiences
}

// RemoveAudienceIDs removes the "audiences" edge to the Audience entity by IDs.
func (m *ItemMutation) RemoveAudienceIDs(ids ...uuid.UUID) {
	if m.removedaudiences == nil {
		m.removedaudiences = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.audiences, ids[i])
		m.removedaudiences[ids[i]] = struct{}{}
	}
}

// RemovedAudiences returns the removed IDs of the "audiences" edge to the Audience entity.
func (m *ItemMutation) RemovedAudiencesIDs() (ids []uuid.UUID) {
	for id := range m.removedaudiences {
		ids = append(ids, id)
	}
	return
}

// AudiencesIDs returns the "audiences" edge IDs in the mutation.
func (m *ItemMutation) AudiencesIDs() (ids []uuid.UUID) {
	for id := range m.audiences {
		ids = append(ids, id)
	}
	return
}

// ResetAudiences resets all changes to the "audiences" edge.
func (m *ItemMutation) ResetAudiences() {
	m.audiences = nil
	m.clearedaudiences = false
	m.removedaudiences = nil
}

// AddFunctionIDs adds the "functions" edge to the BusinessFunction entity by ids.
func (m *ItemMutation) AddFunctionIDs(ids ...uuid.UUID) {
	if m.functions == nil {
		m.functions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.functions[ids[i]] = struct{}{}
	}
}

// ClearFunctions clears the "functions" edge to the BusinessFunction entity.
func (m *ItemMutation) ClearFunctions() {
	m.clearedfunctions = true
}

// FunctionsCleared reports if the "functions" edge to the BusinessFunction entity was cleared.
func (m *ItemMutation) FunctionsCleared() bool {
	return m.clearedfunctions
}

// RemoveFunctionIDs removes the "functions" edge to the BusinessFunction entity by IDs.
func (m *ItemMutation) RemoveFunctionIDs(ids ...uuid.UUID) {
	if m.removedfunctions == nil {
		m.removedfunctions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.functions, ids[i])
		m.removedfunctions[ids[i]] = struct{}{}
	}
}

// RemovedFunctions returns the removed IDs of the "functions" edge to the BusinessFunction entity.
func (m *ItemMutation) RemovedFunctionsIDs() (ids []uuid.UUID) {
	for id := range m.removedfunctions {
		ids = append(ids, id)
	}
	return
}

// FunctionsIDs returns the "functions" edge IDs in the mutation.
func (m *ItemMutation) FunctionsIDs() (ids []uuid.UUID) {
	for id := range m.functions {
		ids = append(ids, id)
	}
	return
}

// ResetFunctions resets all changes to the "functions" edge.
func (m *ItemMutation) ResetFunctions() {
	m.functions = nil
	m.clearedfunctions = false
	m.removedfunctions = nil
}

// AddTeamIDs adds the "teams" edge to the Team entity by ids.
func (m *ItemMutation) AddTeamIDs(ids ...uuid.UUID) {
	if m.teams == nil {
		m.teams = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.teams[ids[i]] = struct{}{}
	}
}

// ClearTeams clears the "teams" edge to the Team entity.
func (m *ItemMutation) ClearTeams() {
	m.clearedteams = true
}

// TeamsCleared reports if the "teams" edge to the Team entity was cleared.
func (m *ItemMutation) TeamsCleared() bool {
	return m.clearedteams
}

// RemoveTeamIDs removes the "teams" edge to the Team entity by IDs.
func (m *ItemMutation) RemoveTeamIDs(ids ...uuid.UUID) {
	if m.removedteams == nil {
		m.removedteams = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.teams, ids[i])
		m.removedteams[ids[i]] = struct{}{}
	}
}

// RemovedTeams returns the removed IDs of the "teams" edge to the Team entity.
func (m *ItemMutation) RemovedTeamsIDs() (ids []uuid.UUID) {
	for id := range m.removedteams {
		ids = append(ids, id)
	}
	return
}

// TeamsIDs returns the "teams" edge IDs in the mutation.
func (m *ItemMutation) TeamsIDs() (ids []uuid.UUID) {
	for id := range m.teams {
		ids = append(ids, id)
	}
	return
}

// ResetTeams resets all changes to the "teams" edge.
func (m *ItemMutation) ResetTeams() {
	m.teams = nil
	m.clearedteams = false
	m.removedteams = nil
}

// Where appends a list predicates to the ItemMutation builder.
func (m *ItemMutation) Where(ps ...predicate.Item) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Item, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Item).
func (m *ItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItemMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.title != nil {
		fields = append(fields, item.FieldTitle)
	}
	if m.mission != nil {
		fields = append(fields, item.FieldMission)
	}
	if m.problematics != nil {
		fields = append(fields, item.FieldProblematics)
	}
	if m.scope != nil {
		fields = append(fields, item.FieldScope)
	}
	if m.audience != nil {
		fields = append(fields, item.FieldAudience)
	}
	if m.how_it_works != nil {
		fields = append(fields, item.FieldHowItWorks)
	}
	if m.architecture != nil {
		fields = append(fields, item.FieldArchitecture)
	}
	if m.innovation != nil {
		fields = append(fields, item.FieldInnovation)
	}
	if m.use_case != nil {
		fields = append(fields, item.FieldUseCase)
	}
	if m.image_url != nil {
		fields = append(fields, item.FieldImageURL)
	}
	if m.team != nil {
		fields = append(fields, item.FieldTeam)
	}
	if m.link != nil {
		fields = append(fields, item.FieldLink)
	}
	if m.created_at != nil {
		fields = append(fields, item.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, item.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case item.FieldTitle:
		return m.Title()
	case item.FieldMission:
		return m.Mission()
	case item.FieldProblematics:
		return m.Problematics()
	case item.FieldScope:
		return m.Scope()
	case item.FieldAudience:
		return m.Audience()
	case item.FieldHowItWorks:
		return m.HowItWorks()
	case item.FieldArchitecture:
		return m.Architecture()
	case item.FieldInnovation:
		return m.Innovation()
	case item.FieldUseCase:
		return m.UseCase()
	case item.FieldImageURL:
		return m.ImageURL()
	case item.FieldTeam:
		return m.Team()
	case item.FieldLink:
		return m.Link()
	case item.FieldCreatedAt:
		return m.CreatedAt()
	case item.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case item.FieldTitle:
		return m.OldTitle(ctx)
	case item.FieldMission:
		return m.OldMission(ctx)
	case item.FieldProblematics:
		return m.OldProblematics(ctx)
	case item.FieldScope:
		return m.OldScope(ctx)
	case item.FieldAudience:
		return m.OldAudience(ctx)
	case item.FieldHowItWorks:
		return m.OldHowItWorks(ctx)
	case item.FieldArchitecture:
		return m.OldArchitecture(ctx)
	case item.FieldInnovation:
		return m.OldInnovation(ctx)
	case item.FieldUseCase:
		return m.OldUseCase(ctx)
	case item.FieldImageURL:
		return m.OldImageURL(ctx)
	case item.FieldTeam:
		return m.OldTeam(ctx)
	case item.FieldLink:
		return m.OldLink(ctx)
	case item.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case item.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Item field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case item.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case item.FieldMission:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMission(v)
		return nil
	case item.FieldProblematics:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblematics(v)
		return nil
	case item.FieldScope:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case item.FieldAudience:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudience(v)
		return nil
	case item.FieldHowItWorks:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHowItWorks(v)
		return nil
	case item.FieldArchitecture:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchitecture(v)
		return nil
	case item.FieldInnovation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInnovation(v)
		return nil
	case item.FieldUseCase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUseCase(v)
		return nil
	case item.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	case item.FieldTeam:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeam(v)
		return nil
	case item.FieldLink:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLink(v)
		return nil
	case item.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case item.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Item numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(item.FieldMission) {
		fields = append(fields, item.FieldMission)
	}
	if m.FieldCleared(item.FieldProblematics) {
		fields = append(fields, item.FieldProblematics)
	}
	if m.FieldCleared(item.FieldScope) {
		fields = append(fields, item.FieldScope)
	}
	if m.FieldCleared(item.FieldAudience) {
		fields = append(fields, item.FieldAudience)
	}
	if m.FieldCleared(item.FieldHowItWorks) {
		fields = append(fields, item.FieldHowItWorks)
	}
	if m.FieldCleared(item.FieldArchitecture) {
		fields = append(fields, item.FieldArchitecture)
	}
	if m.FieldCleared(item.FieldInnovation) {
		fields = append(fields, item.FieldInnovation)
	}
	if m.FieldCleared(item.FieldUseCase) {
		fields = append(fields, item.FieldUseCase)
	}
	if m.FieldCleared(item.FieldImageURL) {
		fields = append(fields, item.FieldImageURL)
	}
	if m.FieldCleared(item.FieldTeam) {
		fields = append(fields, item.FieldTeam)
	}
	if m.FieldCleared(item.FieldLink) {
		fields = append(fields, item.FieldLink)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItemMutation) ClearField(name string) error {
	switch name {
	case item.FieldMission:
		m.ClearMission()
		return nil
	case item.FieldProblematics:
		m.ClearProblematics()
		return nil
	case item.FieldScope:
		m.ClearScope()
		return nil
	case item.FieldAudience:
		m.ClearAudience()
		return nil
	case item.FieldHowItWorks:
		m.ClearHowItWorks()
		return nil
	case item.FieldArchitecture:
		m.ClearArchitecture()
		return nil
	case item.FieldInnovation:
		m.ClearInnovation()
		return nil
	case item.FieldUseCase:
		m.ClearUseCase()
		return nil
	case item.FieldImageURL:
		m.ClearImageURL()
		return nil
	case item.FieldTeam:
		m.ClearTeam()
		return nil
	case item.FieldLink:
		m.ClearLink()
		return nil
	}
	return fmt.Errorf("unknown Item nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItemMutation) ResetField(name string) error {
	switch name {
	case item.FieldTitle:
		m.ResetTitle()
		return nil
	case item.FieldMission:
		m.ResetMission()
		return nil
	case item.FieldProblematics:
		m.ResetProblematics()
		return nil
	case item.FieldScope:
		m.ResetScope()
		return nil
	case item.FieldAudience:
		m.ResetAudience()
		return nil
	case item.FieldHowItWorks:
		m.ResetHowItWorks()
		return nil
	case item.FieldArchitecture:
		m.ResetArchitecture()
		return nil
	case item.FieldInnovation:
		m.ResetInnovation()
		return nil
	case item.FieldUseCase:
		m.ResetUseCase()
		return nil
	case item.FieldImageURL:
		m.ResetImageURL()
		return nil
	case item.FieldTeam:
		m.ResetTeam()
		return nil
	case item.FieldLink:
		m.ResetLink()
		return nil
	case item.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case item.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.industries != nil {
		edges = append(edges, item.EdgeIndustries)
	}
	if m.audiences != nil {
		edges = append(edges, item.EdgeAudiences)
	}
	if m.functions != nil {
		edges = append(edges, item.EdgeFunctions)
	}
	if m.teams != nil {
		edges = append(edges, item.EdgeTeams)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case item.EdgeIndustries:
		ids := make([]ent.Value, 0, len(m.industries))
		for id := range m.industries {
			ids = append(ids, id)
		}
		return ids
	case item.EdgeAudiences:
		ids := make([]ent.Value, 0, len(m.audiences))
		for id := range m.audiences {
			ids = append(ids, id)
		}
		return ids
	case item.EdgeFunctions:
		ids := make([]ent.Value, 0, len(m.functions))
		for id := range m.functions {
			ids = append(ids, id)
		}
		return ids
	case item.EdgeTeams:
		ids := make([]ent.Value, 0, len(m.teams))
		for id := range m.teams {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedindustries != nil {
		edges = append(edges, item.EdgeIndustries)
	}
	if m.removedaudiences != nil {
		edges = append(edges, item.EdgeAudiences)
	}
	if m.removedfunctions != nil {
		edges = append(edges, item.EdgeFunctions)
	}
	if m.removedteams != nil {
		edges = append(edges, item.EdgeTeams)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItemMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case item.EdgeIndustries:
		ids := make([]ent.Value, 0, len(m.removedindustries))
		for id := range m.removedindustries {
			ids = append(ids, id)
		}
		return ids
	case item.EdgeAudiences:
		ids := make([]ent.Value, 0, len(m.removedaudiences))
		for id := range m.removedaudiences {
			ids = append(ids, id)
		}
		return ids
	case item.EdgeFunctions:
		ids := make([]ent.Value, 0, len(m.removedfunctions))
		for id := range m.removedfunctions {
			ids = append(ids, id)
		}
		return ids
	case item.EdgeTeams:
		ids := make([]ent.Value, 0, len(m.removedteams))
		for id := range m.removedteams {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedindustries {
		edges = append(edges, item.EdgeIndustries)
	}
	if m.clearedaudiences {
		edges = append(edges, item.EdgeAudiences)
	}
	if m.clearedfunctions {
		edges = append(edges, item.EdgeFunctions)
	}
	if m.clearedteams {
		edges = append(edges, item.EdgeTeams)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItemMutation) EdgeCleared(name string) bool {
	switch name {
	case item.EdgeIndustries:
		return m.clearedindustries
	case item.EdgeAudiences:
		return m.clearedaudiences
	case item.EdgeFunctions:
		return m.clearedfunctions
	case item.EdgeTeams:
		return m.clearedteams
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItemMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Item unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItemMutation) ResetEdge(name string) error {
	switch name {
	case item.EdgeIndustries:
		m.ResetIndustries()
		return nil
	case item.EdgeAudiences:
		m.ResetAudiences()
		return nil
	case item.EdgeFunctions:
		m.ResetFunctions()
		return nil
	case item.EdgeTeams:
		m.ResetTeams()
		return nil
	}
	return fmt.Errorf("unknown Item edge %s", name)
}

// TeamMutation represents an operation that mutates the Team nodes in the graph.
type TeamMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	items         map[uuid.UUID]struct{}
	removeditems  map[uuid.UUID]struct{}
	cleareditems  bool
	done          bool
	oldValue      func(context.Context) (*Team, error)
	predicates    []predicate.Team
}

var _ ent.Mutation = (*TeamMutation)(nil)

// teamOption allows management of the mutation configuration using functional options.
type teamOption func(*TeamMutation)

// newTeamMutation creates new mutation for the Team entity.
func newTeamMutation(c config, op Op, opts ...teamOption) *TeamMutation {
	m := &TeamMutation{
		config:        c,
		op:            op,
		typ:           TypeTeam,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTeamID sets the ID field of the mutation.
func withTeamID(id uuid.UUID) teamOption {
	return func(m *TeamMutation) {
		var (
			err   error
			once  sync.Once
			value *Team
		)
		m.oldValue = func(ctx context.Context) (*Team, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Team.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTeam sets the old Team of the mutation.
func withTeam(node *Team) teamOption {
	return func(m *TeamMutation) {
		m.oldValue = func(context.Context) (*Team, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TeamMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TeamMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Team entities.
func (m *TeamMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TeamMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TeamMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Team.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TeamMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TeamMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TeamMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TeamMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TeamMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TeamMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddItemIDs adds the "items" edge to the Item entity by ids.
func (m *TeamMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the Item entity.
func (m *TeamMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the Item entity was cleared.
func (m *TeamMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the Item entity by IDs.
func (m *TeamMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the Item entity.
func (m *TeamMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *TeamMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *TeamMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the TeamMutation builder.
func (m *TeamMutation) Where(ps ...predicate.Team) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TeamMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TeamMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Team, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TeamMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TeamMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Team).
func (m *TeamMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TeamMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, team.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, team.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TeamMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case team.FieldName:
		return m.Name()
	case team.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TeamMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case team.FieldName:
		return m.OldName(ctx)
	case team.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Team field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMutation) SetField(name string, value ent.Value) error {
	switch name {
	case team.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case team.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Team field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TeamMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TeamMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Team numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TeamMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TeamMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TeamMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Team nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TeamMutation) ResetField(name string) error {
	switch name {
	case team.FieldName:
		m.ResetName()
		return nil
	case team.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Team field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TeamMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.items != nil {
		edges = append(edges, team.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TeamMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case team.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TeamMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeditems != nil {
		edges = append(edges, team.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TeamMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case team.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TeamMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditems {
		edges = append(edges, team.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TeamMutation) EdgeCleared(name string) bool {
	switch name {
	case team.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TeamMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Team unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TeamMutation) ResetEdge(name string) error {
	switch name {
	case team.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown Team edge %s", name)
}
