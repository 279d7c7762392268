// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/smartjects/importer/gen/ent/audience"
)

// Audience is the model entity for the Audience schema.
type Audience struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AudienceQuery when eager-loading is set.
	Edges        AudienceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AudienceEdges holds the relations/edges for other nodes in the graph.
type AudienceEdges struct {
	// Items holds the value of the items edge.
	Items []*Item `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e AudienceEdges) ItemsOrErr() ([]*Item, error) {
	if e.loadedTypes[0] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Audience) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case audience.FieldName:
			values[i] = new(sql.NullString)
		case audience.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Audience fields.
func (_m *Audience) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case audience.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case audience.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Audience.
// This includes values selected through modifiers, order, etc.
func (_m *Audience) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItems queries the "items" edge of the Audience entity.
func (_m *Audience) QueryItems() *ItemQuery {
	return NewAudienceClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this Audience.
// Note that you need to call Audience.Unwrap() before calling this method if this Audience
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Audience) Update() *AudienceUpdateOne {
	return NewAudienceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Audience entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Audience) Unwrap() *Audience {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Audience is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Audience) String() string {
	var builder strings.Builder
	builder.WriteString("Audience(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteByte(')')
	return builder.String()
}

// Audiences is a parsable slice of Audience.
type Audiences []*Audience
