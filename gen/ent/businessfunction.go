// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/smartjects/importer/gen/ent/businessfunction"
)

// BusinessFunction is the model entity for the BusinessFunction schema.
type BusinessFunction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BusinessFunctionQuery when eager-loading is set.
	Edges        BusinessFunctionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BusinessFunctionEdges holds the relations/edges for other nodes in the graph.
type BusinessFunctionEdges struct {
	// Items holds the value of the items edge.
	Items []*Item `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e BusinessFunctionEdges) ItemsOrErr() ([]*Item, error) {
	if e.loadedTypes[0] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BusinessFunction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case businessfunction.FieldName:
			values[i] = new(sql.NullString)
		case businessfunction.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BusinessFunction fields.
func (_m *BusinessFunction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case businessfunction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case businessfunction.FieldName:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BusinessFunction.
// This includes values selected through modifiers, order, etc.
func (_m *BusinessFunction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItems queries the "items" edge of the BusinessFunction entity.
func (_m *BusinessFunction) QueryItems() *ItemQuery {
	return NewBusinessFunctionClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this BusinessFunction.
// Note that you need to call BusinessFunction.Unwrap() before calling this method if this BusinessFunction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BusinessFunction) Update() *BusinessFunctionUpdateOne {
	return NewBusinessFunctionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BusinessFunction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BusinessFunction) Unwrap() *BusinessFunction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BusinessFunction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BusinessFunction) String() string {
	var builder strings.Builder
	builder.WriteString("BusinessFunction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteByte(')')
	return builder.String()
}

// BusinessFunctions is a parsable slice of BusinessFunction.
type BusinessFunctions []*BusinessFunction
