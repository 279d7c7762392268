// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/smartjects/importer/gen/ent/item"
)

// Item is the model entity for the Item schema.
type Item struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Mission holds the value of the "mission" field.
	Mission string `json:"mission,omitempty"`
	// Problematics holds the value of the "problematics" field.
	Problematics string `json:"problematics,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope string `json:"scope,omitempty"`
	// Audience holds the value of the "audience" field.
	Audience string `json:"audience,omitempty"`
	// HowItWorks holds the value of the "how_it_works" field.
	HowItWorks string `json:"how_it_works,omitempty"`
	// Architecture holds the value of the "architecture" field.
	Architecture string `json:"architecture,omitempty"`
	// Innovation holds the value of the "innovation" field.
	Innovation string `json:"innovation,omitempty"`
	// UseCase holds the value of the "use_case" field.
	UseCase string `json:"use_case,omitempty"`
	// ImageURL holds the value of the "image_url" field.
	ImageURL *string `json:"image_url,omitempty"`
	// Team holds the value of the "team" field.
	Team []string `json:"team,omitempty"`
	// Link holds the value of the "link" field.
	Link string `json:"link,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ItemQuery when eager-loading is set.
	Edges        ItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ItemEdges holds the relations/edges for other nodes in the graph.
type ItemEdges struct {
	// Industries holds the value of the industries edge.
	Industries []*Industry `json:"industries,omitempty"`
	// Audiences holds the value of the audiences edge.
	Audiences []*Audience `json:"audiences,omitempty"`
	// Functions holds the value of the functions edge.
	Functions []*BusinessFunction `json:"functions,omitempty"`
	// Teams holds the value of the teams edge.
	Teams []*Team `json:"teams,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// IndustriesOrErr returns the Industries value or an error if the edge
// was not loaded in eager-loading.
func (e ItemEdges) IndustriesOrErr() ([]*Industry, error) {
	if e.loadedTypes[0] {
		return e.Industries, nil
	}
	return nil, &NotLoadedError{edge: "industries"}
}

// AudiencesOrErr returns the Audiences value or an error if the edge
// was not loaded in eager-loading.
func (e ItemEdges) AudiencesOrErr() ([]*Audience, error) {
	if e.loadedTypes[1] {
		return e.Audiences, nil
	}
	return nil, &NotLoadedError{edge: "audiences"}
}

// FunctionsOrErr returns the Functions value or an error if the edge
// was not loaded in eager-loading.
func (e ItemEdges) FunctionsOrErr() ([]*BusinessFunction, error) {
	if e.loadedTypes[2] {
		return e.Functions, nil
	}
	return nil, &NotLoadedError{edge: "functions"}
}

// TeamsOrErr returns the Teams value or an error if the edge
// was not loaded in eager-loading.
func (e ItemEdges) TeamsOrErr() ([]*Team, error) {
	if e.loadedTypes[3] {
		return e.Teams, nil
	}
	return nil, &NotLoadedError{edge: "teams"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Item) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case item.FieldTeam:
			values[i] = new([]byte)
		case item.FieldTitle, item.FieldMission, item.FieldProblematics, item.FieldScope, item.FieldAudience, item.FieldHowItWorks, item.FieldArchitecture, item.FieldInnovation, item.FieldUseCase, item.FieldImageURL, item.FieldLink:
			values[i] = new(sql.NullString)
		case item.FieldCreatedAt, item.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case item.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Item fields.
func (_m *Item) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case item.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case item.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case item.FieldMission:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mission", values[i])
			} else if value.Valid {
				_m.Mission = value.String
			}
		case item.FieldProblematics:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problematics", values[i])
			} else if value.Valid {
				_m.Problematics = value.String
			}
		case item.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = value.String
			}
		case item.FieldAudience:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audience", values[i])
			} else if value.Valid {
				_m.Audience = value.String
			}
		case item.FieldHowItWorks:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field how_it_works", values[i])
			} else if value.Valid {
				_m.HowItWorks = value.String
			}
		case item.FieldArchitecture:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field architecture", values[i])
			} else if value.Valid {
				_m.Architecture = value.String
			}
		case item.FieldInnovation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field innovation", values[i])
			} else if value.Valid {
				_m.Innovation = value.String
			}
		case item.FieldUseCase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field use_case", values[i])
			} else if value.Valid {
				_m.UseCase = value.String
			}
		case item.FieldImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_url", values[i])
			} else if value.Valid {
				_m.ImageURL = new(string)
				*_m.ImageURL = value.String
			}
		case item.FieldTeam:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field team", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Team); err != nil {
					return fmt.Errorf("unmarshal field team: %w", err)
				}
			}
		case item.FieldLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field link", values[i])
			} else if value.Valid {
				_m.Link = value.String
			}
		case item.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case item.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Item.
// This includes values selected through modifiers, order, etc.
func (_m *Item) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIndustries queries the "industries" edge of the Item entity.
func (_m *Item) QueryIndustries() *IndustryQuery {
	return NewItemClient(_m.config).QueryIndustries(_m)
}

// QueryAudiences queries the "audiences" edge of the Item entity.
func (_m *Item) QueryAudiences() *AudienceQuery {
	return NewItemClient(_m.config).QueryAudiences(_m)
}

// QueryFunctions queries the "functions" edge of the Item entity.
func (_m *Item) QueryFunctions() *BusinessFunctionQuery {
	return NewItemClient(_m.config).QueryFunctions(_m)
}

// QueryTeams queries the "teams" edge of the Item entity.
func (_m *Item) QueryTeams() *TeamQuery {
	return NewItemClient(_m.config).QueryTeams(_m)
}

// Update returns a builder for updating this Item.
// Note that you need to call Item.Unwrap() before calling this method if this Item
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Item) Update() *ItemUpdateOne {
	return NewItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Item entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Item) Unwrap() *Item {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Item is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Item) String() string {
	var builder strings.Builder
	builder.WriteString("Item(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("mission=")
	builder.WriteString(_m.Mission)
	builder.WriteString(", ")
	builder.WriteString("problematics=")
	builder.WriteString(_m.Problematics)
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(_m.Scope)
	builder.WriteString(", ")
	builder.WriteString("audience=")
	builder.WriteString(_m.Audience)
	builder.WriteString(", ")
	builder.WriteString("how_it_works=")
	builder.WriteString(_m.HowItWorks)
	builder.WriteString(", ")
	builder.WriteString("architecture=")
	builder.WriteString(_m.Architecture)
	builder.WriteString(", ")
	builder.WriteString("innovation=")
	builder.WriteString(_m.Innovation)
	builder.WriteString(", ")
	builder.WriteString("use_case=")
	builder.WriteString(_m.UseCase)
	builder.WriteString(", ")
	if v := _m.ImageURL; v != nil {
		builder.WriteString("image_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("team=")
	builder.WriteString(fmt.Sprintf("%v", _m.Team))
	builder.WriteString(", ")
	builder.WriteString("link=")
	builder.WriteString(_m.Link)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Items is a parsable slice of Item.
type Items []*Item
