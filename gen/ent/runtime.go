// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/smartjects/importer/db/ent/schema"
	"github.com/smartjects/importer/gen/ent/audience"
	"github.com/smartjects/importer/gen/ent/businessfunction"
	"github.com/smartjects/importer/gen/ent/industry"
	"github.com/smartjects/importer/gen/ent/item"
	"github.com/smartjects/importer/gen/ent/team"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	audienceFields := schema.Audience{}.Fields()
	_ = audienceFields
	// audienceDescName is the schema descriptor for name field.
	audienceDescName := audienceFields[1].Descriptor()
	// audience.NameValidator is a validator for the "name" field. It is called by the builders before save.
	audience.NameValidator = audienceDescName.Validators[0].(func(string) error)
	// audienceDescID is the schema descriptor for id field.
	audienceDescID := audienceFields[0].Descriptor()
	// audience.DefaultID holds the default value on creation for the id field.
	audience.DefaultID = audienceDescID.Default.(func() uuid.UUID)
	businessfunctionFields := schema.BusinessFunction{}.Fields()
	_ = businessfunctionFields
	// businessfunctionDescName is the schema descriptor for name field.
	businessfunctionDescName := businessfunctionFields[1].Descriptor()
	// businessfunction.NameValidator is a validator for the "name" field. It is called by the builders before save.
	businessfunction.NameValidator = businessfunctionDescName.Validators[0].(func(string) error)
	// businessfunctionDescID is the schema descriptor for id field.
	businessfunctionDescID := businessfunctionFields[0].Descriptor()
	// businessfunction.DefaultID holds the default value on creation for the id field.
	businessfunction.DefaultID = businessfunctionDescID.Default.(func() uuid.UUID)
	industryFields := schema.Industry{}.Fields()
	_ = industryFields
	// industryDescName is the schema descriptor for name field.
	industryDescName := industryFields[1].Descriptor()
	// industry.NameValidator is a validator for the "name" field. It is called by the builders before save.
	industry.NameValidator = industryDescName.Validators[0].(func(string) error)
	// industryDescID is the schema descriptor for id field.
	industryDescID := industryFields[0].Descriptor()
	// industry.DefaultID holds the default value on creation for the id field.
	industry.DefaultID = industryDescID.Default.(func() uuid.UUID)
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescTitle is the schema descriptor for title field.
	itemDescTitle := itemFields[1].Descriptor()
	// item.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	item.TitleValidator = itemDescTitle.Validators[0].(func(string) error)
	// itemDescCreatedAt is the schema descriptor for created_at field.
	itemDescCreatedAt := itemFields[13].Descriptor()
	// item.DefaultCreatedAt holds the default value on creation for the created_at field.
	item.DefaultCreatedAt = itemDescCreatedAt.Default.(func() time.Time)
	// itemDescUpdatedAt is the schema descriptor for updated_at field.
	itemDescUpdatedAt := itemFields[14].Descriptor()
	// item.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	item.DefaultUpdatedAt = itemDescUpdatedAt.Default.(func() time.Time)
	// item.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	item.UpdateDefaultUpdatedAt = itemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// itemDescID is the schema descriptor for id field.
	itemDescID := itemFields[0].Descriptor()
	// item.DefaultID holds the default value on creation for the id field.
	item.DefaultID = itemDescID.Default.(func() uuid.UUID)
	teamFields := schema.Team{}.Fields()
	_ = teamFields
	// teamDescName is the schema descriptor for name field.
	teamDescName := teamFields[1].Descriptor()
	// team.NameValidator is a validator for the "name" field. It is called by the builders before save.
	team.NameValidator = teamDescName.Validators[0].(func(string) error)
	// teamDescCreatedAt is the schema descriptor for created_at field.
	teamDescCreatedAt := teamFields[2].Descriptor()
	// team.DefaultCreatedAt holds the default value on creation for the created_at field.
	team.DefaultCreatedAt = teamDescCreatedAt.Default.(func() time.Time)
	// teamDescID is the schema descriptor for id field.
	teamDescID := teamFields[0].Descriptor()
	// team.DefaultID holds the default value on creation for the id field.
	team.DefaultID = teamDescID.Default.(func() uuid.UUID)
}
