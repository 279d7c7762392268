// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AudienceColumns holds the columns for the "audience" table.
	AudienceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// AudienceTable holds the schema information for the "audience" table.
	AudienceTable = &schema.Table{
		Name:       "audience",
		Columns:    AudienceColumns,
		PrimaryKey: []*schema.Column{AudienceColumns[0]},
	}
	// BusinessFunctionsColumns holds the columns for the "business_functions" table.
	BusinessFunctionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// BusinessFunctionsTable holds the schema information for the "business_functions" table.
	BusinessFunctionsTable = &schema.Table{
		Name:       "business_functions",
		Columns:    BusinessFunctionsColumns,
		PrimaryKey: []*schema.Column{BusinessFunctionsColumns[0]},
	}
	// IndustriesColumns holds the columns for the "industries" table.
	IndustriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// IndustriesTable holds the schema information for the "industries" table.
	IndustriesTable = &schema.Table{
		Name:       "industries",
		Columns:    IndustriesColumns,
		PrimaryKey: []*schema.Column{IndustriesColumns[0]},
	}
	// SmartjectsColumns holds the columns for the "smartjects" table.
	SmartjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "mission", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "problematics", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "scope", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "audience", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "how_it_works", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "architecture", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "innovation", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "use_case", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "image_url", Type: field.TypeString, Nullable: true},
		{Name: "team", Type: field.TypeJSON, Nullable: true},
		{Name: "link", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SmartjectsTable holds the schema information for the "smartjects" table.
	SmartjectsTable = &schema.Table{
		Name:       "smartjects",
		Columns:    SmartjectsColumns,
		PrimaryKey: []*schema.Column{SmartjectsColumns[0]},
	}
	// TeamsColumns holds the columns for the "teams" table.
	TeamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TeamsTable holds the schema information for the "teams" table.
	TeamsTable = &schema.Table{
		Name:       "teams",
		Columns:    TeamsColumns,
		PrimaryKey: []*schema.Column{TeamsColumns[0]},
	}
	// ItemIndustriesColumns holds the columns for the "item_industries" table.
	ItemIndustriesColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeUUID},
		{Name: "industry_id", Type: field.TypeUUID},
	}
	// ItemIndustriesTable holds the schema information for the "item_industries" table.
	ItemIndustriesTable = &schema.Table{
		Name:       "item_industries",
		Columns:    ItemIndustriesColumns,
		PrimaryKey: []*schema.Column{ItemIndustriesColumns[0], ItemIndustriesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "item_industries_item_id",
				Columns:    []*schema.Column{ItemIndustriesColumns[0]},
				RefColumns: []*schema.Column{SmartjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "item_industries_industry_id",
				Columns:    []*schema.Column{ItemIndustriesColumns[1]},
				RefColumns: []*schema.Column{IndustriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ItemAudiencesColumns holds the columns for the "item_audiences" table.
	ItemAudiencesColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeUUID},
		{Name: "audience_id", Type: field.TypeUUID},
	}
	// ItemAudiencesTable holds the schema information for the "item_audiences" table.
	ItemAudiencesTable = &schema.Table{
		Name:       "item_audiences",
		Columns:    ItemAudiencesColumns,
		PrimaryKey: []*schema.Column{ItemAudiencesColumns[0], ItemAudiencesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "item_audiences_item_id",
				Columns:    []*schema.Column{ItemAudiencesColumns[0]},
				RefColumns: []*schema.Column{SmartjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "item_audiences_audience_id",
				Columns:    []*schema.Column{ItemAudiencesColumns[1]},
				RefColumns: []*schema.Column{AudienceColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ItemFunctionsColumns holds the columns for the "item_functions" table.
	ItemFunctionsColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeUUID},
		{Name: "business_function_id", Type: field.TypeUUID},
	}
	// ItemFunctionsTable holds the schema information for the "item_functions" table.
	ItemFunctionsTable = &schema.Table{
		Name:       "item_functions",
		Columns:    ItemFunctionsColumns,
		PrimaryKey: []*schema.Column{ItemFunctionsColumns[0], ItemFunctionsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "item_functions_item_id",
				Columns:    []*schema.Column{ItemFunctionsColumns[0]},
				RefColumns: []*schema.Column{SmartjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "item_functions_business_function_id",
				Columns:    []*schema.Column{ItemFunctionsColumns[1]},
				RefColumns: []*schema.Column{BusinessFunctionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ItemTeamsColumns holds the columns for the "item_teams" table.
	ItemTeamsColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeUUID},
		{Name: "team_id", Type: field.TypeUUID},
	}
	// ItemTeamsTable holds the schema information for the "item_teams" table.
	ItemTeamsTable = &schema.Table{
		Name:       "item_teams",
		Columns:    ItemTeamsColumns,
		PrimaryKey: []*schema.Column{ItemTeamsColumns[0], ItemTeamsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "item_teams_item_id",
				Columns:    []*schema.Column{ItemTeamsColumns[0]},
				RefColumns: []*schema.Column{SmartjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "item_teams_team_id",
				Columns:    []*schema.Column{ItemTeamsColumns[1]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AudienceTable,
		BusinessFunctionsTable,
		IndustriesTable,
		SmartjectsTable,
		TeamsTable,
		ItemIndustriesTable,
		ItemAudiencesTable,
		ItemFunctionsTable,
		ItemTeamsTable,
	}
)

func init() {
	AudienceTable.Annotation = &entsql.Annotation{
		Table: "audience",
	}
	BusinessFunctionsTable.Annotation = &entsql.Annotation{
		Table: "business_functions",
	}
	IndustriesTable.Annotation = &entsql.Annotation{
		Table: "industries",
	}
	SmartjectsTable.Annotation = &entsql.Annotation{
		Table: "smartjects",
	}
	TeamsTable.Annotation = &entsql.Annotation{
		Table: "teams",
	}
	ItemIndustriesTable.ForeignKeys[0].RefTable = SmartjectsTable
	ItemIndustriesTable.ForeignKeys[1].RefTable = IndustriesTable
	ItemAudiencesTable.ForeignKeys[0].RefTable = SmartjectsTable
	ItemAudiencesTable.ForeignKeys[1].RefTable = AudienceTable
	ItemFunctionsTable.ForeignKeys[0].RefTable = SmartjectsTable
	ItemFunctionsTable.ForeignKeys[1].RefTable = BusinessFunctionsTable
	ItemTeamsTable.ForeignKeys[0].RefTable = SmartjectsTable
	ItemTeamsTable.ForeignKeys[1].RefTable = TeamsTable
}
