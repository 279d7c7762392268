// Code generated by ent, DO NOT EDIT.

package item

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the item type in the database.
	Label = "item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldMission holds the string denoting the mission field in the database.
	FieldMission = "mission"
	// FieldProblematics holds the string denoting the problematics field in the database.
	FieldProblematics = "problematics"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldAudience holds the string denoting the audience field in the database.
	FieldAudience = "audience"
	// FieldHowItWorks holds the string denoting the how_it_works field in the database.
	FieldHowItWorks = "how_it_works"
	// FieldArchitecture holds the string denoting the architecture field in the database.
	FieldArchitecture = "architecture"
	// FieldInnovation holds the string denoting the innovation field in the database.
	FieldInnovation = "innovation"
	// FieldUseCase holds the string denoting the use_case field in the database.
	FieldUseCase = "use_case"
	// FieldImageURL holds the string denoting the image_url field in the database.
	FieldImageURL = "image_url"
	// FieldTeam holds the string denoting the team field in the database.
	FieldTeam = "team"
	// FieldLink holds the string denoting the link field in the database.
	FieldLink = "link"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeIndustries holds the string denoting the industries edge name in mutations.
	EdgeIndustries = "industries"
	// EdgeAudiences holds the string denoting the audiences edge name in mutations.
	EdgeAudiences = "audiences"
	// EdgeFunctions holds the string denoting the functions edge name in mutations.
	EdgeFunctions = "functions"
	// EdgeTeams holds the string denoting the teams edge name in mutations.
	EdgeTeams = "teams"
	// Table holds the table name of the item in the database.
	Table = "smartjects"
	// IndustriesTable is the table that holds the industries relation/edge. The primary key declared below.
	IndustriesTable = "item_industries"
	// IndustriesInverseTable is the table name for the Industry entity.
	// It exists in this package in order to avoid circular dependency with the "industry" package.
	IndustriesInverseTable = "industries"
	// AudiencesTable is the table that holds the audiences relation/edge. The primary key declared below.
	AudiencesTable = "item_audiences"
	// AudiencesInverseTable is the table name for the Audience entity.
	// It exists in this package in order to avoid circular dependency with the "audience" package.
	AudiencesInverseTable = "audience"
	// FunctionsTable is the table that holds the functions relation/edge. The primary key declared below.
	FunctionsTable = "item_functions"
	// FunctionsInverseTable is the table name for the BusinessFunction entity.
	// It exists in this package in order to avoid circular dependency with the "businessfunction" package.
	FunctionsInverseTable = "business_functions"
	// TeamsTable is the table that holds the teams relation/edge. The primary key declared below.
	TeamsTable = "item_teams"
	// TeamsInverseTable is the table name for the Team entity.
	// It exists in this package in order to avoid circular dependency with the "team" package.
	TeamsInverseTable = "teams"
)

// Columns holds all SQL columns for item fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldMission,
	FieldProblematics,
	FieldScope,
	FieldAudience,
	FieldHowItWorks,
	FieldArchitecture,
	FieldInnovation,
	FieldUseCase,
	FieldImageURL,
	FieldTeam,
	FieldLink,
	FieldCreatedAt,
	FieldUpdatedAt,
}

var (
	// IndustriesPrimaryKey and IndustriesColumn2 are the table columns denoting the
	// primary key for the industries relation (M2M).
	IndustriesPrimaryKey = []string{"item_id", "industry_id"}
	// AudiencesPrimaryKey and AudiencesColumn2 are the table columns denoting the
	// primary key for the audiences relation (M2M).
	AudiencesPrimaryKey = []string{"item_id", "audience_id"}
	// FunctionsPrimaryKey and FunctionsColumn2 are the table columns denoting the
	// primary key for the functions relation (M2M).
	FunctionsPrimaryKey = []string{"item_id", "business_function_id"}
	// TeamsPrimaryKey and TeamsColumn2 are the table columns denoting the
	// primary key for the teams relation (M2M).
	TeamsPrimaryKey = []string{"item_id", "team_id"}
)

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Item queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByMission orders the results by the mission field.
func ByMission(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMission, opts...).ToFunc()
}

// ByProblematics orders the results by the problematics field.
func ByProblematics(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblematics, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByAudience orders the results by the audience field.
func ByAudience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudience, opts...).ToFunc()
}

// ByHowItWorks orders the results by the how_it_works field.
func ByHowItWorks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHowItWorks, opts...).ToFunc()
}

// ByArchitecture orders the results by the architecture field.
func ByArchitecture(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchitecture, opts...).ToFunc()
}

// ByInnovation orders the results by the innovation field.
func ByInnovation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInnovation, opts...).ToFunc()
}

// ByUseCase orders the results by the use_case field.
func ByUseCase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUseCase, opts...).ToFunc()
}

// ByImageURL orders the results by the image_url field.
func ByImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageURL, opts...).ToFunc()
}

// ByLink orders the results by the link field.
func ByLink(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLink, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByIndustriesCount orders the results by industries count.
func ByIndustriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newIndustriesStep(), opts...)
	}
}

// ByIndustries orders the results by industries terms.
func ByIndustries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIndustriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAudiencesCount orders the results by audiences count.
func ByAudiencesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAudiencesStep(), opts...)
	}
}

// ByAudiences orders the results by audiences terms.
func ByAudiences(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAudiencesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFunctionsCount orders the results by functions count.
func ByFunctionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFunctionsStep(), opts...)
	}
}

// ByFunctions orders the results by functions terms.
func ByFunctions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFunctionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTeamsCount orders the results by teams count.
func ByTeamsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTeamsStep(), opts...)
	}
}

// ByTeams orders the results by teams terms.
func ByTeams(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTeamsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newIndustriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IndustriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, IndustriesTable, IndustriesPrimaryKey...),
	)
}
func newAudiencesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AudiencesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, AudiencesTable, AudiencesPrimaryKey...),
	)
}
func newFunctionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FunctionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, FunctionsTable, FunctionsPrimaryKey...),
	)
}
func newTeamsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TeamsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, TeamsTable, TeamsPrimaryKey...),
	)
}
