package constants

import "strings"

// Field is a logical column of the source workbook.
type Field string

const (
	FieldTitle        Field = "title"
	FieldMission      Field = "mission"
	FieldProblematics Field = "problematics"
	FieldScope        Field = "scope"
	FieldAudience     Field = "audience"
	FieldHowItWorks   Field = "how_it_works"
	FieldArchitecture Field = "architecture"
	FieldInnovation   Field = "innovation"
	FieldUseCase      Field = "use_case"
	FieldIndustries   Field = "industries"
	FieldFunctions    Field = "functions"
	FieldTeam         Field = "team"
	FieldLink         Field = "link"
	FieldPublishDate  Field = "publish_date"
	FieldSummarized   Field = "summarized"
)

// FieldAliases maps each logical field to the header spellings accepted in
// source files. Headers are compared after NormalizeHeader, so variants only
// need to cover genuinely different names, not spacing or casing.
var FieldAliases = map[Field][]string{
	FieldTitle:        {"name", "title"},
	FieldMission:      {"mission"},
	FieldProblematics: {"problematics"},
	FieldScope:        {"scope"},
	FieldAudience:     {"audience"},
	FieldHowItWorks:   {"how_it_works", "how it works"},
	FieldArchitecture: {"architecture"},
	FieldInnovation:   {"innovation"},
	FieldUseCase:      {"use_case", "use case"},
	FieldIndustries:   {"industries"},
	FieldFunctions:    {"functions"},
	FieldTeam:         {"team", "teams", "university", "organization"},
	FieldLink:         {"link", "url"},
	FieldPublishDate:  {"publish_date", "date"},
	FieldSummarized:   {"summarized"},
}

// NormalizeHeader folds a raw header cell into its lookup form: trimmed,
// lowercased, with underscores and runs of whitespace collapsed to one space.
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "_", " ")
	return strings.Join(strings.Fields(h), " ")
}
