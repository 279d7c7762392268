package rows

import (
	"strings"

	"github.com/smartjects/importer/constants"
	"github.com/smartjects/importer/internal/entity"
)

// ParseRow maps a raw header->value record onto a typed Row using the field
// alias table. Header variants in spacing, casing and underscore style all
// resolve to the same logical field; the first alias with a non-empty value
// wins. All values are trimmed.
func ParseRow(raw map[string]string) entity.Row {
	lookup := make(map[string]string, len(raw))
	for k, v := range raw {
		key := constants.NormalizeHeader(k)
		if key == "" {
			continue
		}
		if _, ok := lookup[key]; !ok || strings.TrimSpace(v) != "" {
			lookup[key] = strings.TrimSpace(v)
		}
	}

	get := func(f constants.Field) string {
		for _, alias := range constants.FieldAliases[f] {
			if v, ok := lookup[constants.NormalizeHeader(alias)]; ok && v != "" {
				return v
			}
		}
		return ""
	}

	return entity.Row{
		Title:        get(constants.FieldTitle),
		Mission:      get(constants.FieldMission),
		Problematics: get(constants.FieldProblematics),
		Scope:        get(constants.FieldScope),
		Audience:     get(constants.FieldAudience),
		HowItWorks:   get(constants.FieldHowItWorks),
		Architecture: get(constants.FieldArchitecture),
		Innovation:   get(constants.FieldInnovation),
		UseCase:      get(constants.FieldUseCase),
		Industries:   get(constants.FieldIndustries),
		Functions:    get(constants.FieldFunctions),
		Team:         get(constants.FieldTeam),
		Link:         get(constants.FieldLink),
		PublishDate:  get(constants.FieldPublishDate),
		Summarized:   get(constants.FieldSummarized),
	}
}
