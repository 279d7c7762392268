package rows_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smartjects/importer/constants"
	"github.com/smartjects/importer/internal/rows"
)

func TestExtractTokensEmptyCell(t *testing.T) {
	t.Parallel()

	for _, mode := range []rows.Mode{rows.ModePermissive, rows.ModeStrictJSON} {
		tokens, err := rows.ExtractTokens(constants.FieldIndustries, "   ", mode)
		require.NoError(t, err)
		require.Empty(t, tokens)
	}
}

func TestExtractTokensStrictJSON(t *testing.T) {
	t.Parallel()

	tokens, err := rows.ExtractTokens(constants.FieldAudience, `["Researchers", " Developers "]`, rows.ModeStrictJSON)
	require.NoError(t, err)
	require.Equal(t, []string{"Researchers", "Developers"}, tokens)
}

func TestExtractTokensStrictRejectsProse(t *testing.T) {
	t.Parallel()

	_, err := rows.ExtractTokens(constants.FieldAudience, "Researchers, Developers", rows.ModeStrictJSON)
	var ferr *rows.FormatError
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, constants.FieldAudience, ferr.Field)
}

func TestExtractTokensStrictRejectsBlankItem(t *testing.T) {
	t.Parallel()

	_, err := rows.ExtractTokens(constants.FieldFunctions, `["Marketing", ""]`, rows.ModeStrictJSON)
	var ferr *rows.FormatError
	require.ErrorAs(t, err, &ferr)
}

func TestExtractTokensStrictRejectsNonStringItems(t *testing.T) {
	t.Parallel()

	_, err := rows.ExtractTokens(constants.FieldIndustries, `["Finance", 7]`, rows.ModeStrictJSON)
	var ferr *rows.FormatError
	require.ErrorAs(t, err, &ferr)
}

func TestExtractTokensPermissiveJSON(t *testing.T) {
	t.Parallel()

	tokens, err := rows.ExtractTokens(constants.FieldIndustries, `["Healthcare", "Finance"]`, rows.ModePermissive)
	require.NoError(t, err)
	require.Equal(t, []string{"Healthcare", "Finance"}, tokens)
}

func TestExtractTokensPermissiveSingleQuotes(t *testing.T) {
	t.Parallel()

	tokens, err := rows.ExtractTokens(constants.FieldTeam, `['MIT', 'Stanford University']`, rows.ModePermissive)
	require.NoError(t, err)
	require.Equal(t, []string{"MIT", "Stanford University"}, tokens)
}

func TestExtractTokensPermissiveCommaFallback(t *testing.T) {
	t.Parallel()

	tokens, err := rows.ExtractTokens(constants.FieldIndustries, "Healthcare, Finance, ", rows.ModePermissive)
	require.NoError(t, err)
	require.Equal(t, []string{"Healthcare", "Finance"}, tokens)
}

func TestExtractTokensPermissiveMalformedBracket(t *testing.T) {
	t.Parallel()

	// Bracketed but not valid JSON: the inner text is split on commas.
	tokens, err := rows.ExtractTokens(constants.FieldIndustries, `[Healthcare, Finance]`, rows.ModePermissive)
	require.NoError(t, err)
	require.Equal(t, []string{"Healthcare", "Finance"}, tokens)
}

func TestParseProse(t *testing.T) {
	t.Parallel()

	items := rows.ParseProse("researchers, clinicians, and hospital executives.")
	require.Equal(t, []string{"researchers", "clinicians", "hospital executives"}, items)
}

func TestParseProseBareAnd(t *testing.T) {
	t.Parallel()

	items := rows.ParseProse("developers and analysts")
	require.Equal(t, []string{"developers", "analysts"}, items)
}
