package rows_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smartjects/importer/internal/rows"
)

func TestParseRowHeaderAliases(t *testing.T) {
	t.Parallel()

	row := rows.ParseRow(map[string]string{
		"Name":         "Project X",
		"How It Works": "magic",
		"University":   "MIT",
		"URL":          "https://example.com/x",
		"Industries":   `["Healthcare"]`,
	})
	require.Equal(t, "Project X", row.Title)
	require.Equal(t, "magic", row.HowItWorks)
	require.Equal(t, "MIT", row.Team)
	require.Equal(t, "https://example.com/x", row.Link)
	require.Equal(t, `["Healthcare"]`, row.Industries)
}

func TestParseRowUnderscoreVariants(t *testing.T) {
	t.Parallel()

	row := rows.ParseRow(map[string]string{
		"how_it_works":  "pipeline",
		"PUBLISH_DATE":  "2024-01-02T00:00:00Z",
		"  use_case   ": "triage",
	})
	require.Equal(t, "pipeline", row.HowItWorks)
	require.Equal(t, "2024-01-02T00:00:00Z", row.PublishDate)
	require.Equal(t, "triage", row.UseCase)
}

func TestParseRowFirstNonEmptyAliasWins(t *testing.T) {
	t.Parallel()

	row := rows.ParseRow(map[string]string{
		"team":  "",
		"teams": "Stanford University",
	})
	require.Equal(t, "Stanford University", row.Team)
}

func TestParseRowTrimsValues(t *testing.T) {
	t.Parallel()

	row := rows.ParseRow(map[string]string{"title": "  Project X  "})
	require.Equal(t, "Project X", row.Title)
}
