package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/smartjects/importer/constants"
	"github.com/smartjects/importer/internal/batch"
	"github.com/smartjects/importer/internal/export"
)

func TestReportXLSX(t *testing.T) {
	t.Parallel()

	report := &batch.Report{
		Results: []batch.RowResult{
			{
				Title:  "Project X",
				Status: constants.RowStatusSuccess,
				MatchedCategories: map[constants.CategoryKind][]string{
					constants.KindIndustry: {"Healthcare & Life Sciences", "Finance & Banking"},
					constants.KindAudience: {"Researchers"},
				},
				LogoTier: constants.LogoDirect,
			},
			{
				Title:  "Project Y",
				Status: constants.RowStatusSkipped,
				Reason: constants.SkipExists,
			},
		},
		Unmapped: []batch.UnmappedTag{
			{Token: "quantum farming", Kind: constants.KindIndustry, Title: "Project X"},
		},
	}

	data, err := export.ReportXLSX(report, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	require.ElementsMatch(t, []string{"Results", "Unmapped Tags"}, f.GetSheetList())

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "Title", rows[0][0])

	require.Equal(t, "Project X", rows[1][0])
	require.Equal(t, string(constants.RowStatusSuccess), rows[1][1])
	require.Equal(t, "Healthcare & Life Sciences, Finance & Banking", rows[1][3])
	require.Equal(t, "Researchers", rows[1][4])
	require.Equal(t, string(constants.LogoDirect), rows[1][6])

	require.Equal(t, "Project Y", rows[2][0])
	require.Equal(t, string(constants.SkipExists), rows[2][2])

	unmapped, err := f.GetRows("Unmapped Tags")
	require.NoError(t, err)
	require.Len(t, unmapped, 2)
	require.Equal(t, []string{"quantum farming", string(constants.KindIndustry), "Project X"}, unmapped[1])
}

func TestReportXLSXEmptyReport(t *testing.T) {
	t.Parallel()

	data, err := export.ReportXLSX(&batch.Report{}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
