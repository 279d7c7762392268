package xlsx_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/smartjects/importer/internal/xlsx"
)

// buildWorkbook writes rows onto one sheet and returns the workbook bytes.
func buildWorkbook(t *testing.T, sheet string, rows [][]string) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for r, cells := range rows {
		for c, value := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestReadKeysRowsByHeader(t *testing.T) {
	t.Parallel()

	wb := buildWorkbook(t, "smartjects", [][]string{
		{"Name", "Mission", "Industries"},
		{"Project X", "Help people", "Healthcare"},
		{"Project Y", "", "Finance"},
	})

	rows, err := xlsx.Read(wb, "", nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Project X", rows[0]["Name"])
	require.Equal(t, "Healthcare", rows[0]["Industries"])
	require.Equal(t, "", rows[1]["Mission"])
}

func TestReadCustomSheetName(t *testing.T) {
	t.Parallel()

	wb := buildWorkbook(t, "export", [][]string{
		{"Title"},
		{"Project X"},
	})

	rows, err := xlsx.Read(wb, "export", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Project X", rows[0]["Title"])
}

func TestReadSheetNotFound(t *testing.T) {
	t.Parallel()

	wb := buildWorkbook(t, "export", [][]string{{"Name"}, {"Project X"}})

	_, err := xlsx.Read(wb, "", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), `sheet "smartjects" not found`)
	require.Contains(t, err.Error(), "export")
}

func TestReadRequiresTitleColumn(t *testing.T) {
	t.Parallel()

	wb := buildWorkbook(t, "smartjects", [][]string{
		{"Mission", "Industries"},
		{"Help people", "Healthcare"},
	})

	_, err := xlsx.Read(wb, "", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no title column")
}

func TestReadSkipsBlankRows(t *testing.T) {
	t.Parallel()

	wb := buildWorkbook(t, "smartjects", [][]string{
		{"Name"},
		{"Project X"},
		{"   "},
		{"Project Y"},
	})

	rows, err := xlsx.Read(wb, "", nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Project Y", rows[1]["Name"])
}

func TestReadPadsShortRows(t *testing.T) {
	t.Parallel()

	wb := buildWorkbook(t, "smartjects", [][]string{
		{"Name", "Mission", "Link"},
		{"Project X", "Help people"},
	})

	rows, err := xlsx.Read(wb, "", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	link, ok := rows[0]["Link"]
	require.True(t, ok)
	require.Equal(t, "", link)
}
