package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/smartjects/importer/constants"
	"github.com/smartjects/importer/internal/batch"
)

// ReportXLSX renders a batch report as an XLSX workbook (as bytes): a
// per-row results sheet plus a review sheet of tags no vocabulary matched.
func ReportXLSX(report *batch.Report, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f := excelize.NewFile()
	const resultsSheet = "Results"
	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return nil, err
	}

	headers := []string{
		"Title",
		"Status",
		"Skip Reason",
		"Industries",
		"Audience",
		"Business Functions",
		"Logo Tier",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(resultsSheet, cell, h)
	}

	row := 2
	for _, r := range report.Results {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(resultsSheet, cell, v)
		}
		write(1, r.Title)
		write(2, string(r.Status))
		write(3, string(r.Reason))
		write(4, joinTags(r.MatchedCategories[constants.KindIndustry]))
		write(5, joinTags(r.MatchedCategories[constants.KindAudience]))
		write(6, joinTags(r.MatchedCategories[constants.KindFunction]))
		write(7, string(r.LogoTier))
		write(8, truncate(r.Err, 140))
		row++
	}

	_ = f.SetColWidth(resultsSheet, "A", "A", 40) // title
	_ = f.SetColWidth(resultsSheet, "B", "C", 16) // status, reason
	_ = f.SetColWidth(resultsSheet, "D", "F", 36) // tag lists
	_ = f.SetColWidth(resultsSheet, "G", "G", 18) // logo tier
	_ = f.SetColWidth(resultsSheet, "H", "H", 48) // error

	if err := writeUnmappedSheet(f, report.Unmapped); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	logger.Info("export.xlsx.ok",
		"rows", len(report.Results),
		"unmapped", len(report.Unmapped),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeUnmappedSheet(f *excelize.File, unmapped []batch.UnmappedTag) error {
	const sheet = "Unmapped Tags"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	for i, h := range []string{"Tag", "Vocabulary", "Item Title"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for i, u := range unmapped {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, u.Token)
		write(2, string(u.Kind))
		write(3, u.Title)
	}

	_ = f.SetColWidth(sheet, "A", "A", 32)
	_ = f.SetColWidth(sheet, "B", "B", 20)
	_ = f.SetColWidth(sheet, "C", "C", 40)
	return nil
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
