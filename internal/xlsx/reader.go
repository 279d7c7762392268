package xlsx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/smartjects/importer/constants"
)

// DefaultSheet is the worksheet the importer reads when none is given.
const DefaultSheet = "smartjects"

// ReadSheet opens the workbook at path and returns one header-keyed map per
// data row. Header names are passed through as-is; downstream row parsing
// owns normalization and aliasing.
func ReadSheet(path, sheet string, logger *slog.Logger) ([]map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readRows(f, sheet, logger)
}

// Read parses a workbook from r, for callers that already hold the bytes.
func Read(r io.Reader, sheet string, logger *slog.Logger) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readRows(f, sheet, logger)
}

func readRows(f *excelize.File, sheet string, logger *slog.Logger) ([]map[string]string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if sheet == "" {
		sheet = DefaultSheet
	}
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		return nil, fmt.Errorf("sheet %q not found (have: %s)", sheet, strings.Join(f.GetSheetList(), ", "))
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	headers := raw[0]
	if err := validateHeaders(headers); err != nil {
		return nil, err
	}

	out := make([]map[string]string, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		if blankRow(cells) {
			continue
		}
		m := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(cells) {
				m[h] = cells[i]
			} else {
				m[h] = ""
			}
		}
		out = append(out, m)
	}

	logger.Info("xlsx.read.ok", "sheet", sheet, "rows", len(out), "columns", len(headers))
	return out, nil
}

// validateHeaders requires at least a recognizable title column, so that a
// workbook with the wrong sheet layout fails fast instead of producing a
// run full of empty-title skips.
func validateHeaders(headers []string) error {
	for _, h := range headers {
		norm := constants.NormalizeHeader(h)
		for _, alias := range constants.FieldAliases[constants.FieldTitle] {
			if norm == alias {
				return nil
			}
		}
	}
	return fmt.Errorf("no title column among headers %v", headers)
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
