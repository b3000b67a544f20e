// Package ingest loads raw review rows from report files. It understands the
// category report layout exported by the review team: one header row naming
// the columns, one row per (company, category) pair. Column order is free;
// columns are resolved by header name.
package ingest

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/quality-care/careview/internal/model"
)

// Report column headers.
const (
	colCompanyName     = "Company Name"
	colCompanyType     = "Company Type"
	colCompanyLocation = "Company Location"
	colCategory        = "Standardized Category"
	colReviewCount     = "Review Count"
)

// requiredColumns must be present in the header row. The remaining columns
// are optional; missing ones read as empty and are handled downstream by
// normalization.
var requiredColumns = []string{colCompanyName, colCategory}

// Options configures report loading.
type Options struct {
	Sheet     string // xlsx worksheet name; empty means the first sheet
	Delimiter rune   // csv field delimiter; 0 means ','
}

// Load reads raw records from the report at path, dispatching on the file
// extension. Supported formats are .xlsx and .csv.
func Load(path string, opts Options) ([]model.RawRecord, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return LoadXLSX(path, opts.Sheet)
	case ".csv":
		return LoadCSV(path, opts.Delimiter)
	default:
		return nil, eris.Errorf("ingest: unsupported report format %q (want .xlsx or .csv)", ext)
	}
}

// mapRows turns a header row plus data rows into raw records. Values are
// trimmed; rows shorter than the header read missing cells as empty.
func mapRows(rows [][]string) ([]model.RawRecord, error) {
	if len(rows) < 2 {
		return nil, eris.New("ingest: report has no data rows")
	}

	header := rows[0]
	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		colIdx[strings.TrimSpace(col)] = i
	}

	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, eris.Errorf("ingest: missing required column %q", col)
		}
	}

	records := make([]model.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, model.RawRecord{
			CompanyName:     getCol(row, colIdx, colCompanyName),
			CompanyType:     getCol(row, colIdx, colCompanyType),
			CompanyLocation: getCol(row, colIdx, colCompanyLocation),
			Category:        getCol(row, colIdx, colCategory),
			ReviewCount:     getCol(row, colIdx, colReviewCount),
		})
	}

	return records, nil
}

// getCol safely retrieves a column value from a row.
func getCol(row []string, colIdx map[string]int, col string) string {
	idx, ok := colIdx[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
