package ingest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/quality-care/careview/internal/model"
)

func createTestXLSX(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := f.AddSheet(name)
		require.NoError(t, err)
		for _, rowData := range rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				cell := row.AddCell()
				cell.SetString(cellData)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "report.xlsx")
	err := f.Save(path)
	require.NoError(t, err)
	return path
}

func reportHeader() []string {
	return []string{"Company Name", "Company Type", "Company Location", "Standardized Category", "Review Count"}
}

func TestLoadXLSX_Basic(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {
			reportHeader(),
			{"Central Hospital", "Government Hospital", "North", "Hostility", "12"},
			{"Westside Care", "Small Private Hospital", "West", "Expensive Costs", "4"},
		},
	})

	records, err := LoadXLSX(path, "Sheet1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, model.RawRecord{
		CompanyName:     "Central Hospital",
		CompanyType:     "Government Hospital",
		CompanyLocation: "North",
		Category:        "Hostility",
		ReviewCount:     "12",
	}, records[0])
	assert.Equal(t, "Westside Care", records[1].CompanyName)
}

func TestLoadXLSX_DefaultsToFirstSheet(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {
			reportHeader(),
			{"Central Hospital", "Government Hospital", "North", "Hostility", "12"},
		},
	})

	records, err := LoadXLSX(path, "")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestLoadXLSX_SheetNotFound(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {reportHeader()},
	})

	_, err := LoadXLSX(path, "Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadXLSX_ColumnOrderIrrelevant(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {
			{"Review Count", "Standardized Category", "Company Name"},
			{"7", "Hostility", "Central Hospital"},
		},
	})

	records, err := LoadXLSX(path, "Sheet1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Central Hospital", records[0].CompanyName)
	assert.Equal(t, "Hostility", records[0].Category)
	assert.Equal(t, "7", records[0].ReviewCount)
	assert.Equal(t, "", records[0].CompanyType) // optional column absent
}

func TestLoadXLSX_MissingRequiredColumn(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {
			{"Company Name", "Review Count"},
			{"Central Hospital", "7"},
		},
	})

	_, err := LoadXLSX(path, "Sheet1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Standardized Category")
}

func TestLoadXLSX_HeaderOnly(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {reportHeader()},
	})

	_, err := LoadXLSX(path, "Sheet1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data rows")
}

func TestLoadXLSX_FileMissing(t *testing.T) {
	_, err := LoadXLSX(filepath.Join(t.TempDir(), "absent.xlsx"), "")
	require.Error(t, err)
}
