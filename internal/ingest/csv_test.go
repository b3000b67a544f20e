package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV_Basic(t *testing.T) {
	path := writeTestCSV(t, `Company Name,Company Type,Company Location,Standardized Category,Review Count
Central Hospital,Government Hospital,North,Hostility,12
Westside Care,Small Private Hospital,West,Expensive Costs,4
`)

	records, err := LoadCSV(path, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Central Hospital", records[0].CompanyName)
	assert.Equal(t, "Hostility", records[0].Category)
	assert.Equal(t, "4", records[1].ReviewCount)
}

func TestLoadCSV_QuotedCommasAndTrimming(t *testing.T) {
	path := writeTestCSV(t, `Company Name,Standardized Category,Review Count
"Hope, Faith & Care Hospital",  Hostility  ,"1,204"
`)

	records, err := LoadCSV(path, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Hope, Faith & Care Hospital", records[0].CompanyName)
	assert.Equal(t, "Hostility", records[0].Category)
	assert.Equal(t, "1,204", records[0].ReviewCount)
}

func TestLoadCSV_CustomDelimiter(t *testing.T) {
	path := writeTestCSV(t, "Company Name;Standardized Category\nCentral Hospital;Hostility\n")

	records, err := LoadCSV(path, ';')
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Central Hospital", records[0].CompanyName)
}

func TestLoadCSV_ShortRows(t *testing.T) {
	path := writeTestCSV(t, `Company Name,Standardized Category,Review Count
Central Hospital,Hostility
`)

	records, err := LoadCSV(path, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].ReviewCount) // short row reads as empty
}

func TestLoadCSV_HeaderOnly(t *testing.T) {
	path := writeTestCSV(t, "Company Name,Standardized Category\n")

	_, err := LoadCSV(path, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data rows")
}

func TestLoadCSV_MissingRequiredColumn(t *testing.T) {
	path := writeTestCSV(t, "Standardized Category,Review Count\nHostility,3\n")

	_, err := LoadCSV(path, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Company Name")
}

func TestLoadCSV_FileMissing(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv"), 0)
	require.Error(t, err)
}
