package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestAllowedExtension(t *testing.T) {
	assert.True(t, AllowedExtension("roster.xlsx"))
	assert.True(t, AllowedExtension("ROSTER.XLSX"))
	assert.True(t, AllowedExtension("roster.csv"))
	assert.True(t, AllowedExtension("macro.xlsm"))
	assert.False(t, AllowedExtension("roster.pdf"))
	assert.False(t, AllowedExtension("roster.txt"))
	assert.False(t, AllowedExtension("roster"))
}

func TestDecodeFile_CSV(t *testing.T) {
	data := []byte("First,Last,Badge ID,Table\nAnn,Lee,E1,4\n")

	rows, err := DecodeFile("roster.csv", data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"First", "Last", "Badge ID", "Table"}, rows[0])
	assert.Equal(t, []string{"Ann", "Lee", "E1", "4"}, rows[1])
}

func TestDecodeFile_CSVAllowsRaggedRows(t *testing.T) {
	data := []byte("First,Last,Badge ID,Table\nAnn,Lee\n")

	rows, err := DecodeFile("roster.csv", data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Ann", "Lee"}, rows[1])
}

func TestDecodeFile_Excel(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"First", "Last", "Badge ID", "Table"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Ann", "Lee", "E1", 4}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := DecodeFile("roster.xlsx", buf.Bytes())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"First", "Last", "Badge ID", "Table"}, rows[0])
	assert.Equal(t, []string{"Ann", "Lee", "E1", "4"}, rows[1])
}

func TestDecodeFile_GarbageExcelFails(t *testing.T) {
	_, err := DecodeFile("roster.xlsx", []byte("not a zip archive"))
	assert.Error(t, err)
}

// CSV and xlsx carrying the same rows must reconcile identically.
func TestDecode_FormatsAreEquivalent(t *testing.T) {
	csvRows, err := DecodeFile("r.csv", []byte("First,Last,Badge ID,Table\nAnn,Lee,E1,4\n"))
	require.NoError(t, err)

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"First", "Last", "Badge ID", "Table"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Ann", "Lee", "E1", "4"}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	xlsxRows, err := DecodeFile("r.xlsx", buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, csvRows, xlsxRows)
}
