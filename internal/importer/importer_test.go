package importer

import (
	"testing"

	"github.com/ilyonsnfi/LCHC-Checkin/internal/models"
	"github.com/ilyonsnfi/LCHC-Checkin/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestImporter(t *testing.T) (*Importer, *store.RosterStore) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Checkin{}))

	roster := store.NewRosterStore(db)
	return New(roster), roster
}

func TestImport_BasicRow(t *testing.T) {
	im, roster := newTestImporter(t)

	res := im.Import([][]string{
		{"First", "Last", "Badge ID", "Table"},
		{"Ann", "Lee", "E1", "4"},
	})

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Imported)
	assert.Empty(t, res.Errors)

	got := roster.Lookup("E1")
	require.NotNil(t, got)
	assert.Equal(t, "Ann", got.FirstName)
	assert.Equal(t, 4, got.TableNumber)
}

func TestImport_AnyAliasSpellingWorks(t *testing.T) {
	headers := [][]string{
		{"first name", "last name", "employee id", "table number"},
		{"FirstName", "Surname", "Badge", "Table Num"},
		{"  FNAME  ", "LName", "emp_id", "tablenumber"},
		{"First", "Last", "employeid", "table_number"}, // accepted misspelling
	}

	for _, header := range headers {
		im, roster := newTestImporter(t)
		res := im.Import([][]string{header, {"Ann", "Lee", "E1", "4"}})

		assert.True(t, res.Success, "header %v", header)
		assert.Equal(t, 1, res.Imported, "header %v", header)
		assert.Empty(t, res.Errors, "header %v", header)
		require.NotNil(t, roster.Lookup("E1"), "header %v", header)
	}
}

func TestImport_FirstAliasWins(t *testing.T) {
	im, roster := newTestImporter(t)

	// Both "employee id" and "id" are present; "employee id" is earlier in
	// the alias list and must be the one used.
	res := im.Import([][]string{
		{"First", "Last", "ID", "Employee ID", "Table"},
		{"Ann", "Lee", "WRONG", "E1", "4"},
	})

	require.True(t, res.Success)
	assert.NotNil(t, roster.Lookup("E1"))
	assert.Nil(t, roster.Lookup("WRONG"))
}

func TestImport_MissingColumnRejectsWholeFile(t *testing.T) {
	im, roster := newTestImporter(t)

	res := im.Import([][]string{
		{"First", "Last", "Badge ID"}, // no table column at all
		{"Ann", "Lee", "E1"},
	})

	assert.False(t, res.Success)
	assert.Equal(t, 0, res.Imported)
	assert.Equal(t, "Missing required column for table_number. Expected one of: table number, tablenumber, table", res.Message)
	assert.Nil(t, roster.Lookup("E1"), "no rows may be processed when a column is missing")
}

func TestImport_RowValidation(t *testing.T) {
	im, roster := newTestImporter(t)

	res := im.Import([][]string{
		{"First", "Last", "Badge ID", "Table"},
		{"Ann", "Lee", "E1", "4"},
		{"", "Ying", "E2", "5"},         // row 3: missing first name
		{"Cara", "Young", "E3", "nine"}, // row 4: non-numeric table
		{"", "", "", ""},                // row 5: fully blank, silently skipped
		{"Dan", "Oh", "E5", "6"},        // row 6: valid, must still import
	})

	assert.True(t, res.Success, "partial failure is still a success response")
	assert.Equal(t, 2, res.Imported)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, "Row 3: Missing first name", res.Errors[0])
	assert.Contains(t, res.Errors[1], "Row 4:")
	assert.Contains(t, res.Errors[1], "nine", "the parse error text surfaces the bad value")

	assert.NotNil(t, roster.Lookup("E1"))
	assert.Nil(t, roster.Lookup("E2"))
	assert.Nil(t, roster.Lookup("E3"))
	assert.NotNil(t, roster.Lookup("E5"), "a bad row must not abort later rows")
}

func TestImport_ShortRowsAreMissingFields(t *testing.T) {
	im, _ := newTestImporter(t)

	// xlsx readers drop trailing empty cells; a short row is a missing
	// field, not an index panic.
	res := im.Import([][]string{
		{"First", "Last", "Badge ID", "Table"},
		{"Ann", "Lee"},
	})

	assert.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Row 2: Missing employee ID", res.Errors[0])
}

func TestImport_ValuesAreTrimmed(t *testing.T) {
	im, roster := newTestImporter(t)

	res := im.Import([][]string{
		{"First", "Last", "Badge ID", "Table"},
		{"  Ann ", " Lee ", " E1 ", " 4 "},
	})

	require.True(t, res.Success)
	got := roster.Lookup("E1")
	require.NotNil(t, got)
	assert.Equal(t, "Ann", got.FirstName)
	assert.Equal(t, "Lee", got.LastName)
}

func TestImport_NoValidRows(t *testing.T) {
	im, _ := newTestImporter(t)

	res := im.Import([][]string{
		{"First", "Last", "Badge ID", "Table"},
		{"Ann", "", "E1", "4"},
	})

	assert.False(t, res.Success)
	assert.Equal(t, "No valid users found", res.Message)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Row 2: Missing last name", res.Errors[0])
}

func TestImport_EmptySheet(t *testing.T) {
	im, _ := newTestImporter(t)

	res := im.Import(nil)
	assert.False(t, res.Success)
	assert.Equal(t, "Spreadsheet appears to be empty", res.Message)
}

func TestImport_ReimportOverwrites(t *testing.T) {
	im, roster := newTestImporter(t)

	first := im.Import([][]string{
		{"First", "Last", "Badge ID", "Table"},
		{"Ann", "Lee", "E1", "4"},
	})
	require.True(t, first.Success)

	second := im.Import([][]string{
		{"fname", "lname", "badge", "table"},
		{"Anna", "Lee-Park", "E1", "7"},
	})
	require.True(t, second.Success)
	assert.Equal(t, 1, second.Imported)

	all := roster.Search("")
	require.Len(t, all, 1)
	assert.Equal(t, "Anna", all[0].FirstName)
	assert.Equal(t, 7, all[0].TableNumber)
}
