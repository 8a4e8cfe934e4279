// Package importer reconciles messy human-authored spreadsheets against the
// roster: header aliases are matched in a fixed priority order, each data row
// is validated independently, and valid rows are upserted as one
// partial-success batch.
package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ilyonsnfi/LCHC-Checkin/internal/models"
	"github.com/ilyonsnfi/LCHC-Checkin/internal/store"
)

// Canonical import fields, in validation order.
const (
	fieldFirstName   = "first_name"
	fieldLastName    = "last_name"
	fieldEmployeeID  = "employee_id"
	fieldTableNumber = "table_number"
)

// fieldAliases maps each canonical field to its accepted header spellings.
// Order matters: the first alias present in the header wins. Misspellings
// seen in real event rosters are accepted on purpose.
var fieldAliases = map[string][]string{
	fieldFirstName:   {"first name", "firstname", "first", "fname"},
	fieldLastName:    {"last name", "lastname", "last", "lname", "surname"},
	fieldEmployeeID:  {"employee id", "employeeid", "employee", "id", "badge", "badge id", "employe id", "employeid", "emp id", "emp_id"},
	fieldTableNumber: {"table number", "tablenumber", "table", "table_number", "table num"},
}

// fieldOrder fixes the resolution and validation sequence.
var fieldOrder = []string{fieldFirstName, fieldLastName, fieldEmployeeID, fieldTableNumber}

// Result mirrors the import response contract.
type Result struct {
	Success  bool     `json:"success"`
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
	Message  string   `json:"message,omitempty"`
}

type Importer struct {
	Roster *store.RosterStore
}

func New(roster *store.RosterStore) *Importer { return &Importer{Roster: roster} }

// resolveColumns maps each canonical field to a column index using the alias
// tables. A field with no alias present rejects the whole import.
func resolveColumns(header []string) (map[string]int, error) {
	headerMap := make(map[string]int, len(header))
	for idx, cell := range header {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		if normalized != "" {
			headerMap[normalized] = idx
		}
	}

	columns := make(map[string]int, len(fieldOrder))
	for _, field := range fieldOrder {
		found := false
		for _, alias := range fieldAliases[field] {
			if idx, ok := headerMap[alias]; ok {
				columns[field] = idx
				found = true
				break
			}
		}
		if !found {
			examples := strings.Join(fieldAliases[field][:3], ", ")
			return nil, fmt.Errorf("Missing required column for %s. Expected one of: %s", field, examples)
		}
	}
	return columns, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseRow validates one data row. rowNum is the 1-based spreadsheet row
// number (header = row 1) used in error messages. A panic from unexpected
// cell content is captured as a row error so the batch keeps moving.
func parseRow(row []string, columns map[string]int, rowNum int) (user *models.User, rowErr string) {
	defer func() {
		if r := recover(); r != nil {
			user = nil
			rowErr = fmt.Sprintf("Row %d: Unexpected error - %v", rowNum, r)
		}
	}()

	firstName := cellAt(row, columns[fieldFirstName])
	lastName := cellAt(row, columns[fieldLastName])
	employeeID := cellAt(row, columns[fieldEmployeeID])
	tableRaw := cellAt(row, columns[fieldTableNumber])

	if firstName == "" {
		return nil, fmt.Sprintf("Row %d: Missing first name", rowNum)
	}
	if lastName == "" {
		return nil, fmt.Sprintf("Row %d: Missing last name", rowNum)
	}
	if employeeID == "" {
		return nil, fmt.Sprintf("Row %d: Missing employee ID", rowNum)
	}
	if tableRaw == "" {
		return nil, fmt.Sprintf("Row %d: Missing table number", rowNum)
	}

	tableNumber, err := strconv.Atoi(tableRaw)
	if err != nil {
		return nil, fmt.Sprintf("Row %d: %v", rowNum, err)
	}

	return &models.User{
		FirstName:   firstName,
		LastName:    lastName,
		EmployeeID:  employeeID,
		TableNumber: tableNumber,
	}, ""
}

// Import runs the full reconciliation: header resolution, per-row
// validation, then a partial-success batch upsert. Row errors never abort
// the batch and never flip a batch with survivors to failure.
func (im *Importer) Import(rows [][]string) Result {
	if len(rows) == 0 {
		return Result{Success: false, Errors: []string{}, Message: "Spreadsheet appears to be empty"}
	}

	columns, err := resolveColumns(rows[0])
	if err != nil {
		return Result{Success: false, Errors: []string{}, Message: err.Error()}
	}

	errors := []string{}
	var candidates []models.User
	for i, row := range rows[1:] {
		rowNum := i + 2
		if rowEmpty(row) {
			continue
		}
		user, rowErr := parseRow(row, columns, rowNum)
		if rowErr != "" {
			errors = append(errors, rowErr)
			continue
		}
		candidates = append(candidates, *user)
	}

	if len(candidates) == 0 {
		return Result{Success: false, Errors: errors, Message: "No valid users found"}
	}

	imported, batchErrors := im.Roster.UpsertBatch(candidates)
	errors = append(errors, batchErrors...)
	return Result{Success: true, Imported: imported, Errors: errors}
}
