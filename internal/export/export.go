// Package export builds the two-section check-in history workbook.
package export

import (
	"fmt"

	"github.com/ilyonsnfi/LCHC-Checkin/internal/models"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Checkin History"

// HistoryWorkbook lays out checked-in attendees (most recent first) and
// attendees without check-ins as two sections separated by a blank row.
// Both section header rows are bold.
func HistoryWorkbook(checkedIn []models.CheckinRecord, notCheckedIn []models.User) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	row := 1
	if err := writeHeader(f, bold, row, []interface{}{"USERS WITH CHECKINS", "", "", "", ""}); err != nil {
		return nil, err
	}
	row++
	if err := writeHeader(f, bold, row, []interface{}{"First Name", "Last Name", "Employee ID", "Table Number", "Checkin Time"}); err != nil {
		return nil, err
	}
	row++
	for _, rec := range checkedIn {
		cells := []interface{}{rec.FirstName, rec.LastName, rec.EmployeeID, rec.TableNumber, rec.CheckinTime}
		if err := f.SetSheetRow(sheetName, cell(row), &cells); err != nil {
			return nil, err
		}
		row++
	}

	// Blank separator row between the two sections.
	row++

	if err := writeHeader(f, bold, row, []interface{}{"USERS WITHOUT CHECKINS", "", "", "", ""}); err != nil {
		return nil, err
	}
	row++
	if err := writeHeader(f, bold, row, []interface{}{"First Name", "Last Name", "Employee ID", "Table Number", "Status"}); err != nil {
		return nil, err
	}
	row++
	for _, u := range notCheckedIn {
		cells := []interface{}{u.FirstName, u.LastName, u.EmployeeID, u.TableNumber, "No Checkin"}
		if err := f.SetSheetRow(sheetName, cell(row), &cells); err != nil {
			return nil, err
		}
		row++
	}

	return f, nil
}

func writeHeader(f *excelize.File, style, row int, cells []interface{}) error {
	if err := f.SetSheetRow(sheetName, cell(row), &cells); err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, cell(row), fmt.Sprintf("E%d", row), style)
}

func cell(row int) string {
	return fmt.Sprintf("A%d", row)
}
