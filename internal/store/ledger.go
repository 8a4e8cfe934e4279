package store

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/ilyonsnfi/LCHC-Checkin/internal/models"
	"gorm.io/gorm"
)

// CheckinLedger is the append-mostly log of badge scans. It never verifies
// that the employee ID exists in the roster; that check belongs to callers.
type CheckinLedger struct {
	DB *gorm.DB
}

func NewCheckinLedger(db *gorm.DB) *CheckinLedger { return &CheckinLedger{DB: db} }

func (l *CheckinLedger) Record(employeeID string) bool {
	row := models.Checkin{EmployeeID: employeeID, CheckinTime: time.Now()}
	if err := l.DB.Create(&row).Error; err != nil {
		log.Printf("checkin insert failed for %s: %v", employeeID, err)
		return false
	}
	return true
}

// Checkout removes the most recent check-in event for the given badge.
// Returns false when the badge has no events.
func (l *CheckinLedger) Checkout(employeeID string) bool {
	res := l.DB.Where(
		"employee_id = ? AND checkin_time = (SELECT MAX(checkin_time) FROM checkins WHERE employee_id = ?)",
		employeeID, employeeID,
	).Delete(&models.Checkin{})
	if res.Error != nil {
		log.Printf("checkout failed for %s: %v", employeeID, res.Error)
		return false
	}
	return res.RowsAffected > 0
}

// ClearAll deletes every ledger entry and returns the pre-deletion count.
// Attendee records are untouched. Storage failure is logged and reported
// as 0.
func (l *CheckinLedger) ClearAll() int64 {
	var count int64
	if err := l.DB.Model(&models.Checkin{}).Count(&count).Error; err != nil {
		log.Printf("checkin count failed: %v", err)
		return 0
	}
	if err := l.DB.Where("1 = 1").Delete(&models.Checkin{}).Error; err != nil {
		log.Printf("checkin clear failed: %v", err)
		return 0
	}
	return count
}

type historyRow struct {
	FirstName   string
	LastName    string
	EmployeeID  string
	TableNumber int
	CheckinTime time.Time
}

// History joins the ledger with the roster, most recent first. The filter is
// the same case-insensitive substring match as the roster search, and also
// matches the formatted timestamp.
func (l *CheckinLedger) History(query string) []models.CheckinRecord {
	var rows []historyRow
	err := l.DB.Table("checkins").
		Select("users.first_name, users.last_name, users.employee_id, users.table_number, checkins.checkin_time").
		Joins("JOIN users ON users.employee_id = checkins.employee_id").
		Order("checkins.checkin_time DESC").
		Scan(&rows).Error
	if err != nil {
		log.Printf("history query failed: %v", err)
		return nil
	}

	q := strings.ToLower(strings.TrimSpace(query))
	records := make([]models.CheckinRecord, 0, len(rows))
	for _, r := range rows {
		rec := models.CheckinRecord{
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			EmployeeID:  r.EmployeeID,
			TableNumber: r.TableNumber,
			CheckinTime: r.CheckinTime.Format(models.TimeFormat),
		}
		if q != "" && !historyMatches(rec, q) {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func historyMatches(rec models.CheckinRecord, q string) bool {
	return strings.Contains(strings.ToLower(rec.FirstName), q) ||
		strings.Contains(strings.ToLower(rec.LastName), q) ||
		strings.Contains(strings.ToLower(rec.EmployeeID), q) ||
		strings.Contains(strconv.Itoa(rec.TableNumber), q) ||
		strings.Contains(rec.CheckinTime, q)
}

// StatusByEmployee derives per-attendee check-in state from the ledger with
// a single grouped query. The join pulls the concrete row holding each
// group's max so the timestamp column keeps its declared type.
func (l *CheckinLedger) StatusByEmployee() map[string]time.Time {
	var rows []models.Checkin
	err := l.DB.Raw(`
		SELECT c.employee_id, c.checkin_time
		FROM checkins c
		JOIN (
			SELECT employee_id, MAX(checkin_time) AS last_time
			FROM checkins
			GROUP BY employee_id
		) latest ON c.employee_id = latest.employee_id AND c.checkin_time = latest.last_time`,
	).Scan(&rows).Error
	if err != nil {
		log.Printf("checkin aggregation failed: %v", err)
		return nil
	}

	status := make(map[string]time.Time, len(rows))
	for _, r := range rows {
		status[r.EmployeeID] = r.CheckinTime
	}
	return status
}

// Annotate fills the derived IsCheckedIn/LastCheckin fields on a slice of
// roster records.
func (l *CheckinLedger) Annotate(users []models.User) {
	status := l.StatusByEmployee()
	for i := range users {
		if last, ok := status[users[i].EmployeeID]; ok {
			users[i].IsCheckedIn = true
			users[i].LastCheckin = last.Format(models.TimeFormat)
		}
	}
}
