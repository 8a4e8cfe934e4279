package models

import "time"

// TimeFormat is the display format for check-in timestamps.
const TimeFormat = "2006-01-02 15:04:05"

type Checkin struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EmployeeID  string    `gorm:"index;not null" json:"employee_id"`
	CheckinTime time.Time `gorm:"index;not null" json:"checkin_time"`
}

// CheckinRecord is one row of the admin history view: a ledger entry joined
// with its attendee.
type CheckinRecord struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	EmployeeID  string `json:"employee_id"`
	TableNumber int    `json:"table_number"`
	CheckinTime string `json:"checkin_time"`
}
