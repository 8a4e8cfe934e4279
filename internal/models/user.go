package models

// User is a pre-registered attendee, identified by badge (employee ID).
// The numeric ID is a storage surrogate only; EmployeeID is the identity key.
type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	EmployeeID  string `gorm:"uniqueIndex;not null" json:"employee_id"`
	FirstName   string `gorm:"not null" json:"first_name"`
	LastName    string `gorm:"not null" json:"last_name"`
	TableNumber int    `gorm:"not null" json:"table_number"`

	// Derived from the checkin ledger, never stored.
	IsCheckedIn bool   `gorm:"-" json:"is_checked_in"`
	LastCheckin string `gorm:"-" json:"last_checkin,omitempty"`
}
