package store

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/ilyonsnfi/LCHC-Checkin/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicateEmployeeID is returned by CreateOne when the badge ID is
// already registered. Batch import does not use it: imports overwrite.
var ErrDuplicateEmployeeID = errors.New("duplicate employee_id")

type RosterStore struct {
	DB *gorm.DB
}

func NewRosterStore(db *gorm.DB) *RosterStore { return &RosterStore{DB: db} }

// Lookup finds an attendee by badge ID. A nil result is "not found", not an
// error.
func (s *RosterStore) Lookup(employeeID string) *models.User {
	var u models.User
	if err := s.DB.Where("employee_id = ?", employeeID).First(&u).Error; err != nil {
		return nil
	}
	return &u
}

func (s *RosterStore) CreateOne(u *models.User) error {
	if s.Lookup(u.EmployeeID) != nil {
		return ErrDuplicateEmployeeID
	}
	return s.DB.Create(u).Error
}

// UpsertBatch inserts or replaces each record by employee_id. A failing row
// is reported as "User N: msg" and never aborts the rest of the batch.
func (s *RosterStore) UpsertBatch(users []models.User) (int, []string) {
	imported := 0
	var errs []string
	for i := range users {
		u := users[i]
		u.ID = 0
		err := s.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"first_name", "last_name", "table_number"}),
		}).Create(&u).Error
		if err != nil {
			errs = append(errs, fmt.Sprintf("User %d: %v", i+1, err))
			continue
		}
		imported++
	}
	return imported, errs
}

// Search matches a case-insensitive substring against first name, last name,
// employee ID, or the decimal form of the table number. A blank query lists
// everyone. Ordering is (first_name, last_name) ascending.
func (s *RosterStore) Search(query string) []models.User {
	tx := s.DB.Model(&models.User{})
	if q := strings.TrimSpace(query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(employee_id) LIKE ? OR CAST(table_number AS TEXT) LIKE ?",
			like, like, like, like,
		)
	}
	var users []models.User
	if err := tx.Order("first_name, last_name").Find(&users).Error; err != nil {
		log.Printf("roster search failed: %v", err)
		return nil
	}
	return users
}

// DeleteAll wipes the roster and returns the pre-deletion count. Storage
// failure is logged and reported as 0.
func (s *RosterStore) DeleteAll() int64 {
	var count int64
	if err := s.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("roster count failed: %v", err)
		return 0
	}
	if err := s.DB.Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		log.Printf("roster delete failed: %v", err)
		return 0
	}
	return count
}

// TableGroup is one table in the seating overview.
type TableGroup struct {
	TableNumber int      `json:"table_number"`
	Attendees   []string `json:"attendees"`
	Count       int      `json:"count"`
}

// GroupedByTable applies the same filter as Search and groups the results by
// table number ascending. Names keep the order they were grouped in.
func (s *RosterStore) GroupedByTable(query string) []TableGroup {
	users := s.Search(query)

	byTable := make(map[int][]string)
	var tables []int
	for _, u := range users {
		if _, seen := byTable[u.TableNumber]; !seen {
			tables = append(tables, u.TableNumber)
		}
		byTable[u.TableNumber] = append(byTable[u.TableNumber], u.FirstName+" "+u.LastName)
	}

	sort.Ints(tables)
	groups := make([]TableGroup, 0, len(tables))
	for _, t := range tables {
		names := byTable[t]
		groups = append(groups, TableGroup{TableNumber: t, Attendees: names, Count: len(names)})
	}
	return groups
}
