package store

import (
	"log"

	"github.com/ilyonsnfi/LCHC-Checkin/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsStore struct {
	DB *gorm.DB
}

func NewSettingsStore(db *gorm.DB) *SettingsStore { return &SettingsStore{DB: db} }

// Seed inserts every default key that is absent. Existing values survive
// restarts and upgrades.
func (s *SettingsStore) Seed() {
	for key, value := range models.DefaultSettings {
		row := models.Setting{Key: key, Value: value}
		err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
		if err != nil {
			log.Printf("settings seed failed for %s: %v", key, err)
		}
	}
}

func (s *SettingsStore) GetAll() map[string]string {
	var rows []models.Setting
	if err := s.DB.Find(&rows).Error; err != nil {
		log.Printf("settings load failed: %v", err)
		return nil
	}

	settings := make(map[string]string, len(rows))
	for _, r := range rows {
		settings[r.Key] = r.Value
	}
	return settings
}

func (s *SettingsStore) Get(key string) string {
	var row models.Setting
	if err := s.DB.Where("key = ?", key).First(&row).Error; err != nil {
		return ""
	}
	return row.Value
}

// UpdatePartial upserts only the supplied keys; everything else is left
// untouched.
func (s *SettingsStore) UpdatePartial(patch map[string]string) bool {
	ok := true
	for key, value := range patch {
		row := models.Setting{Key: key, Value: value}
		err := s.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&row).Error
		if err != nil {
			log.Printf("settings update failed for %s: %v", key, err)
			ok = false
		}
	}
	return ok
}
