package storage

import (
	"log"

	"github.com/ilyonsnfi/LCHC-Checkin/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func OpenDB(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Checkin{},
		&models.Account{},
		&models.Session{},
		&models.Setting{},
	); err != nil {
		log.Fatal("failed migrate: ", err)
	}

	return db
}
