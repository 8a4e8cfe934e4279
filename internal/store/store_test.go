package store

import (
	"testing"

	"github.com/ilyonsnfi/LCHC-Checkin/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database. MaxOpenConns(1) keeps the
// pool from silently handing out a second, empty :memory: database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Checkin{},
		&models.Account{},
		&models.Session{},
		&models.Setting{},
	))
	return db
}

func seedRoster(t *testing.T, roster *RosterStore, users ...models.User) {
	t.Helper()
	for i := range users {
		require.NoError(t, roster.CreateOne(&users[i]))
	}
}
