package store

import (
	"log"
	"strings"
	"time"

	"github.com/ilyonsnfi/LCHC-Checkin/internal/models"
	"github.com/ilyonsnfi/LCHC-Checkin/internal/utils"
	"gorm.io/gorm"
)

// Sessions live for 30 days from creation.
const SessionTTL = 30 * 24 * time.Hour

type AccountStore struct {
	DB *gorm.DB
}

func NewAccountStore(db *gorm.DB) *AccountStore { return &AccountStore{DB: db} }

func foldUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// BootstrapAdmin creates the configured admin account if no admin exists.
// Idempotent across restarts.
func (s *AccountStore) BootstrapAdmin(username, password string) {
	var admins int64
	if err := s.DB.Model(&models.Account{}).Where("is_admin = ?", true).Count(&admins).Error; err != nil {
		log.Printf("admin count failed: %v", err)
		return
	}
	if admins > 0 {
		return
	}
	if s.CreateAccount(username, password, true) {
		log.Printf("bootstrapped admin account %q", foldUsername(username))
	}
}

// CreateAccount stores a new operator. Usernames are case-folded before the
// uniqueness check; the raw password never persists. Returns false on a
// duplicate username or storage failure.
func (s *AccountStore) CreateAccount(username, password string, isAdmin bool) bool {
	username = foldUsername(username)
	if username == "" {
		return false
	}

	var existing int64
	if err := s.DB.Model(&models.Account{}).Where("username = ?", username).Count(&existing).Error; err != nil || existing > 0 {
		return false
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return false
	}

	acct := models.Account{Username: username, PasswordHash: hash, IsAdmin: isAdmin}
	return s.DB.Create(&acct).Error == nil
}

// Authenticate verifies a username/password pair. An unknown username and a
// wrong password are indistinguishable to the caller. Success stamps
// LastLogin.
func (s *AccountStore) Authenticate(username, password string) *models.Account {
	var acct models.Account
	if err := s.DB.Where("username = ?", foldUsername(username)).First(&acct).Error; err != nil {
		return nil
	}
	if !utils.CheckPassword(acct.PasswordHash, password) {
		return nil
	}

	now := time.Now()
	acct.LastLogin = &now
	_ = s.DB.Save(&acct).Error
	return &acct
}

func (s *AccountStore) ListAccounts() []models.Account {
	var accts []models.Account
	if err := s.DB.Order("username").Find(&accts).Error; err != nil {
		log.Printf("account list failed: %v", err)
		return nil
	}
	return accts
}

// DeleteAccount removes an operator. Refused when the target is the last
// remaining admin.
func (s *AccountStore) DeleteAccount(username string) bool {
	username = foldUsername(username)

	var acct models.Account
	if err := s.DB.Where("username = ?", username).First(&acct).Error; err != nil {
		return false
	}

	if acct.IsAdmin {
		var admins int64
		if err := s.DB.Model(&models.Account{}).Where("is_admin = ?", true).Count(&admins).Error; err != nil {
			return false
		}
		if admins <= 1 {
			return false
		}
	}

	res := s.DB.Where("username = ?", username).Delete(&models.Account{})
	return res.Error == nil && res.RowsAffected > 0
}

// CreateSession issues an unguessable token with a 30-day absolute expiry.
func (s *AccountStore) CreateSession(username string) (string, error) {
	token, err := utils.NewSessionToken()
	if err != nil {
		return "", err
	}

	sess := models.Session{
		Token:     token,
		Username:  foldUsername(username),
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	if err := s.DB.Create(&sess).Error; err != nil {
		return "", err
	}
	return token, nil
}

// ResolveSession returns the live account for an unexpired session token.
// A deleted account invalidates its sessions implicitly.
func (s *AccountStore) ResolveSession(token string) *models.Account {
	if token == "" {
		return nil
	}

	var sess models.Session
	err := s.DB.Where("token = ? AND expires_at > ?", token, time.Now()).First(&sess).Error
	if err != nil {
		return nil
	}

	var acct models.Account
	if err := s.DB.Where("username = ?", sess.Username).First(&acct).Error; err != nil {
		return nil
	}
	return &acct
}

func (s *AccountStore) RevokeSession(token string) bool {
	res := s.DB.Where("token = ?", token).Delete(&models.Session{})
	return res.Error == nil && res.RowsAffected > 0
}

// PurgeExpiredSessions is a one-shot startup cleanup, not a scheduled job.
func (s *AccountStore) PurgeExpiredSessions() int64 {
	res := s.DB.Where("expires_at <= ?", time.Now()).Delete(&models.Session{})
	if res.Error != nil {
		log.Printf("session purge failed: %v", res.Error)
		return 0
	}
	return res.RowsAffected
}
