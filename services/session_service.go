package services

import (
	"time"

	"github.com/Satya2834/PubFitnessStudio-web/models"

	"gorm.io/gorm"
)

// SessionWindowDays bounds how long a login stays valid before the user is
// sent back to the login screen.
const SessionWindowDays = 7

// SessionService gates access to the functional screens on a time-boxed
// login. The last-login timestamp is stored as a plain RFC3339 value in the
// settings table.
type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

// IsSessionValid reports whether now still falls inside the login window.
func IsSessionValid(lastLogin, now time.Time, windowDays int) bool {
	return now.Sub(lastLogin) < time.Duration(windowDays)*24*time.Hour
}

// RecordLogin persists the authenticated device id, username and the login
// time.
func (s *SessionService) RecordLogin(username, deviceID string, now time.Time) error {
	if err := PutSetting(s.db, models.SettingUsername, username); err != nil {
		return err
	}
	if err := PutSetting(s.db, models.SettingDeviceID, deviceID); err != nil {
		return err
	}
	return PutSetting(s.db, models.SettingLastLogin, now.Format(time.RFC3339))
}

// IsValid reports whether a login was recorded within the session window.
func (s *SessionService) IsValid(now time.Time) bool {
	v, ok, err := GetSetting(s.db, models.SettingLastLogin)
	if err != nil || !ok {
		return false
	}
	lastLogin, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return false
	}
	return IsSessionValid(lastLogin, now, SessionWindowDays)
}

// Username returns the logged-in username, if any.
func (s *SessionService) Username() (string, bool) {
	v, ok, _ := GetSetting(s.db, models.SettingUsername)
	return v, ok
}

// DeviceID returns the device id issued at login, if any.
func (s *SessionService) DeviceID() (string, bool) {
	v, ok, _ := GetSetting(s.db, models.SettingDeviceID)
	return v, ok
}
