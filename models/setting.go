package models

import "time"

// Setting is one entry of the local key-value state: device id, username,
// last login timestamp, oldest synced ledger date and the
// pagination-exhausted flag all live here.
type Setting struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

// Keys of the local key-value state.
const (
	SettingDeviceID    = "deviceid"
	SettingUsername    = "username"
	SettingLastLogin   = "last_login"
	SettingOldestDate  = "oldest_date"
	SettingReachedLast = "reached_last"
)
