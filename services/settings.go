package services

import (
	"errors"

	"github.com/Satya2834/PubFitnessStudio-web/models"

	"gorm.io/gorm"
)

// GetSetting reads one key of the local key-value state. ok is false when the
// key has never been written.
func GetSetting(db *gorm.DB, key string) (value string, ok bool, err error) {
	var s models.Setting
	if err := db.First(&s, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return s.Value, true, nil
}

// PutSetting writes one key of the local key-value state.
func PutSetting(db *gorm.DB, key, value string) error {
	s := models.Setting{Key: key, Value: value}
	return db.Save(&s).Error
}
