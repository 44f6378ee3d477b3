package models

import (
	"gorm.io/gorm"
)

func Init(dbc *gorm.DB) error {
	return dbc.AutoMigrate(
		&PlayerScore{},
		&Sprite{},
		&AudioClip{},
	)
}
