package models

type PlayerScore struct {
	ID         uint64 `gorm:"primaryKey"`
	CreatedAt  int64
	UpdatedAt  int64
	PlayerName string `gorm:"type:varchar(300);not null"`
	Score      int64  `gorm:"not null"`
}
