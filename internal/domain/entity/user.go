package entity

import "time"

type User struct {
	ID           int64 `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	FirstName    string
	Username     string
	Localisation string
	IsBanned     bool
	Requests     []GenerationRequest `gorm:"foreignKey:UserID"`
}
