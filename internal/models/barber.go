package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"size:20;not null" json:"phone"`
	Bio          string `gorm:"type:text" json:"bio"`
	ProfileImage string `gorm:"size:200" json:"profile_image"`

	IsActive bool `gorm:"default:true;not null" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
