package models

import "time"

type Feedback struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:120;not null" json:"name"`
	Email   string `gorm:"size:120;not null" json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}
