package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120" json:"name"`
	Email     string    `gorm:"unique;not null;size:120" json:"email"`
	Password  string    `gorm:"not null;size:255" json:"-"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	URLs      []URL     `gorm:"foreignKey:UserID" json:"urls,omitempty"`
}
