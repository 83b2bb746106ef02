package models

import (
	"time"
)

type URL struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OriginalURL string    `gorm:"not null;type:text" json:"original_url"`
	ShortURL    string    `gorm:"unique;not null;size:20;index" json:"short_url"`
	Clicks      int       `gorm:"not null;default:0" json:"clicks"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides GORM's pluralization so the table matches the migrations.
func (URL) TableName() string {
	return "urls"
}
