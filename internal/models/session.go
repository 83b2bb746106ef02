package models

import (
	"time"
)

type Session struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SessionToken string    `gorm:"unique;not null;size:36;index" json:"session_token"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Expires      time.Time `gorm:"not null" json:"expires"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Expired reports whether the session is past its expiry instant.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.Expires)
}
