package models

import (
	"time"
)

// Profile holds the optional personal attributes of a user. Every user owns
// exactly one profile; it is created in the same transaction as the user and
// the database removes it when the user row goes away.
type Profile struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	User         User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Hobby        string    `gorm:"size:255" json:"hobby"`
	ProfileImage string    `gorm:"size:255" json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
