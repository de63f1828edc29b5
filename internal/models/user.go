package models

import (
	"time"
)

// Gender is the user-reported gender attribute.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Valid reports whether g is one of the accepted gender values.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// User is an account record. Email is stored case-normalized and both
// email and username are unique across the table.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"size:24;uniqueIndex;not null" json:"username"`
	FirstName    string    `gorm:"size:150" json:"first_name"`
	LastName     string    `gorm:"size:150" json:"last_name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Gender       Gender    `gorm:"size:25" json:"gender"`
	IsStaff      bool      `gorm:"not null;default:false" json:"is_staff"`
	IsSuperuser  bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
