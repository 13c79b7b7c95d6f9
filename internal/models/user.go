package models

import (
	"time"
)

type User struct {
	Username     string    `gorm:"primaryKey;size:20" json:"username"`
	PasswordHash string    `gorm:"not null;size:100" json:"-"`
	Email        string    `gorm:"unique;not null;size:50" json:"email"`
	FirstName    string    `gorm:"not null;size:30" json:"first_name"`
	LastName     string    `gorm:"not null;size:30" json:"last_name"`
	APIKey       string    `gorm:"unique;index;size:36" json:"api_key"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	Notes        []Note    `gorm:"foreignKey:Owner;references:Username;constraint:OnDelete:CASCADE" json:"notes,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// FullName returns the display name in "First Last" format.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
