package models

import "time"

// Admin accounts start unapproved; the approval endpoints flip the flag
// before a login can succeed.
type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
}
