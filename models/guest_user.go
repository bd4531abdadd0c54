package models

import "time"

type GuestUser struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	SelectedCountry string    `gorm:"size:2" json:"selected_country"`
	ExpiresAt       time.Time `json:"expires_at"`
}
