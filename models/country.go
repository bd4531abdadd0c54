package models

import "time"

// Country is one shipping destination in the admin-managed catalog.
type Country struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	Code            string  `gorm:"uniqueIndex;size:2;not null" json:"code"` // ISO-2
	Name            string  `gorm:"not null" json:"name"`
	Currency        string  `gorm:"size:3;not null" json:"currency"`
	CurrencySymbol  string  `json:"currency_symbol"`
	Flag            string  `json:"flag"`
	IsActive        bool    `json:"is_active"`
	DeliveryDays    int     `json:"delivery_days"`
	DeliveryCharges float64 `json:"delivery_charges"` // In the country's own currency

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
