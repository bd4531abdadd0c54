package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	Description   string  `json:"description"`
	Price         float64 `gorm:"not null" json:"price"` // Base price in USD
	OriginalPrice float64 `json:"original_price"`        // Pre-discount price, 0 when no discount
	Image         string  `json:"image"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	IsOnSale      bool    `json:"is_on_sale"`
	IsBestSeller  bool    `json:"is_best_seller"`
	Stock         int     `json:"stock"`

	Categories     []Category       `gorm:"many2many:product_categories;" json:"categories"`
	CountryPricing []CountryPricing `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"country_pricing"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// CountryPricing is a per-country override of a product's price and shipping.
// At most one row per (product, country).
type CountryPricing struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID       uint    `gorm:"uniqueIndex:idx_product_country" json:"product_id"`
	CountryCode     string  `gorm:"uniqueIndex:idx_product_country;size:2" json:"country_code"`
	IsActive        bool    `json:"is_active"`
	OriginalPrice   float64 `json:"original_price"`
	Price           float64 `json:"price"`
	ShippingCharges float64 `json:"shipping_charges"`
	IsFreeShipping  bool    `json:"is_free_shipping"`
}
