// Package countries owns the shipping-destination catalog and works out
// which country a shopper is in, either from an explicit choice or from the
// dialing prefix of a phone number.
package countries

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
)

// DefaultCountryCode is the seller's home market, used until a shopper picks
// or is detected in another country.
const DefaultCountryCode = "PK"

// defaultCountries seeds the catalog on first boot.
var defaultCountries = []models.Country{
	{Code: "PK", Name: "Pakistan", Currency: "PKR", CurrencySymbol: "₨", Flag: "🇵🇰", IsActive: true, DeliveryDays: 3, DeliveryCharges: 200},
	{Code: "US", Name: "United States", Currency: "USD", CurrencySymbol: "$", Flag: "🇺🇸", IsActive: true, DeliveryDays: 7, DeliveryCharges: 15},
	{Code: "GB", Name: "United Kingdom", Currency: "GBP", CurrencySymbol: "£", Flag: "🇬🇧", IsActive: true, DeliveryDays: 5, DeliveryCharges: 12},
	{Code: "RU", Name: "Russia", Currency: "RUB", CurrencySymbol: "₽", Flag: "🇷🇺", IsActive: false, DeliveryDays: 10, DeliveryCharges: 25},
	{Code: "DE", Name: "Germany", Currency: "EUR", CurrencySymbol: "€", Flag: "🇩🇪", IsActive: true, DeliveryDays: 4, DeliveryCharges: 8},
	{Code: "FR", Name: "France", Currency: "EUR", CurrencySymbol: "€", Flag: "🇫🇷", IsActive: true, DeliveryDays: 4, DeliveryCharges: 8},
	{Code: "CA", Name: "Canada", Currency: "CAD", CurrencySymbol: "C$", Flag: "🇨🇦", IsActive: true, DeliveryDays: 6, DeliveryCharges: 18},
	{Code: "AU", Name: "Australia", Currency: "AUD", CurrencySymbol: "A$", Flag: "🇦🇺", IsActive: true, DeliveryDays: 8, DeliveryCharges: 22},
}

// Catalog is the persisted set of shipping destinations. All reads and
// writes go through here rather than through ambient globals.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// Seed inserts the default destinations when the table is empty. Safe to
// call on every boot.
func (c *Catalog) Seed() error {
	var count int64
	if err := c.db.Model(&models.Country{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return c.db.Create(&defaultCountries).Error
}

// ListAll returns every destination, active or not, in seed order.
func (c *Catalog) ListAll() ([]models.Country, error) {
	var list []models.Country
	if err := c.db.Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListActive returns only destinations shoppers may currently pick.
func (c *Catalog) ListActive() ([]models.Country, error) {
	var list []models.Country
	if err := c.db.Where("is_active = ?", true).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetByCode returns the destination for an ISO-2 code, or nil when the code
// is unknown. Unknown codes are not an error anywhere in the storefront.
func (c *Catalog) GetByCode(code string) (*models.Country, error) {
	var country models.Country
	err := c.db.Where("code = ?", code).First(&country).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// SetActive toggles a destination. A no-op when the code is unknown.
func (c *Catalog) SetActive(code string, active bool) error {
	return c.db.Model(&models.Country{}).Where("code = ?", code).
		Update("is_active", active).Error
}

// UpdateDelivery partially updates a destination's delivery settings. Nil
// fields are left untouched; unknown codes are a no-op.
func (c *Catalog) UpdateDelivery(code string, days *int, charges *float64) error {
	updates := make(map[string]interface{})
	if days != nil {
		updates["delivery_days"] = *days
	}
	if charges != nil {
		updates["delivery_charges"] = *charges
	}
	if len(updates) == 0 {
		return nil
	}
	return c.db.Model(&models.Country{}).Where("code = ?", code).
		Updates(updates).Error
}
