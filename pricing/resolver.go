// Package pricing resolves what a product costs for a given shopper: which
// per-country override applies, what the fallback conversion is, whether the
// product is visible at all, and how cart totals add up. Every price shown
// anywhere in the store must come through here.
package pricing

import (
	"math"

	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
)

// ResolvedPricing is the effective pricing of one product for one country.
// It is derived on demand and never persisted.
type ResolvedPricing struct {
	UnitPrice         float64  `json:"unit_price"`
	UnitOriginalPrice *float64 `json:"unit_original_price"` // nil when no discount is implied
	ShippingCharge    float64  `json:"shipping_charge"`     // Per unit
	Currency          string   `json:"currency"`
	CurrencySymbol    string   `json:"currency_symbol"`
}

// Resolve computes the effective unit price, strikethrough price and shipping
// charge of a product in a country.
//
// With no country resolved the base USD price applies and shipping is 0.
// With an active per-country override, the override wins verbatim (free
// shipping forces the charge to 0 even if a charge is stored). Otherwise the
// base price is converted into the country's currency and the country's flat
// delivery charge applies — the legacy path for products that were never
// given overrides.
func Resolve(p models.Product, country *models.Country) ResolvedPricing {
	if country == nil {
		return ResolvedPricing{
			UnitPrice:         p.Price,
			UnitOriginalPrice: positiveOrNil(p.OriginalPrice),
			ShippingCharge:    0,
			Currency:          BaseCurrency,
			CurrencySymbol:    BaseCurrencySymbol,
		}
	}

	if entry, ok := findOverride(p, country.Code); ok && entry.IsActive {
		shipping := entry.ShippingCharges
		if entry.IsFreeShipping {
			shipping = 0
		}
		return ResolvedPricing{
			UnitPrice:         entry.Price,
			UnitOriginalPrice: positiveOrNil(entry.OriginalPrice),
			ShippingCharge:    shipping,
			Currency:          country.Currency,
			CurrencySymbol:    country.CurrencySymbol,
		}
	}

	// No active override: convert the base price into the local currency.
	resolved := ResolvedPricing{
		UnitPrice:      Convert(p.Price, country.Currency),
		ShippingCharge: country.DeliveryCharges,
		Currency:       country.Currency,
		CurrencySymbol: country.CurrencySymbol,
	}
	if p.OriginalPrice > 0 {
		converted := Convert(p.OriginalPrice, country.Currency)
		resolved.UnitOriginalPrice = &converted
	}
	return resolved
}

// IsAvailable reports whether a product may be listed for a country. A
// product with no per-country entries is sold everywhere; one with entries
// is sold only where an active entry exists.
//
// Note this is independent of Resolve's fallback: a product can still be
// priced for a country (via conversion) while being filtered out of that
// country's catalog. Items already in a cart keep that fallback price at
// checkout even after a deactivation.
func IsAvailable(p models.Product, country *models.Country) bool {
	if country == nil || len(p.CountryPricing) == 0 {
		return true
	}
	for _, entry := range p.CountryPricing {
		if entry.CountryCode == country.Code && entry.IsActive {
			return true
		}
	}
	return false
}

// DiscountPercent returns the rounded percentage discount implied by an
// original price, clamped to [0, 100]. A missing, zero or lower-than-unit
// original price means no discount.
func DiscountPercent(unitPrice float64, originalPrice *float64) int {
	if originalPrice == nil || *originalPrice <= 0 {
		return 0
	}
	pct := int(math.Round((*originalPrice - unitPrice) / *originalPrice * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func findOverride(p models.Product, code string) (models.CountryPricing, bool) {
	for _, entry := range p.CountryPricing {
		if entry.CountryCode == code {
			return entry, true
		}
	}
	return models.CountryPricing{}, false
}

func positiveOrNil(v float64) *float64 {
	if v > 0 {
		return &v
	}
	return nil
}
