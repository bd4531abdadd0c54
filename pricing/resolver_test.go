package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
)

var pakistan = models.Country{
	Code:            "PK",
	Name:            "Pakistan",
	Currency:        "PKR",
	CurrencySymbol:  "₨",
	IsActive:        true,
	DeliveryDays:    3,
	DeliveryCharges: 200,
}

func TestResolveWithoutCountryUsesBasePrice(t *testing.T) {
	p := models.Product{Price: 49.99, OriginalPrice: 79.99}

	got := Resolve(p, nil)

	assert.InDelta(t, 49.99, got.UnitPrice, 1e-9)
	require.NotNil(t, got.UnitOriginalPrice)
	assert.InDelta(t, 79.99, *got.UnitOriginalPrice, 1e-9)
	assert.Zero(t, got.ShippingCharge)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "$", got.CurrencySymbol)
}

func TestResolveActiveOverrideWinsVerbatim(t *testing.T) {
	p := models.Product{
		Price: 10,
		CountryPricing: []models.CountryPricing{
			{CountryCode: "PK", IsActive: true, Price: 2499, OriginalPrice: 2999, ShippingCharges: 150},
		},
	}

	got := Resolve(p, &pakistan)

	assert.InDelta(t, 2499.0, got.UnitPrice, 1e-9)
	require.NotNil(t, got.UnitOriginalPrice)
	assert.InDelta(t, 2999.0, *got.UnitOriginalPrice, 1e-9)
	assert.InDelta(t, 150.0, got.ShippingCharge, 1e-9)
	assert.Equal(t, "PKR", got.Currency)
	assert.Equal(t, "₨", got.CurrencySymbol)
}

func TestResolveFreeShippingForcesZeroCharge(t *testing.T) {
	p := models.Product{
		Price: 10,
		CountryPricing: []models.CountryPricing{
			// Stored charge must be ignored when the free-shipping flag is set.
			{CountryCode: "PK", IsActive: true, Price: 2499, ShippingCharges: 150, IsFreeShipping: true},
		},
	}

	got := Resolve(p, &pakistan)

	assert.Zero(t, got.ShippingCharge)
}

func TestResolveInactiveOverrideFallsBackToConversion(t *testing.T) {
	p := models.Product{
		Price:         10,
		OriginalPrice: 20,
		CountryPricing: []models.CountryPricing{
			{CountryCode: "PK", IsActive: false, Price: 2499, ShippingCharges: 150},
		},
	}

	got := Resolve(p, &pakistan)

	assert.InDelta(t, 2800.0, got.UnitPrice, 1e-9)
	require.NotNil(t, got.UnitOriginalPrice)
	assert.InDelta(t, 5600.0, *got.UnitOriginalPrice, 1e-9)
	assert.InDelta(t, 200.0, got.ShippingCharge, 1e-9)
	assert.Equal(t, "PKR", got.Currency)
}

func TestResolveConversionPathWithoutOriginalPrice(t *testing.T) {
	p := models.Product{Price: 10}

	got := Resolve(p, &pakistan)

	assert.InDelta(t, 2800.0, got.UnitPrice, 1e-9)
	assert.Nil(t, got.UnitOriginalPrice)
	assert.InDelta(t, 200.0, got.ShippingCharge, 1e-9)
}

func TestIsAvailable(t *testing.T) {
	noEntries := models.Product{Price: 10}
	withActive := models.Product{
		Price: 10,
		CountryPricing: []models.CountryPricing{
			{CountryCode: "PK", IsActive: true, Price: 2499},
		},
	}
	withInactive := models.Product{
		Price: 10,
		CountryPricing: []models.CountryPricing{
			{CountryCode: "PK", IsActive: false, Price: 2499},
		},
	}

	// No entries: sold everywhere.
	assert.True(t, IsAvailable(noEntries, &pakistan))
	// Nil country: always listable.
	assert.True(t, IsAvailable(withInactive, nil))
	assert.True(t, IsAvailable(withActive, &pakistan))
	assert.False(t, IsAvailable(withInactive, &pakistan))

	// Entries for other countries only.
	us := models.Country{Code: "US", Currency: "USD", CurrencySymbol: "$", IsActive: true}
	assert.False(t, IsAvailable(withActive, &us))
}

func TestAvailabilityIndependentOfPricingFallback(t *testing.T) {
	// A product deactivated for a country is filtered from its catalog, yet
	// Resolve still prices it via conversion so an existing cart line keeps
	// a total.
	p := models.Product{
		Price: 10,
		CountryPricing: []models.CountryPricing{
			{CountryCode: "PK", IsActive: false, Price: 2499},
		},
	}

	assert.False(t, IsAvailable(p, &pakistan))
	got := Resolve(p, &pakistan)
	assert.InDelta(t, 2800.0, got.UnitPrice, 1e-9)
}

func TestDiscountPercent(t *testing.T) {
	orig := func(v float64) *float64 { return &v }

	assert.Equal(t, 0, DiscountPercent(50, nil))
	assert.Equal(t, 0, DiscountPercent(50, orig(0)))
	assert.Equal(t, 50, DiscountPercent(50, orig(100)))
	assert.Equal(t, 33, DiscountPercent(100, orig(150)))
	// Original below unit price clamps to 0, never negative.
	assert.Equal(t, 0, DiscountPercent(150, orig(100)))
	// Negative unit price clamps to 100.
	assert.Equal(t, 100, DiscountPercent(-50, orig(10)))
}
