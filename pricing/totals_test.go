package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
)

func TestComputeTotalsEmptyCart(t *testing.T) {
	got := ComputeTotals(nil, &pakistan)

	assert.Zero(t, got.Subtotal)
	assert.Zero(t, got.ShippingTotal)
	assert.Zero(t, got.GrandTotal)
	assert.Equal(t, "PKR", got.Currency)
	assert.Empty(t, got.PerLine)
}

func TestComputeTotalsChargesShippingPerUnit(t *testing.T) {
	overridden := models.Product{
		Price: 10,
		CountryPricing: []models.CountryPricing{
			{CountryCode: "PK", IsActive: true, Price: 1000, ShippingCharges: 100},
		},
	}
	freeShipping := models.Product{
		Price: 10,
		CountryPricing: []models.CountryPricing{
			{CountryCode: "PK", IsActive: true, Price: 500, ShippingCharges: 100, IsFreeShipping: true},
		},
	}

	got := ComputeTotals([]Line{
		{Product: overridden, Quantity: 2},
		{Product: freeShipping, Quantity: 3},
	}, &pakistan)

	// 2×1000 + 3×500 subtotal, 2×100 shipping (free-shipping line adds none).
	assert.InDelta(t, 3500.0, got.Subtotal, 1e-9)
	assert.InDelta(t, 200.0, got.ShippingTotal, 1e-9)
	assert.InDelta(t, 3700.0, got.GrandTotal, 1e-9)
	require.Len(t, got.PerLine, 2)
	assert.InDelta(t, 1000.0, got.PerLine[0].UnitPrice, 1e-9)
	assert.Zero(t, got.PerLine[1].ShippingCharge)
}

func TestComputeTotalsMixedOverrideAndConversion(t *testing.T) {
	overridden := models.Product{
		Price: 10,
		CountryPricing: []models.CountryPricing{
			{CountryCode: "PK", IsActive: true, Price: 1000, ShippingCharges: 50},
		},
	}
	converted := models.Product{Price: 10} // falls back to 10 × 280 + flat delivery

	got := ComputeTotals([]Line{
		{Product: overridden, Quantity: 1},
		{Product: converted, Quantity: 1},
	}, &pakistan)

	assert.InDelta(t, 3800.0, got.Subtotal, 1e-9)
	assert.InDelta(t, 250.0, got.ShippingTotal, 1e-9)
	assert.InDelta(t, 4050.0, got.GrandTotal, 1e-9)
}

func TestComputeTotalsWithoutCountryUsesBaseCurrency(t *testing.T) {
	got := ComputeTotals([]Line{
		{Product: models.Product{Price: 19.99}, Quantity: 2},
	}, nil)

	assert.InDelta(t, 39.98, got.Subtotal, 1e-9)
	assert.Zero(t, got.ShippingTotal)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "$", got.CurrencySymbol)
}
