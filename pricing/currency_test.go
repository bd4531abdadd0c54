package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertKnownCurrencies(t *testing.T) {
	assert.InDelta(t, 10.0, Convert(10, "USD"), 1e-9)
	assert.InDelta(t, 2800.0, Convert(10, "PKR"), 1e-9)
	assert.InDelta(t, 7.9, Convert(10, "GBP"), 1e-9)
	assert.InDelta(t, 8.5, Convert(10, "EUR"), 1e-9)
	assert.InDelta(t, 750.0, Convert(10, "RUB"), 1e-9)
	assert.InDelta(t, 12.5, Convert(10, "CAD"), 1e-9)
	assert.InDelta(t, 13.5, Convert(10, "AUD"), 1e-9)
}

func TestConvertUnknownCurrencyFallsBackToBase(t *testing.T) {
	// A bad code must never break a price display.
	assert.InDelta(t, 42.0, Convert(42, "XXX"), 1e-9)
	assert.InDelta(t, 42.0, Convert(42, ""), 1e-9)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$19.99", FormatPrice(19.99, "$"))
	assert.Equal(t, "₨1399.00", FormatPrice(1399, "₨"))
	assert.Equal(t, "£0.50", FormatPrice(0.5, "£"))
}
