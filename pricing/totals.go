package pricing

import "github.com/Al-Noorstore/crush-shop-cart-flow/models"

// Line is one cart position handed to the aggregator.
type Line struct {
	Product  models.Product
	Quantity int
}

// Totals is the single source of truth for cart and checkout amounts.
type Totals struct {
	Subtotal       float64           `json:"subtotal"`
	ShippingTotal  float64           `json:"shipping_total"`
	GrandTotal     float64           `json:"grand_total"`
	Currency       string            `json:"currency"`
	CurrencySymbol string            `json:"currency_symbol"`
	PerLine        []ResolvedPricing `json:"per_line"`
}

// ComputeTotals folds resolved per-line pricing into order totals. Shipping
// is charged per unit, like the checkout form in the storefront does.
func ComputeTotals(lines []Line, country *models.Country) Totals {
	totals := Totals{
		Currency:       BaseCurrency,
		CurrencySymbol: BaseCurrencySymbol,
		PerLine:        make([]ResolvedPricing, 0, len(lines)),
	}
	if country != nil {
		totals.Currency = country.Currency
		totals.CurrencySymbol = country.CurrencySymbol
	}

	for _, line := range lines {
		resolved := Resolve(line.Product, country)
		totals.PerLine = append(totals.PerLine, resolved)
		qty := float64(line.Quantity)
		totals.Subtotal += resolved.UnitPrice * qty
		totals.ShippingTotal += resolved.ShippingCharge * qty
	}
	totals.GrandTotal = totals.Subtotal + totals.ShippingTotal
	return totals
}
