package pricing

import "fmt"

// BaseCurrency is the currency product base prices are authored in.
const BaseCurrency = "USD"

// BaseCurrencySymbol is used whenever no country is resolved.
const BaseCurrencySymbol = "$"

// currencyRates maps a currency code to its multiplier relative to USD.
// Rates are fixed configuration, not a live feed.
var currencyRates = map[string]float64{
	"USD": 1,
	"PKR": 280,  // 1 USD = 280 PKR
	"GBP": 0.79, // 1 USD = 0.79 GBP
	"EUR": 0.85, // 1 USD = 0.85 EUR
	"RUB": 75,   // 1 USD = 75 RUB
	"CAD": 1.25, // 1 USD = 1.25 CAD
	"AUD": 1.35, // 1 USD = 1.35 AUD
}

// Convert turns a USD amount into the target currency. Unknown currency
// codes convert with multiplier 1, so a bad code never breaks a price
// display or a checkout.
func Convert(amountUSD float64, currency string) float64 {
	rate, ok := currencyRates[currency]
	if !ok {
		rate = 1
	}
	return amountUSD * rate
}

// FormatPrice renders an amount with its currency symbol, e.g. "₨1399.00".
func FormatPrice(amount float64, symbol string) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
