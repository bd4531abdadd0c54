package countries

import (
	"strings"
	"sync"

	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
)

// phonePrefix pairs an international dialing code with a country. Matching
// walks the slice in order and takes the first hit, so entries must not be
// prefixes of one another.
type phonePrefix struct {
	prefix string
	code   string
}

var phonePrefixes = []phonePrefix{
	{"+92", "PK"}, // Pakistan
	{"+1", "US"},  // United States/Canada
	{"+44", "GB"}, // United Kingdom
	{"+7", "RU"},  // Russia
	{"+49", "DE"}, // Germany
	{"+33", "FR"}, // France
	{"+61", "AU"}, // Australia
}

// DetectCountryCode maps a free-text phone number to a country code by its
// dialing prefix. Spaces, dashes and parentheses are ignored. The second
// return is false when nothing matches.
func DetectCountryCode(phone string) (string, bool) {
	if phone == "" {
		return "", false
	}
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	for _, entry := range phonePrefixes {
		if strings.HasPrefix(cleaned, entry.prefix) {
			return entry.code, true
		}
	}
	return "", false
}

// Resolver tracks one shopper's country: the current selection and, when
// phone detection has fired, the detected country. Selection is not
// validated against the active flag — admins may preview inactive markets —
// but pricing and availability checks honor the flag on their own.
type Resolver struct {
	catalog *Catalog

	mu       sync.RWMutex
	selected string
	detected string
}

func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{catalog: catalog, selected: DefaultCountryCode}
}

// Selected returns the current country code. Defaults to the seller's home
// market until changed.
func (r *Resolver) Selected() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.selected
}

// Select sets the active country code.
func (r *Resolver) Select(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected = code
}

// Detected returns the last phone-detected country code, if any.
func (r *Resolver) Detected() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.detected, r.detected != ""
}

// DetectFromPhone runs prefix detection and, on a match, records it as both
// the detected and the selected country. A miss mutates nothing.
func (r *Resolver) DetectFromPhone(phone string) (string, bool) {
	code, ok := DetectCountryCode(phone)
	if !ok {
		return "", false
	}
	r.mu.Lock()
	r.detected = code
	r.selected = code
	r.mu.Unlock()
	return code, true
}

// ResolvedCountry loads the catalog entry for the current selection, or nil
// when the selection is not in the catalog.
func (r *Resolver) ResolvedCountry() (*models.Country, error) {
	return r.catalog.GetByCode(r.Selected())
}
