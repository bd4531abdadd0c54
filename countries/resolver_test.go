package countries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCountryCode(t *testing.T) {
	tests := []struct {
		phone string
		code  string
		ok    bool
	}{
		{"+923001234567", "PK", true},
		{"+92-300-1234567", "PK", true}, // separators ignored
		{"+1 (555) 010-0200", "US", true},
		{"+447911123456", "GB", true},
		{"+79161234567", "RU", true},
		{"+4915112345678", "DE", true},
		{"+33612345678", "FR", true},
		{"+61412345678", "AU", true},
		{"03001234567", "", false}, // no international prefix
		{"hello", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		code, ok := DetectCountryCode(tt.phone)
		assert.Equal(t, tt.ok, ok, "phone %q", tt.phone)
		assert.Equal(t, tt.code, code, "phone %q", tt.phone)
	}
}

func TestResolverDefaultsToHomeMarket(t *testing.T) {
	r := NewResolver(newTestCatalog(t))

	assert.Equal(t, DefaultCountryCode, r.Selected())
	_, ok := r.Detected()
	assert.False(t, ok)
}

func TestResolverSelect(t *testing.T) {
	r := NewResolver(newTestCatalog(t))

	r.Select("US")
	assert.Equal(t, "US", r.Selected())

	// Selecting does not fabricate a detection.
	_, ok := r.Detected()
	assert.False(t, ok)
}

func TestDetectFromPhoneUpdatesSelection(t *testing.T) {
	r := NewResolver(newTestCatalog(t))

	code, ok := r.DetectFromPhone("+49 151 12345678")
	require.True(t, ok)
	assert.Equal(t, "DE", code)
	assert.Equal(t, "DE", r.Selected())

	detected, ok := r.Detected()
	require.True(t, ok)
	assert.Equal(t, "DE", detected)
}

func TestDetectFromPhoneMissMutatesNothing(t *testing.T) {
	r := NewResolver(newTestCatalog(t))
	r.Select("GB")

	code, ok := r.DetectFromPhone("not a phone")
	assert.False(t, ok)
	assert.Empty(t, code)
	assert.Equal(t, "GB", r.Selected())
	_, detected := r.Detected()
	assert.False(t, detected)
}

func TestResolvedCountryLoadsCatalogEntry(t *testing.T) {
	r := NewResolver(newTestCatalog(t))

	country, err := r.ResolvedCountry()
	require.NoError(t, err)
	require.NotNil(t, country)
	assert.Equal(t, "PK", country.Code)

	// Selection outside the catalog resolves to nil, not an error.
	r.Select("XX")
	country, err = r.ResolvedCountry()
	require.NoError(t, err)
	assert.Nil(t, country)
}
