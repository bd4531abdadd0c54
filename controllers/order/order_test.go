package orderControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Al-Noorstore/crush-shop-cart-flow/countries"
	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
)

func newCheckoutTestDB(t *testing.T) (*gorm.DB, *countries.Catalog) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Country{},
		&models.User{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	catalog := countries.NewCatalog(db)
	require.NoError(t, catalog.Seed())
	return db, catalog
}

func TestResolveCheckoutCountry(t *testing.T) {
	db, catalog := newCheckoutTestDB(t)

	// Explicit country_code wins.
	country, err := resolveCheckoutCountry(db, catalog, PlaceOrderRequest{UserID: "u1", CountryCode: "US"})
	require.NoError(t, err)
	require.NotNil(t, country)
	assert.Equal(t, "US", country.Code)

	// Falls back to the user's stored selection.
	user := models.User{ID: "u1", Email: "u1@example.com", PasswordHash: "x", SelectedCountry: "GB"}
	require.NoError(t, db.Create(&user).Error)
	country, err = resolveCheckoutCountry(db, catalog, PlaceOrderRequest{UserID: "u1"})
	require.NoError(t, err)
	require.NotNil(t, country)
	assert.Equal(t, "GB", country.Code)

	// Nothing stored: the default market applies.
	country, err = resolveCheckoutCountry(db, catalog, PlaceOrderRequest{UserID: "nobody"})
	require.NoError(t, err)
	require.NotNil(t, country)
	assert.Equal(t, countries.DefaultCountryCode, country.Code)
}

func TestResolveCheckoutCountryRejectsUnknownDestination(t *testing.T) {
	db, catalog := newCheckoutTestDB(t)

	_, err := resolveCheckoutCountry(db, catalog, PlaceOrderRequest{UserID: "u1", CountryCode: "XX"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "we do not ship to XX")
}

func TestResolveCheckoutCountryRejectsDeactivatedDestination(t *testing.T) {
	db, catalog := newCheckoutTestDB(t)

	// RU is seeded inactive
	_, err := resolveCheckoutCountry(db, catalog, PlaceOrderRequest{UserID: "u1", CountryCode: "RU"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "currently unavailable")
}
