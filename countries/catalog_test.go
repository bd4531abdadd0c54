package countries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Country{}))

	catalog := NewCatalog(db)
	require.NoError(t, catalog.Seed())
	return catalog
}

func TestSeedIsIdempotent(t *testing.T) {
	catalog := newTestCatalog(t)

	require.NoError(t, catalog.Seed())

	all, err := catalog.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, len(defaultCountries))
}

func TestListActiveExcludesInactiveDestinations(t *testing.T) {
	catalog := newTestCatalog(t)

	active, err := catalog.ListActive()
	require.NoError(t, err)

	codes := make([]string, 0, len(active))
	for _, c := range active {
		assert.True(t, c.IsActive)
		codes = append(codes, c.Code)
	}
	assert.Contains(t, codes, "PK")
	assert.NotContains(t, codes, "RU") // seeded inactive
}

func TestListAllPreservesSeedOrder(t *testing.T) {
	catalog := newTestCatalog(t)

	all, err := catalog.ListAll()
	require.NoError(t, err)
	require.Len(t, all, len(defaultCountries))
	for i, c := range all {
		assert.Equal(t, defaultCountries[i].Code, c.Code)
	}
}

func TestGetByCode(t *testing.T) {
	catalog := newTestCatalog(t)

	pk, err := catalog.GetByCode("PK")
	require.NoError(t, err)
	require.NotNil(t, pk)
	assert.Equal(t, "Pakistan", pk.Name)
	assert.Equal(t, "PKR", pk.Currency)
	assert.Equal(t, "₨", pk.CurrencySymbol)

	// Unknown codes are not an error.
	unknown, err := catalog.GetByCode("XX")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func TestSetActiveTogglesDestination(t *testing.T) {
	catalog := newTestCatalog(t)

	require.NoError(t, catalog.SetActive("US", false))
	us, err := catalog.GetByCode("US")
	require.NoError(t, err)
	require.NotNil(t, us)
	assert.False(t, us.IsActive)

	require.NoError(t, catalog.SetActive("US", true))
	us, err = catalog.GetByCode("US")
	require.NoError(t, err)
	assert.True(t, us.IsActive)

	// Unknown code is a silent no-op.
	require.NoError(t, catalog.SetActive("XX", true))
}

func TestUpdateDeliveryPartialUpdates(t *testing.T) {
	catalog := newTestCatalog(t)

	days := 9
	require.NoError(t, catalog.UpdateDelivery("GB", &days, nil))
	gb, err := catalog.GetByCode("GB")
	require.NoError(t, err)
	require.NotNil(t, gb)
	assert.Equal(t, 9, gb.DeliveryDays)
	assert.InDelta(t, 12.0, gb.DeliveryCharges, 1e-9) // untouched

	charges := 20.0
	require.NoError(t, catalog.UpdateDelivery("GB", nil, &charges))
	gb, err = catalog.GetByCode("GB")
	require.NoError(t, err)
	assert.Equal(t, 9, gb.DeliveryDays)
	assert.InDelta(t, 20.0, gb.DeliveryCharges, 1e-9)

	// Nothing to update is fine.
	require.NoError(t, catalog.UpdateDelivery("GB", nil, nil))
}
