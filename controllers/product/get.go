package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	countryControllers "github.com/Al-Noorstore/crush-shop-cart-flow/controllers/country"
	"github.com/Al-Noorstore/crush-shop-cart-flow/countries"
	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
)

// GET /user/products/:id
func GetProductByID(db *gorm.DB, catalog *countries.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Categories").Preload("CountryPricing").
			First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		// The product modal shows a product even when it is not listed for
		// the shopper's country (e.g. opened from a shared link), so no
		// availability filter here — just resolved pricing.
		shopperCountry := countryControllers.ResolveShopperCountry(c, db, catalog)
		c.JSON(http.StatusOK, toView(product, shopperCountry))
	}
}
