package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Al-Noorstore/crush-shop-cart-flow/controllers/cart"
	countryControllers "github.com/Al-Noorstore/crush-shop-cart-flow/controllers/country"
	productControllers "github.com/Al-Noorstore/crush-shop-cart-flow/controllers/product"
	"github.com/Al-Noorstore/crush-shop-cart-flow/countries"
)

// SetupPublicRoutes registers the unauthenticated storefront endpoints:
// browsing, country detection and guest carts.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, catalog *countries.Catalog) {
	// ──────────────── Countries ────────────────
	countryGroup := r.Group("/countries")
	{
		countryGroup.GET("/", countryControllers.GetActiveCountries(catalog))   // GET /countries
		countryGroup.POST("/detect", countryControllers.DetectCountry(catalog)) // POST /countries/detect
	}

	// ──────────────── Browse Products ────────────────
	r.GET("/products", productControllers.GetProducts(db, catalog))
	r.GET("/products/:id", productControllers.GetProductByID(db, catalog))
	r.GET("/categories", productControllers.GetCategoriesWithProducts(db, catalog))

	// ──────────────── Guest Cart (identified by ?guest_id=) ────────────────
	guestCart := r.Group("/guest/cart")
	{
		guestCart.GET("/", cartControllers.GetGuestCart(db, catalog))
		guestCart.GET("/totals", cartControllers.GetGuestCartTotals(db, catalog))
		guestCart.POST("/", cartControllers.UpdateGuestCartItem(db))
		guestCart.DELETE("/:product_id", cartControllers.DeleteGuestCartItem(db))
		guestCart.DELETE("/", cartControllers.ClearGuestCart(db))
	}
}
