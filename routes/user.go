package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Al-Noorstore/crush-shop-cart-flow/controllers/cart"
	countryControllers "github.com/Al-Noorstore/crush-shop-cart-flow/controllers/country"
	productControllers "github.com/Al-Noorstore/crush-shop-cart-flow/controllers/product"
	userControllers "github.com/Al-Noorstore/crush-shop-cart-flow/controllers/user"
	"github.com/Al-Noorstore/crush-shop-cart-flow/countries"
	"github.com/Al-Noorstore/crush-shop-cart-flow/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, catalog *countries.Catalog) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Country Selection ────────────────
		userGroup.PUT("/country", countryControllers.SelectCountry(db)) // PUT /user/country

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db, catalog))         // GET /user/cart
			cartGroup.GET("/totals", cartControllers.GetCartTotals(db, catalog)) // GET /user/cart/totals
			cartGroup.POST("/", cartControllers.UpdateCartItem(db))              // POST /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))             // DELETE /user/cart
		}

		// ──────────────── Browse Products (authenticated) ────────────────
		userGroup.GET("/products", productControllers.GetProducts(db, catalog))        // GET /user/products
		userGroup.GET("/products/:id", productControllers.GetProductByID(db, catalog)) // GET /user/products/:id

		// ──────────────── Browse Categories + Products ────────────────
		userGroup.GET("/categories", productControllers.GetCategoriesWithProducts(db, catalog)) // GET /user/categories
	}
}
