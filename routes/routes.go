package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Al-Noorstore/crush-shop-cart-flow/countries"
)

// SetupRoutes is the single entry‐point that wires up Auth, Public, User,
// Admin and Order route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, catalog *countries.Catalog) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Public storefront routes (countries, guest carts)
	SetupPublicRoutes(r, db, catalog)

	// 3️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, db, catalog)

	// 4️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, db, catalog)

	// order routes
	SetupOrderRoutes(r, db, catalog)
}
