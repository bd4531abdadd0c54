package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Al-Noorstore/crush-shop-cart-flow/auth"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterUser(db))
		authGroup.POST("/login", auth.LoginUser(db))
		authGroup.POST("/guest", auth.CreateGuestUser(db))
		authGroup.POST("/admin/register", auth.RegisterAdmin(db))
		authGroup.POST("/admin/login", auth.LoginAdmin(db))
	}
}
