package auth

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Al-Noorstore/crush-shop-cart-flow/countries"
	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	GuestID  string `json:"guest_id"` // Optional: migrate an existing guest cart
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func RegisterUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))

		var existing models.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			ID:              uuid.NewString(),
			Email:           email,
			PasswordHash:    string(hash),
			Name:            input.Name,
			Phone:           input.Phone,
			SelectedCountry: countries.DefaultCountryCode,
			CreatedAt:       time.Now(),
		}

		// The signup phone doubles as the shopper's country hint
		if code, ok := countries.DetectCountryCode(input.Phone); ok {
			user.DetectedCountry = code
			user.SelectedCountry = code
		}

		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		// Fresh cart for the new user
		cart := models.Cart{UserID: user.ID}
		if err := db.Create(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
			return
		}

		// Migrate guest cart items if a guest session was provided
		if input.GuestID != "" {
			migrateGuestCart(db, input.GuestID, cart.CartID)
		}

		token, err := issueUserToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"token": token,
			"user":  user,
		})
	}
}

// POST /auth/login
func LoginUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := issueUserToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user":  user,
		})
	}
}

// migrateGuestCart moves guest cart rows into the user's cart. Best effort:
// a failed migration never blocks a signup.
func migrateGuestCart(db *gorm.DB, guestID string, cartID uint) {
	var guestCart models.GuestCart
	if err := db.Preload("Items").Where("guest_id = ?", guestID).First(&guestCart).Error; err != nil {
		return
	}
	for _, item := range guestCart.Items {
		newItem := models.CartItem{
			CartID:       cartID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Quantity:     item.Quantity,
			AddedAt:      item.AddedAt,
		}
		db.Create(&newItem)
	}
	db.Where("cart_id = ?", guestCart.CartID).Delete(&models.GuestCartItem{})
	db.Delete(&guestCart)
}

func issueUserToken(id string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": id,
		"role":    "user",
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
