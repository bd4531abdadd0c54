package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	countryControllers "github.com/Al-Noorstore/crush-shop-cart-flow/controllers/country"
	"github.com/Al-Noorstore/crush-shop-cart-flow/countries"
	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
	"github.com/Al-Noorstore/crush-shop-cart-flow/pricing"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// CartLineView is a cart row with its price resolved for the shopper's
// country at read time.
type CartLineView struct {
	models.CartItem
	Pricing pricing.ResolvedPricing `json:"pricing"`
}

// CartView is what cart endpoints return: resolved lines plus the totals
// the checkout page will show.
type CartView struct {
	Items  []CartLineView `json:"items"`
	Totals pricing.Totals `json:"totals"`
}

// buildCartView loads the products behind the given cart rows and prices
// everything through the aggregator. Rows whose product has been deleted
// are skipped rather than failing the whole cart.
func buildCartView(db *gorm.DB, items []models.CartItem, country *models.Country) (CartView, error) {
	view := CartView{Items: []CartLineView{}}
	var lines []pricing.Line

	for _, item := range items {
		var product models.Product
		if err := db.Preload("CountryPricing").First(&product, "id = ?", item.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return CartView{}, err
		}
		lines = append(lines, pricing.Line{Product: product, Quantity: item.Quantity})
		view.Items = append(view.Items, CartLineView{
			CartItem: item,
			Pricing:  pricing.Resolve(product, country),
		})
	}

	view.Totals = pricing.ComputeTotals(lines, country)
	return view, nil
}

// POST /user/cart
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Fetch product from DB
		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		// Check if user has a cart; create lazily on first add
		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				cart = models.Cart{UserID: userID}
				if err := db.Create(&cart).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
					return
				}
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
				return
			}
		}

		// Check if item already exists in the cart
		var item models.CartItem
		err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).First(&item).Error
		if err != nil {
			// New cart item
			if err == gorm.ErrRecordNotFound {
				newItem := models.CartItem{
					CartID:       cart.CartID,
					ProductID:    product.ID,
					ProductName:  product.Name,
					ProductImage: product.Image,
					Quantity:     input.Quantity,
					AddedAt:      time.Now(),
				}
				if err := db.Create(&newItem).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
					return
				}
				c.JSON(http.StatusCreated, newItem)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		// Update existing cart item quantity and time
		item.Quantity = input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get user ID from context
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		productID := c.Param("product_id")

		// Get the user's cart
		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User cart not found"})
			return
		}

		// Attempt to delete the cart item
		result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		// Check if item was actually deleted
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart
func GetUserCart(db *gorm.DB, catalog *countries.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, CartView{Items: []CartLineView{}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		shopperCountry := countryControllers.ResolveShopperCountry(c, db, catalog)
		view, err := buildCartView(db, cart.Items, shopperCountry)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to price cart"})
			return
		}

		c.JSON(http.StatusOK, view)
	}
}

// GET /user/cart/totals
func GetCartTotals(db *gorm.DB, catalog *countries.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil && err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		shopperCountry := countryControllers.ResolveShopperCountry(c, db, catalog)
		view, err := buildCartView(db, cart.Items, shopperCountry)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to price cart"})
			return
		}

		c.JSON(http.StatusOK, view.Totals)
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(db *gorm.DB, catalog *countries.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		shopperCountry := countryControllers.ResolveShopperCountry(c, db, catalog)
		view, err := buildCartView(db, cart.Items, shopperCountry)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to price cart"})
			return
		}

		c.JSON(http.StatusOK, view)
	}
}
