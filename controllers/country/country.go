package countryControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Al-Noorstore/crush-shop-cart-flow/countries"
	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
)

// ResolveShopperCountry works out which country applies to this request:
// an explicit ?country= override wins, then the authenticated shopper's
// stored selection (or the guest's, via token or ?guest_id=), then the
// default market. Returns nil when the resolved code is not in the
// catalog — callers fall back to base pricing.
func ResolveShopperCountry(c *gin.Context, db *gorm.DB, catalog *countries.Catalog) *models.Country {
	code := c.Query("country")

	if code == "" {
		if userIDVal, exists := c.Get("user_id"); exists {
			userID := userIDVal.(string)
			var user models.User
			if err := db.Select("selected_country").First(&user, "id = ?", userID).Error; err == nil {
				code = user.SelectedCountry
			}
			if code == "" {
				var guest models.GuestUser
				if err := db.Select("selected_country").First(&guest, "id = ?", userID).Error; err == nil {
					code = guest.SelectedCountry
				}
			}
		}
	}

	// Guest cart endpoints carry the session in the query string
	if code == "" {
		if guestID := c.Query("guest_id"); guestID != "" {
			var guest models.GuestUser
			if err := db.Select("selected_country").First(&guest, "id = ?", guestID).Error; err == nil {
				code = guest.SelectedCountry
			}
		}
	}

	if code == "" {
		code = countries.DefaultCountryCode
	}

	country, err := catalog.GetByCode(code)
	if err != nil {
		return nil
	}
	return country
}

// GET /countries
func GetActiveCountries(catalog *countries.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := catalog.ListActive()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch countries"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

type DetectCountryInput struct {
	Phone string `json:"phone" binding:"required"`
}

// POST /countries/detect
func DetectCountry(catalog *countries.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DetectCountryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		code, ok := countries.DetectCountryCode(input.Phone)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"detected": false})
			return
		}

		country, err := catalog.GetByCode(code)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch country"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"detected": true, "country_code": code, "country": country})
	}
}

type SelectCountryInput struct {
	Code string `json:"code" binding:"required"`
}

// PUT /user/country
func SelectCountry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input SelectCountryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Selection is not validated against the active flag: availability
		// and pricing honor it independently, and admins preview inactive
		// markets this way.
		res := db.Model(&models.User{}).Where("id = ?", userID).
			Update("selected_country", input.Code)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update country"})
			return
		}
		if res.RowsAffected == 0 {
			// Guest session
			if err := db.Model(&models.GuestUser{}).Where("id = ?", userID).
				Update("selected_country", input.Code).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update country"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"selected_country": input.Code})
	}
}
