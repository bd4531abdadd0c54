package countryControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Al-Noorstore/crush-shop-cart-flow/countries"
)

// GET /admin/countries
func GetAllCountries(catalog *countries.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := catalog.ListAll()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch countries"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

type SetCountryActiveInput struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// PUT /admin/countries/:code/active
func SetCountryActive(catalog *countries.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")

		var input SetCountryActiveInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := catalog.SetActive(code, *input.IsActive); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update country"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": code, "is_active": *input.IsActive})
	}
}

type UpdateDeliveryInput struct {
	DeliveryDays    *int     `json:"delivery_days"`
	DeliveryCharges *float64 `json:"delivery_charges"`
}

// PUT /admin/countries/:code/delivery
func UpdateDeliverySettings(catalog *countries.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")

		var input UpdateDeliveryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := catalog.UpdateDelivery(code, input.DeliveryDays, input.DeliveryCharges); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Delivery settings updated"})
	}
}
