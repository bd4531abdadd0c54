package productcontroller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
)

// uploadsRoot is overridable so deployments can point at the nginx-served
// directory.
func uploadsRoot() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// parseCountryPricing decodes the country_pricing form field, a JSON array
// of per-country overrides, and rejects duplicate country codes.
func parseCountryPricing(raw string) ([]models.CountryPricing, error) {
	if raw == "" {
		return nil, nil
	}
	var entries []models.CountryPricing
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("invalid country_pricing JSON: %w", err)
	}
	seen := make(map[string]bool)
	for i := range entries {
		entries[i].ID = 0
		entries[i].ProductID = 0
		code := strings.ToUpper(strings.TrimSpace(entries[i].CountryCode))
		if code == "" {
			return nil, fmt.Errorf("country_pricing entry %d has no country_code", i+1)
		}
		if seen[code] {
			return nil, fmt.Errorf("duplicate country_pricing entry for %s", code)
		}
		seen[code] = true
		entries[i].CountryCode = code
	}
	return entries, nil
}

// CreateProduct creates a new product with categories, per-country pricing
// and an image upload.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		// Optional fields
		description := c.PostForm("description")
		originalPriceStr := c.PostForm("original_price")
		stockStr := c.PostForm("stock")
		categoryIDsStr := c.PostForm("category_ids")
		countryPricingStr := c.PostForm("country_pricing")
		isOnSale := c.PostForm("is_on_sale") == "true"
		isBestSeller := c.PostForm("is_best_seller") == "true"

		// Convert numerics
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var originalPrice float64
		if originalPriceStr != "" {
			if op, parseErr := strconv.ParseFloat(originalPriceStr, 64); parseErr == nil {
				originalPrice = op
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid original_price"})
				return
			}
		}
		var stock int
		if stockStr != "" {
			if s, parseErr := strconv.Atoi(stockStr); parseErr == nil {
				stock = s
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		// Categories
		var categories []models.Category
		if categoryIDsStr != "" {
			idTokens := strings.Split(categoryIDsStr, ",")
			var parsedIDs []uint
			for _, tok := range idTokens {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				if id64, parseErr := strconv.ParseUint(tok, 10, 64); parseErr == nil {
					parsedIDs = append(parsedIDs, uint(id64))
				} else {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_ids format"})
					return
				}
			}
			if len(parsedIDs) > 0 {
				if err := db.Where("id IN ?", parsedIDs).Find(&categories).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
					return
				}
			}
		}

		// Per-country pricing overrides
		countryPricing, err := parseCountryPricing(countryPricingStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Image upload
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		filename := strings.ReplaceAll(file.Filename, " ", "_")

		saveDir := filepath.Join(uploadsRoot(), "products")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create upload folder: %v", err)})
			return
		}
		savePath := filepath.Join(saveDir, filename)

		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
			return
		}

		// Public URL (served by nginx/gin)
		imageURL := fmt.Sprintf("/uploads/products/%s", filename)

		// Transaction
		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		newProduct := models.Product{
			Name:           name,
			Description:    description,
			Price:          price,
			OriginalPrice:  originalPrice,
			Stock:          stock,
			IsOnSale:       isOnSale,
			IsBestSeller:   isBestSeller,
			Image:          imageURL,
			Categories:     categories,
			CountryPricing: countryPricing,
		}

		if err := tx.Create(&newProduct).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
