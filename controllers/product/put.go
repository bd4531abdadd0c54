package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
)

// UpdateProduct updates an existing product by ID.
// Accepts the same fields as CreateProduct and an optional "image" file.
// When country_pricing is sent, the full override list is replaced.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get product ID from URL
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		// Fetch existing product
		var product models.Product
		if err := db.Preload("Categories").Preload("CountryPricing").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		// Helper to parse float fields safely
		parseFloat := func(val string) *float64 {
			if val == "" {
				return nil
			}
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				return &f
			}
			return nil
		}

		// Helper to parse int fields safely
		parseInt := func(val string) *int {
			if val == "" {
				return nil
			}
			if i, err := strconv.Atoi(val); err == nil {
				return &i
			}
			return nil
		}

		// Parse form fields (optional updates)
		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := parseFloat(c.PostForm("price")); v != nil {
			product.Price = *v
		}
		if v := parseFloat(c.PostForm("original_price")); v != nil {
			product.OriginalPrice = *v
		}
		if v := parseInt(c.PostForm("stock")); v != nil {
			product.Stock = *v
		}
		if v := c.PostForm("is_on_sale"); v != "" {
			product.IsOnSale = v == "true"
		}
		if v := c.PostForm("is_best_seller"); v != "" {
			product.IsBestSeller = v == "true"
		}

		// Update categories if provided
		if categoryIDsStr := c.PostForm("category_ids"); categoryIDsStr != "" {
			idTokens := strings.Split(categoryIDsStr, ",")
			var parsedIDs []uint
			for _, tok := range idTokens {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				if id64, parseErr := strconv.ParseUint(tok, 10, 64); parseErr == nil {
					parsedIDs = append(parsedIDs, uint(id64))
				}
			}
			if len(parsedIDs) > 0 {
				var categories []models.Category
				if err := db.Where("id IN ?", parsedIDs).Find(&categories).Error; err == nil {
					product.Categories = categories
				}
			}
		}

		// Replace country pricing if provided
		var newPricing []models.CountryPricing
		replacePricing := false
		if raw := c.PostForm("country_pricing"); raw != "" {
			newPricing, err = parseCountryPricing(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			replacePricing = true
		}

		// Handle optional image upload
		file, err := c.FormFile("image")
		if err == nil {
			saveDir := filepath.Join(uploadsRoot(), "products")
			if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
				return
			}

			// Create unique filename
			ext := filepath.Ext(file.Filename)
			base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
			base = strings.ReplaceAll(base, " ", "_")
			filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

			savePath := filepath.Join(saveDir, filename)

			if err := c.SaveUploadedFile(file, savePath); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}

			// Save relative path for client access
			product.Image = fmt.Sprintf("/uploads/products/%s", filename)
		}

		// Save in one transaction so a pricing replace can't half-apply
		err = db.Transaction(func(tx *gorm.DB) error {
			if replacePricing {
				if err := tx.Where("product_id = ?", product.ID).
					Delete(&models.CountryPricing{}).Error; err != nil {
					return err
				}
				for i := range newPricing {
					newPricing[i].ProductID = product.ID
				}
				product.CountryPricing = newPricing
			}
			return tx.Session(&gorm.Session{FullSaveAssociations: replacePricing}).
				Save(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
