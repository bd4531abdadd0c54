package productcontroller

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
)

// ImportProductsFromExcel bulk-creates or updates products. Rows with an ID
// matching an existing product update it, others insert. The CountryPricing
// column holds the override list as JSON, same shape as the API field.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			if len(row.Cells) < 8 {
				skippedCount++
				continue
			}

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			price, err1 := strconv.ParseFloat(get(3), 64)
			originalPrice, _ := strconv.ParseFloat(get(4), 64)
			stock, _ := strconv.ParseFloat(get(5), 64)
			image := get(6)
			categoryIDStr := get(7)
			countryPricingStr := get(8)

			if name == "" || err1 != nil {
				skippedCount++
				continue
			}

			var categories []models.Category
			for _, part := range strings.Split(categoryIDStr, ",") {
				if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
					categories = append(categories, models.Category{ID: uint(id)})
				}
			}

			var countryPricing []models.CountryPricing
			if countryPricingStr != "" {
				if err := json.Unmarshal([]byte(countryPricingStr), &countryPricing); err != nil {
					skippedCount++
					continue
				}
				for j := range countryPricing {
					countryPricing[j].ID = 0
					countryPricing[j].ProductID = 0
					countryPricing[j].CountryCode = strings.ToUpper(strings.TrimSpace(countryPricing[j].CountryCode))
				}
			}

			product := models.Product{
				Name:           name,
				Description:    description,
				Price:          price,
				OriginalPrice:  originalPrice,
				Stock:          int(stock),
				Image:          image,
				Categories:     categories,
				CountryPricing: countryPricing,
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.Preload("Categories").First(&existing, id).Error; err == nil {
						existing.Name = product.Name
						existing.Description = product.Description
						existing.Price = product.Price
						existing.OriginalPrice = product.OriginalPrice
						existing.Stock = product.Stock
						existing.Image = product.Image

						// Replace categories
						if err := db.Model(&existing).Association("Categories").Replace(categories); err != nil {
							skippedCount++
							continue
						}

						// Replace country pricing when the column is present
						if countryPricingStr != "" {
							if err := db.Where("product_id = ?", existing.ID).
								Delete(&models.CountryPricing{}).Error; err != nil {
								skippedCount++
								continue
							}
							for j := range countryPricing {
								countryPricing[j].ProductID = existing.ID
							}
							if len(countryPricing) > 0 {
								if err := db.Create(&countryPricing).Error; err != nil {
									skippedCount++
									continue
								}
							}
						}

						if err := db.Save(&existing).Error; err == nil {
							updatedCount++
							continue
						}
					}
				}
			}

			// Insert new product
			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
