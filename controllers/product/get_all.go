package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	countryControllers "github.com/Al-Noorstore/crush-shop-cart-flow/controllers/country"
	"github.com/Al-Noorstore/crush-shop-cart-flow/countries"
	"github.com/Al-Noorstore/crush-shop-cart-flow/models"
	"github.com/Al-Noorstore/crush-shop-cart-flow/pricing"
)

// ProductView is a product plus its pricing resolved for the shopper's
// country, as the catalog and product pages render it.
type ProductView struct {
	models.Product
	Pricing         pricing.ResolvedPricing `json:"pricing"`
	DiscountPercent int                     `json:"discount_percent"`
}

// sortableColumns whitelists what ORDER BY may reference; anything else
// falls back to created_at.
var sortableColumns = map[string]bool{
	"created_at": true,
	"name":       true,
	"price":      true,
	"rating":     true,
	"reviews":    true,
	"stock":      true,
}

func sortClause(sortBy, order string) string {
	if !sortableColumns[sortBy] {
		sortBy = "created_at"
	}
	if order != "asc" && order != "desc" {
		order = "desc"
	}
	return sortBy + " " + order
}

func toView(p models.Product, country *models.Country) ProductView {
	resolved := pricing.Resolve(p, country)
	return ProductView{
		Product:         p,
		Pricing:         resolved,
		DiscountPercent: pricing.DiscountPercent(resolved.UnitPrice, resolved.UnitOriginalPrice),
	}
}

func GetProducts(db *gorm.DB, catalog *countries.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1️⃣ Filtering & sorting params
		search := c.Query("search")
		categoryID := c.Query("category_id")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		// 2️⃣ Build base query
		query := db.Model(&models.Product{}).Preload("Categories").Preload("CountryPricing")

		// 3️⃣ Apply search filter
		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}

		// 4️⃣ Apply price range filter (on the base USD price)
		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		// 5️⃣ Apply category filter
		if categoryID != "" {
			if cid, err := strconv.ParseUint(categoryID, 10, 64); err == nil {
				query = query.
					Joins("JOIN product_categories pc ON pc.product_id = products.id").
					Where("pc.category_id = ?", uint(cid))
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
		}

		// 6️⃣ Apply sorting (whitelisted columns only)
		var products []models.Product
		if err := query.Order(sortClause(sortBy, sortOrder)).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		// 7️⃣ Filter by availability in the shopper's country and attach
		// resolved pricing
		shopperCountry := countryControllers.ResolveShopperCountry(c, db, catalog)
		views := make([]ProductView, 0, len(products))
		for _, p := range products {
			if !pricing.IsAvailable(p, shopperCountry) {
				continue
			}
			views = append(views, toView(p, shopperCountry))
		}

		// 8️⃣ Return products
		c.JSON(http.StatusOK, views)
	}
}
