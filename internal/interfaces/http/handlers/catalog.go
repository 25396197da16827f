// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KarenBrasil/Cestas-Presentes/internal/domain/catalog"
	"github.com/KarenBrasil/Cestas-Presentes/internal/pkg/money"
)

// CatalogHandler handles catalog endpoints
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

type productResponse struct {
	catalog.Product
	PriceFormatted string `json:"price_formatted"`
}

func toProductResponses(products []catalog.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = productResponse{Product: p, PriceFormatted: money.Format(p.Price)}
	}
	return out
}

// GetProducts handles GET /catalog/products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var products []catalog.Product
	if category := c.Query("category"); category != "" {
		products = h.catalog.ProductsByCategory(catalog.Category(category))
	} else {
		products = h.catalog.Products()
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    toProductResponses(products),
	})
}

// GetCategories handles GET /catalog/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    catalog.Categories(),
	})
}

type bouquetPriceResponse struct {
	Size               catalog.BouquetSize `json:"size"`
	Surcharge          int64               `json:"surcharge"`
	SurchargeFormatted string              `json:"surcharge_formatted"`
}

// GetPricing handles GET /catalog/pricing
func (h *CatalogHandler) GetPricing(c *gin.Context) {
	sizes := []catalog.BouquetSize{catalog.BouquetNone, catalog.BouquetSmall, catalog.BouquetLarge}
	bouquets := make([]bouquetPriceResponse, len(sizes))
	for i, size := range sizes {
		surcharge := h.catalog.BouquetSurcharge(size)
		bouquets[i] = bouquetPriceResponse{
			Size:               size,
			Surcharge:          surcharge,
			SurchargeFormatted: money.Format(surcharge),
		}
	}

	basePrice := h.catalog.StandardBasePrice()
	c.JSON(http.StatusOK, gin.H{
		"message": "Pricing retrieved successfully",
		"data": gin.H{
			"bouquets":                      bouquets,
			"standard_base_price":           basePrice,
			"standard_base_price_formatted": money.Format(basePrice),
		},
	})
}
