package catalog

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HaZeModsII/website-design/internal/cache"
	"github.com/HaZeModsII/website-design/internal/models"
)

// GetSalesSettings - GET /api/sales-settings
func (h *Handler) GetSalesSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.salesSettings(c.Request.Context()))
}

// UpdateSalesSettings - PUT /api/sales-settings (admin)
func (h *Handler) UpdateSalesSettings(c *gin.Context) {
	var settings models.SalesSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if settings.SiteWideDiscountPercent < 0 || settings.SiteWideDiscountPercent > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Pourcentage de remise invalide"})
		return
	}
	for category, discount := range settings.CategorySales {
		if discount < 0 || discount > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Remise invalide pour la catégorie " + category})
			return
		}
	}

	ctx := c.Request.Context()
	query := `INSERT INTO sales_settings (id, site_wide_sale, site_wide_discount_percent, category_sales)
	          VALUES ('default', ?, ?, ?)`
	if err := h.Session.Query(query,
		settings.SiteWideSale, settings.SiteWideDiscountPercent, settings.CategorySales,
	).WithContext(ctx).Exec(); err != nil {
		log.Printf("❌ Erreur écriture réglages promo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur mise à jour des promos"})
		return
	}

	// Les prix effectifs du listing dépendent des promos
	h.Cache.Invalidate(ctx, cache.SalesSettingsKey, cache.MerchListKey)

	log.Printf("✅ Réglages promo mis à jour (site entier: %v, %v%%)",
		settings.SiteWideSale, settings.SiteWideDiscountPercent)
	c.JSON(http.StatusOK, settings)
}
