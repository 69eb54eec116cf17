package catalog

import (
	"context"
	"log"

	"github.com/gocql/gocql"

	"github.com/HaZeModsII/website-design/internal/cache"
	"github.com/HaZeModsII/website-design/internal/models"
	"github.com/HaZeModsII/website-design/internal/services"
)

// Handler regroupe les endpoints catalogue (merch, pièces, promos, recherche).
// La session Scylla, le cache et l'indexeur sont injectés au démarrage.
type Handler struct {
	Session *gocql.Session
	Cache   *cache.Cache
	Indexer *services.SearchIndexer
}

func NewHandler(session *gocql.Session, c *cache.Cache, indexer *services.SearchIndexer) *Handler {
	return &Handler{Session: session, Cache: c, Indexer: indexer}
}

// salesSettings charge les réglages de promo (cache Redis, puis Scylla,
// sinon valeurs par défaut — jamais d'erreur bloquante pour une lecture)
func (h *Handler) salesSettings(ctx context.Context) models.SalesSettings {
	var settings models.SalesSettings
	if h.Cache.GetJSON(ctx, cache.SalesSettingsKey, &settings) {
		return settings
	}

	err := h.Session.Query(`SELECT site_wide_sale, site_wide_discount_percent, category_sales
	                        FROM sales_settings WHERE id = ?`, "default").
		WithContext(ctx).Scan(&settings.SiteWideSale, &settings.SiteWideDiscountPercent, &settings.CategorySales)
	if err != nil && err != gocql.ErrNotFound {
		log.Printf("⚠️ Erreur lecture sales_settings: %v", err)
	}
	if settings.CategorySales == nil {
		settings.CategorySales = map[string]float64{}
	}

	h.Cache.SetJSON(ctx, cache.SalesSettingsKey, settings, cache.SettingsTTL)
	return settings
}
