package catalog

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"github.com/HaZeModsII/website-design/internal/cache"
	"github.com/HaZeModsII/website-design/internal/models"
)

const merchColumns = `id, name, description, price, image_url, image_urls, category,
                      stock, sizes, featured, sale_percent, created_at`

// scanMerch lit une ligne merch depuis un itérateur
func scanMerch(iter *gocql.Iter, m *models.MerchItem) bool {
	var salePercent float64
	ok := iter.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.ImageURL, &m.ImageURLs,
		&m.Category, &m.Stock, &m.Sizes, &m.Featured, &salePercent, &m.CreatedAt)
	if ok && salePercent > 0 {
		sp := salePercent
		m.SalePercent = &sp
	}
	return ok
}

// GetAllMerch - GET /api/merch
func (h *Handler) GetAllMerch(c *gin.Context) {
	ctx := c.Request.Context()

	// ✅ Vérifie le cache Redis (le listing inclut les prix effectifs)
	var cached []models.MerchItem
	if h.Cache.GetJSON(ctx, cache.MerchListKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	iter := h.Session.Query(`SELECT ` + merchColumns + ` FROM merch`).WithContext(ctx).Iter()

	items := []models.MerchItem{}
	var m models.MerchItem
	for scanMerch(iter, &m) {
		items = append(items, m)
		m = models.MerchItem{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur lecture merch"})
		return
	}

	settings := h.salesSettings(ctx)
	for i := range items {
		settings.ApplyPricing(&items[i])
	}

	h.Cache.SetJSON(ctx, cache.MerchListKey, items, cache.CatalogTTL)
	c.JSON(http.StatusOK, items)
}

// GetMerch - GET /api/merch/:id
func (h *Handler) GetMerch(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	iter := h.Session.Query(`SELECT `+merchColumns+` FROM merch WHERE id = ?`, id).
		WithContext(ctx).Iter()

	var m models.MerchItem
	found := scanMerch(iter, &m)
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur lecture merch"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Item not found"})
		return
	}

	settings := h.salesSettings(ctx)
	settings.ApplyPricing(&m)
	c.JSON(http.StatusOK, m)
}

// CreateMerch - POST /api/merch (admin)
func (h *Handler) CreateMerch(c *gin.Context) {
	var m models.MerchItem
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if m.Name == "" || m.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Nom manquant ou prix invalide"})
		return
	}

	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()

	if err := h.insertMerch(c, &m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur création merch"})
		return
	}

	h.Cache.Invalidate(c.Request.Context(), cache.MerchListKey)
	go h.Indexer.IndexMerch(m)

	settings := h.salesSettings(c.Request.Context())
	settings.ApplyPricing(&m)
	log.Printf("✅ Article merch créé: %s (%s)", m.Name, m.ID)
	c.JSON(http.StatusOK, m)
}

// UpdateMerch - PUT /api/merch/:id (admin)
func (h *Handler) UpdateMerch(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var update models.MerchItemUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	iter := h.Session.Query(`SELECT `+merchColumns+` FROM merch WHERE id = ?`, id).
		WithContext(ctx).Iter()
	var m models.MerchItem
	found := scanMerch(iter, &m)
	if err := iter.Close(); err != nil || !found {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Item not found"})
		return
	}

	if update.Name != nil {
		m.Name = *update.Name
	}
	if update.Description != nil {
		m.Description = *update.Description
	}
	if update.Price != nil {
		m.Price = *update.Price
	}
	if update.ImageURL != nil {
		m.ImageURL = *update.ImageURL
	}
	if update.ImageURLs != nil {
		m.ImageURLs = *update.ImageURLs
	}
	if update.Category != nil {
		m.Category = *update.Category
	}
	if update.Stock != nil {
		m.Stock = *update.Stock
	}
	if update.Sizes != nil {
		// Tailles fournies : elles remplacent intégralement le mapping.
		// Un mapping vide repasse l'article en stock plat.
		m.Sizes = *update.Sizes
	}
	if update.Featured != nil {
		m.Featured = *update.Featured
	}
	if update.SalePercent != nil {
		m.SalePercent = update.SalePercent
	}

	if err := h.insertMerch(c, &m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur mise à jour merch"})
		return
	}

	h.Cache.Invalidate(ctx, cache.MerchListKey)
	go h.Indexer.IndexMerch(m)

	settings := h.salesSettings(ctx)
	settings.ApplyPricing(&m)
	c.JSON(http.StatusOK, m)
}

// DeleteMerch - DELETE /api/merch/:id (admin)
func (h *Handler) DeleteMerch(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var existing string
	if err := h.Session.Query(`SELECT id FROM merch WHERE id = ?`, id).
		WithContext(ctx).Scan(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Item not found"})
		return
	}

	if err := h.Session.Query(`DELETE FROM merch WHERE id = ?`, id).WithContext(ctx).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur suppression merch"})
		return
	}

	h.Cache.Invalidate(ctx, cache.MerchListKey)
	go h.Indexer.Deindex("merch", id)

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// insertMerch écrit la ligne complète (INSERT = upsert en CQL)
func (h *Handler) insertMerch(c *gin.Context, m *models.MerchItem) error {
	salePercent := 0.0
	if m.SalePercent != nil {
		salePercent = *m.SalePercent
	}

	query := `INSERT INTO merch (id, name, description, price, image_url, image_urls, category,
	                             stock, sizes, featured, sale_percent, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	err := h.Session.Query(query,
		m.ID, m.Name, m.Description, m.Price, m.ImageURL, m.ImageURLs, m.Category,
		m.Stock, m.Sizes, m.Featured, salePercent, m.CreatedAt,
	).WithContext(c.Request.Context()).Exec()
	if err != nil {
		log.Printf("❌ Erreur écriture merch %s: %v", m.ID, err)
	}
	return err
}
