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

const partColumns = `id, name, description, price, image_url, image_urls, category,
                     car_model, year, condition, stock, created_at`

func scanPart(iter *gocql.Iter, p *models.Part) bool {
	return iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.ImageURLs,
		&p.Category, &p.CarModel, &p.Year, &p.Condition, &p.Stock, &p.CreatedAt)
}

// GetAllParts - GET /api/parts
func (h *Handler) GetAllParts(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.Part
	if h.Cache.GetJSON(ctx, cache.PartsListKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	iter := h.Session.Query(`SELECT ` + partColumns + ` FROM parts`).WithContext(ctx).Iter()

	parts := []models.Part{}
	var p models.Part
	for scanPart(iter, &p) {
		parts = append(parts, p)
		p = models.Part{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur lecture pièces"})
		return
	}

	h.Cache.SetJSON(ctx, cache.PartsListKey, parts, cache.CatalogTTL)
	c.JSON(http.StatusOK, parts)
}

// GetPart - GET /api/parts/:id
func (h *Handler) GetPart(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	iter := h.Session.Query(`SELECT `+partColumns+` FROM parts WHERE id = ?`, id).
		WithContext(ctx).Iter()

	var p models.Part
	found := scanPart(iter, &p)
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur lecture pièce"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Part not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreatePart - POST /api/parts (admin)
func (h *Handler) CreatePart(c *gin.Context) {
	var p models.Part
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if p.Name == "" || p.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Nom manquant ou prix invalide"})
		return
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	if err := h.insertPart(c, &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur création pièce"})
		return
	}

	h.Cache.Invalidate(c.Request.Context(), cache.PartsListKey)
	go h.Indexer.IndexPart(p)

	log.Printf("✅ Pièce créée: %s (%s)", p.Name, p.ID)
	c.JSON(http.StatusOK, p)
}

// UpdatePart - PUT /api/parts/:id (admin)
func (h *Handler) UpdatePart(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var update models.PartUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	iter := h.Session.Query(`SELECT `+partColumns+` FROM parts WHERE id = ?`, id).
		WithContext(ctx).Iter()
	var p models.Part
	found := scanPart(iter, &p)
	if err := iter.Close(); err != nil || !found {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Part not found"})
		return
	}

	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.ImageURL != nil {
		p.ImageURL = *update.ImageURL
	}
	if update.ImageURLs != nil {
		p.ImageURLs = *update.ImageURLs
	}
	if update.Category != nil {
		p.Category = *update.Category
	}
	if update.CarModel != nil {
		p.CarModel = *update.CarModel
	}
	if update.Year != nil {
		p.Year = *update.Year
	}
	if update.Condition != nil {
		p.Condition = *update.Condition
	}
	if update.Stock != nil {
		p.Stock = *update.Stock
	}

	if err := h.insertPart(c, &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur mise à jour pièce"})
		return
	}

	h.Cache.Invalidate(ctx, cache.PartsListKey)
	go h.Indexer.IndexPart(p)

	c.JSON(http.StatusOK, p)
}

// DeletePart - DELETE /api/parts/:id (admin)
func (h *Handler) DeletePart(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var existing string
	if err := h.Session.Query(`SELECT id FROM parts WHERE id = ?`, id).
		WithContext(ctx).Scan(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Part not found"})
		return
	}

	if err := h.Session.Query(`DELETE FROM parts WHERE id = ?`, id).WithContext(ctx).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur suppression pièce"})
		return
	}

	h.Cache.Invalidate(ctx, cache.PartsListKey)
	go h.Indexer.Deindex("parts", id)

	c.JSON(http.StatusOK, gin.H{"message": "Part deleted successfully"})
}

func (h *Handler) insertPart(c *gin.Context, p *models.Part) error {
	query := `INSERT INTO parts (id, name, description, price, image_url, image_urls, category,
	                             car_model, year, condition, stock, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	err := h.Session.Query(query,
		p.ID, p.Name, p.Description, p.Price, p.ImageURL, p.ImageURLs, p.Category,
		p.CarModel, p.Year, p.Condition, p.Stock, p.CreatedAt,
	).WithContext(c.Request.Context()).Exec()
	if err != nil {
		log.Printf("❌ Erreur écriture pièce %s: %v", p.ID, err)
	}
	return err
}
