package content

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/HaZeModsII/website-design/internal/models"
)

// GetAllSponsors - GET /api/sponsors
func (h *Handler) GetAllSponsors(c *gin.Context) {
	ctx := c.Request.Context()

	iter := h.Session.Query(`SELECT id, name, website_url, instagram_url, facebook_url, description, image_url, created_at
	                         FROM sponsors`).WithContext(ctx).Iter()

	sponsors := []models.Sponsor{}
	var s models.Sponsor
	for iter.Scan(&s.ID, &s.Name, &s.WebsiteURL, &s.InstagramURL, &s.FacebookURL, &s.Description, &s.ImageURL, &s.CreatedAt) {
		sponsors = append(sponsors, s)
		s = models.Sponsor{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur lecture sponsors"})
		return
	}
	c.JSON(http.StatusOK, sponsors)
}

// CreateSponsor - POST /api/sponsors (admin)
func (h *Handler) CreateSponsor(c *gin.Context) {
	var s models.Sponsor
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if s.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Nom requis"})
		return
	}

	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()

	query := `INSERT INTO sponsors (id, name, website_url, instagram_url, facebook_url, description, image_url, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if err := h.Session.Query(query,
		s.ID, s.Name, s.WebsiteURL, s.InstagramURL, s.FacebookURL, s.Description, s.ImageURL, s.CreatedAt,
	).WithContext(c.Request.Context()).Exec(); err != nil {
		log.Printf("❌ Erreur écriture sponsor %s: %v", s.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur création sponsor"})
		return
	}

	log.Printf("✅ Sponsor créé: %s (%s)", s.Name, s.ID)
	c.JSON(http.StatusOK, s)
}

// DeleteSponsor - DELETE /api/sponsors/:id (admin)
func (h *Handler) DeleteSponsor(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var existing string
	if err := h.Session.Query(`SELECT id FROM sponsors WHERE id = ?`, id).
		WithContext(ctx).Scan(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Sponsor not found"})
		return
	}

	if err := h.Session.Query(`DELETE FROM sponsors WHERE id = ?`, id).WithContext(ctx).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur suppression sponsor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sponsor deleted successfully"})
}
