package content

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/HaZeModsII/website-design/internal/models"
)

// GetAllEvents - GET /api/events
func (h *Handler) GetAllEvents(c *gin.Context) {
	ctx := c.Request.Context()

	iter := h.Session.Query(`SELECT id, name, description, date, location, image_url, ticket_price, created_at
	                         FROM events`).WithContext(ctx).Iter()

	events := []models.Event{}
	var e models.Event
	for iter.Scan(&e.ID, &e.Name, &e.Description, &e.Date, &e.Location, &e.ImageURL, &e.TicketPrice, &e.CreatedAt) {
		events = append(events, e)
		e = models.Event{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur lecture événements"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent - GET /api/events/:id
func (h *Handler) GetEvent(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var e models.Event
	err := h.Session.Query(`SELECT id, name, description, date, location, image_url, ticket_price, created_at
	                        FROM events WHERE id = ?`, id).WithContext(ctx).
		Scan(&e.ID, &e.Name, &e.Description, &e.Date, &e.Location, &e.ImageURL, &e.TicketPrice, &e.CreatedAt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

// CreateEvent - POST /api/events (admin)
func (h *Handler) CreateEvent(c *gin.Context) {
	var e models.Event
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if e.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Nom requis"})
		return
	}

	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()

	if err := h.insertEvent(c, &e); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur création événement"})
		return
	}

	log.Printf("✅ Événement créé: %s (%s)", e.Name, e.ID)
	c.JSON(http.StatusOK, e)
}

// UpdateEvent - PUT /api/events/:id (admin)
func (h *Handler) UpdateEvent(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var update models.EventUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	var e models.Event
	err := h.Session.Query(`SELECT id, name, description, date, location, image_url, ticket_price, created_at
	                        FROM events WHERE id = ?`, id).WithContext(ctx).
		Scan(&e.ID, &e.Name, &e.Description, &e.Date, &e.Location, &e.ImageURL, &e.TicketPrice, &e.CreatedAt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Event not found"})
		return
	}

	if update.Name != nil {
		e.Name = *update.Name
	}
	if update.Description != nil {
		e.Description = *update.Description
	}
	if update.Date != nil {
		e.Date = *update.Date
	}
	if update.Location != nil {
		e.Location = *update.Location
	}
	if update.ImageURL != nil {
		e.ImageURL = *update.ImageURL
	}
	if update.TicketPrice != nil {
		e.TicketPrice = *update.TicketPrice
	}

	if err := h.insertEvent(c, &e); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur mise à jour événement"})
		return
	}
	c.JSON(http.StatusOK, e)
}

// DeleteEvent - DELETE /api/events/:id (admin)
func (h *Handler) DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var existing string
	if err := h.Session.Query(`SELECT id FROM events WHERE id = ?`, id).
		WithContext(ctx).Scan(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Event not found"})
		return
	}

	if err := h.Session.Query(`DELETE FROM events WHERE id = ?`, id).WithContext(ctx).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur suppression événement"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func (h *Handler) insertEvent(c *gin.Context, e *models.Event) error {
	query := `INSERT INTO events (id, name, description, date, location, image_url, ticket_price, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	err := h.Session.Query(query,
		e.ID, e.Name, e.Description, e.Date, e.Location, e.ImageURL, e.TicketPrice, e.CreatedAt,
	).WithContext(c.Request.Context()).Exec()
	if err != nil {
		log.Printf("❌ Erreur écriture événement %s: %v", e.ID, err)
	}
	return err
}
