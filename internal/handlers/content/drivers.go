package content

import (
	"fmt"
	"html"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/HaZeModsII/website-design/internal/models"
	"github.com/HaZeModsII/website-design/internal/utils"
)

// GetAllDrivers - GET /api/drivers
func (h *Handler) GetAllDrivers(c *gin.Context) {
	ctx := c.Request.Context()

	iter := h.Session.Query(`SELECT id, name, bio, car_name, email, image_url, created_at
	                         FROM drivers`).WithContext(ctx).Iter()

	drivers := []models.Driver{}
	var d models.Driver
	for iter.Scan(&d.ID, &d.Name, &d.Bio, &d.CarName, &d.Email, &d.ImageURL, &d.CreatedAt) {
		drivers = append(drivers, d)
		d = models.Driver{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur lecture pilotes"})
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// CreateDriver - POST /api/drivers (admin)
func (h *Handler) CreateDriver(c *gin.Context) {
	var d models.Driver
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if d.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Nom requis"})
		return
	}

	d.ID = uuid.NewString()
	d.CreatedAt = time.Now().UTC()

	query := `INSERT INTO drivers (id, name, bio, car_name, email, image_url, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`
	if err := h.Session.Query(query,
		d.ID, d.Name, d.Bio, d.CarName, d.Email, d.ImageURL, d.CreatedAt,
	).WithContext(c.Request.Context()).Exec(); err != nil {
		log.Printf("❌ Erreur écriture pilote %s: %v", d.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur création pilote"})
		return
	}

	log.Printf("✅ Pilote créé: %s (%s)", d.Name, d.ID)
	c.JSON(http.StatusOK, d)
}

// DeleteDriver - DELETE /api/drivers/:id (admin)
func (h *Handler) DeleteDriver(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var existing string
	if err := h.Session.Query(`SELECT id FROM drivers WHERE id = ?`, id).
		WithContext(ctx).Scan(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Driver not found"})
		return
	}

	if err := h.Session.Query(`DELETE FROM drivers WHERE id = ?`, id).WithContext(ctx).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur suppression pilote"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted successfully"})
}

// DriverContactRequest - message d'un visiteur adressé à un pilote
type DriverContactRequest struct {
	DriverID string `json:"driver_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Message  string `json:"message" binding:"required"`
}

// ContactDriver - POST /api/drivers/contact
func (h *Handler) ContactDriver(c *gin.Context) {
	var req DriverContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	var d models.Driver
	err := h.Session.Query(`SELECT id, name, bio, car_name, email, image_url, created_at
	                        FROM drivers WHERE id = ?`, req.DriverID).
		WithContext(c.Request.Context()).
		Scan(&d.ID, &d.Name, &d.Bio, &d.CarName, &d.Email, &d.ImageURL, &d.CreatedAt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Driver not found"})
		return
	}
	if d.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "No contact email for this driver"})
		return
	}

	body := fmt.Sprintf(`<h2>New message from the website</h2>
<p><strong>From:</strong> %s (%s)</p>
<p>%s</p>`,
		html.EscapeString(req.Name), html.EscapeString(req.Email), html.EscapeString(req.Message))

	// Envoi asynchrone, la réponse HTTP ne dépend pas du SMTP
	go func() {
		if err := utils.SendMail(d.Email, "Message from "+req.Name, body, nil, ""); err != nil {
			log.Printf("❌ Erreur envoi e-mail pilote %s: %v", d.ID, err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}
