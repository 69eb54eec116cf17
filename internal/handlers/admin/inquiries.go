package admin

import (
	"log"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/HaZeModsII/website-design/internal/models"
)

// GetInquiries - GET /api/inquiries (admin)
// Retourne les demandes, plus récentes d'abord
func (h *Handler) GetInquiries(c *gin.Context) {
	ctx := c.Request.Context()

	iter := h.Session.Query(`SELECT id, inquiry_type, name, email, phone, message,
	                                event_id, event_name, status, created_at
	                         FROM contact_inquiries`).WithContext(ctx).Iter()

	inquiries := []models.ContactInquiry{}
	var inq models.ContactInquiry
	for iter.Scan(&inq.ID, &inq.InquiryType, &inq.Name, &inq.Email, &inq.Phone, &inq.Message,
		&inq.EventID, &inq.EventName, &inq.Status, &inq.CreatedAt) {
		inquiries = append(inquiries, inq)
		inq = models.ContactInquiry{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur lecture demandes"})
		return
	}

	sort.Slice(inquiries, func(i, j int) bool {
		return inquiries[i].CreatedAt.After(inquiries[j].CreatedAt)
	})

	c.JSON(http.StatusOK, inquiries)
}

// UpdateInquiryStatusRequest - nouveau statut d'une demande
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateInquiryStatus - PATCH /api/inquiries/:id/status (admin)
func (h *Handler) UpdateInquiryStatus(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if !models.ValidInquiryStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid status"})
		return
	}

	var existing string
	if err := h.Session.Query(`SELECT id FROM contact_inquiries WHERE id = ?`, id).
		WithContext(ctx).Scan(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Inquiry not found"})
		return
	}

	if err := h.Session.Query(`UPDATE contact_inquiries SET status = ? WHERE id = ?`, req.Status, id).
		WithContext(ctx).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur mise à jour demande"})
		return
	}

	log.Printf("✅ Demande %s passée en '%s'", id, req.Status)
	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}
