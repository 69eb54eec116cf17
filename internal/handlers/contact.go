package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"github.com/HaZeModsII/website-design/internal/models"
	"github.com/HaZeModsII/website-design/internal/utils"
)

// ContactHandler gère le formulaire de contact public
type ContactHandler struct {
	Session *gocql.Session
}

func NewContactHandler(session *gocql.Session) *ContactHandler {
	return &ContactHandler{Session: session}
}

// ContactRequest - payload du formulaire de contact
type ContactRequest struct {
	InquiryType string  `json:"inquiry_type"`
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       string  `json:"phone"`
	Message     string  `json:"message" binding:"required"`
	EventID     *string `json:"event_id"`
	EventName   *string `json:"event_name"`
}

// SubmitContact - POST /api/contact
// 📥 Enregistre la demande puis notifie l'admin par e-mail (asynchrone)
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if req.InquiryType == "" {
		req.InquiryType = "general"
	}

	inquiry := models.ContactInquiry{
		ID:          uuid.NewString(),
		InquiryType: req.InquiryType,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		EventID:     req.EventID,
		EventName:   req.EventName,
		Status:      models.InquiryStatusNew,
		CreatedAt:   time.Now().UTC(),
	}

	query := `INSERT INTO contact_inquiries (id, inquiry_type, name, email, phone, message,
	                                         event_id, event_name, status, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if err := h.Session.Query(query,
		inquiry.ID, inquiry.InquiryType, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Message,
		inquiry.EventID, inquiry.EventName, inquiry.Status, inquiry.CreatedAt,
	).WithContext(c.Request.Context()).Exec(); err != nil {
		log.Printf("❌ Erreur écriture demande de contact: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur enregistrement demande"})
		return
	}

	log.Printf("📥 Demande de contact %s reçue de %s (%s)", inquiry.ID, inquiry.Name, inquiry.InquiryType)

	// La notification ne conditionne pas la réponse HTTP
	go func(inq models.ContactInquiry) {
		body := utils.GenerateInquiryNotificationHTML(inq)
		if err := utils.SendMail(utils.AdminEmail(), "New Contact Inquiry - "+inq.Name, body, nil, ""); err != nil {
			log.Printf("⚠️ Notification admin non envoyée pour %s: %v", inq.ID, err)
		}
	}(inquiry)

	c.JSON(http.StatusOK, gin.H{"message": "Inquiry submitted successfully", "id": inquiry.ID})
}
