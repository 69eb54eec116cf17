package models

import "time"

// Statuts possibles d'une demande de contact
const (
	InquiryStatusNew        = "new"
	InquiryStatusInProgress = "in_progress"
	InquiryStatusResolved   = "resolved"
)

// ContactInquiry représente une demande via le formulaire de contact
// (inquiry_type: "ticket" pour les événements, "general" sinon)
type ContactInquiry struct {
	ID          string    `json:"id"`
	InquiryType string    `json:"inquiry_type"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	EventID     *string   `json:"event_id,omitempty"`
	EventName   *string   `json:"event_name,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ValidInquiryStatus vérifie qu'un statut fait partie des valeurs admises
func ValidInquiryStatus(s string) bool {
	switch s {
	case InquiryStatusNew, InquiryStatusInProgress, InquiryStatusResolved:
		return true
	}
	return false
}
