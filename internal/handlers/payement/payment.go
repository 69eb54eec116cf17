package payement

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HaZeModsII/website-design/internal/payment"
	"github.com/HaZeModsII/website-design/internal/services"
)

// ProcessPaymentRequest - payload de POST /api/payments/process
type ProcessPaymentRequest struct {
	OrderID  string `json:"order_id" binding:"required"`
	SourceID string `json:"source_id" binding:"required"`
}

// ProcessPayment - POST /api/payments/process
// 💳 Débite la commande via la passerelle puis réconcilie le stock
func (h *Handler) ProcessPayment(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	result, err := h.Orders.ProcessPayment(c.Request.Context(), req.OrderID, req.SourceID)
	if err != nil {
		var verr *services.ValidationError
		var state *services.InvalidStateError
		var declined *payment.DeclinedError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"detail": verr.Detail})
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found"})
		case errors.As(err, &state):
			c.JSON(http.StatusBadRequest, gin.H{"detail": state.Error()})
		case errors.As(err, &declined):
			c.JSON(http.StatusBadRequest, gin.H{"detail": declined.Detail})
		default:
			// Panne technique : pas de détail au client, le statut n'a pas bougé
			log.Printf("❌ Erreur paiement commande %s: %v", req.OrderID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Payment processing failed"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
