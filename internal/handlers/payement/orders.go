package payement

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HaZeModsII/website-design/internal/services"
	"github.com/HaZeModsII/website-design/internal/utils"
)

// Handler expose les endpoints commandes et paiements
type Handler struct {
	Orders *services.OrderService
}

func NewHandler(orders *services.OrderService) *Handler {
	return &Handler{Orders: orders}
}

// CreateOrder - POST /api/orders
func (h *Handler) CreateOrder(c *gin.Context) {
	var input services.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	order, err := h.Orders.CreateOrder(c.Request.Context(), input)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": verr.Detail})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur création commande"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrder - GET /api/orders/:id
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.Orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur lecture commande"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetOrderReceipt - GET /api/orders/:id/receipt
// Sert la page HTML du reçu (imprimée en PDF pour l'e-mail de confirmation)
func (h *Handler) GetOrderReceipt(c *gin.Context) {
	order, err := h.Orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur lecture commande"})
		return
	}

	qr, err := utils.GenerateOrderQR(order.ID)
	if err != nil {
		qr = ""
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(utils.GenerateReceiptHTML(*order, qr)))
}
