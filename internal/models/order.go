package models

import "time"

// OrderStatus — cycle de vie d'une commande.
// pending → completed | failed (une seule fois, par le paiement).
// cancelled est un état terminal posé manuellement, jamais par ce flux.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsTerminal indique si aucune transition n'est plus possible depuis ce statut
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusFailed, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderLineItem — une ligne de commande, avec le prix unitaire figé
// au moment de la commande (pas de re-tarification depuis le catalogue)
type OrderLineItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Size        *string `json:"size,omitempty"`
	VariantID   *string `json:"variant_id,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Order représente l'intention d'achat d'un client
type Order struct {
	ID            string          `json:"id"`
	CustomerEmail string          `json:"customer_email"`
	CustomerName  string          `json:"customer_name"`
	LineItems     []OrderLineItem `json:"line_items"`
	TotalAmount   float64         `json:"total_amount"`
	Status        OrderStatus     `json:"status"`
	PaymentID     string          `json:"payment_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
