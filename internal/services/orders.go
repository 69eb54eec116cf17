package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/HaZeModsII/website-design/internal/models"
	"github.com/HaZeModsII/website-design/internal/payment"
	"github.com/HaZeModsII/website-design/internal/store"
)

// Devise facturée par la passerelle
const Currency = "cad"

// OrderService orchestre le flux commande → paiement → réconciliation stock.
// Les handles de stores et la passerelle sont injectés, pas de global.
type OrderService struct {
	orders  store.OrderStore
	catalog store.CatalogStore
	gateway payment.Gateway

	// OnPaymentSucceeded est appelé (dans une goroutine) après un paiement
	// réussi — utilisé pour l'e-mail de confirmation. Jamais bloquant.
	OnPaymentSucceeded func(order models.Order)
}

func NewOrderService(orders store.OrderStore, catalog store.CatalogStore, gateway payment.Gateway) *OrderService {
	return &OrderService{
		orders:  orders,
		catalog: catalog,
		gateway: gateway,
	}
}

// CreateOrderInput — payload de création de commande.
// Les prix unitaires sont fournis par l'appelant et figés tels quels,
// sans re-validation contre le catalogue.
type CreateOrderInput struct {
	CustomerEmail string                 `json:"customer_email" binding:"required,email"`
	CustomerName  string                 `json:"customer_name" binding:"required"`
	LineItems     []models.OrderLineItem `json:"line_items" binding:"required"`
}

// CreateOrder valide les lignes, calcule le total et enregistre la commande
// en "pending". Aucun effet de bord au-delà de la persistance : pas de
// contrôle de stock ni de tarif à ce stade.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if len(in.LineItems) == 0 {
		return nil, &ValidationError{Detail: "La commande ne contient aucun article"}
	}

	var total float64
	for i, item := range in.LineItems {
		if item.ProductID == "" {
			return nil, &ValidationError{Detail: fmt.Sprintf("Ligne %d : product_id manquant", i+1)}
		}
		if item.Quantity < 1 {
			return nil, &ValidationError{Detail: fmt.Sprintf("Ligne %d : quantité invalide", i+1)}
		}
		if item.UnitPrice < 0 {
			return nil, &ValidationError{Detail: fmt.Sprintf("Ligne %d : prix unitaire invalide", i+1)}
		}
		total += float64(item.Quantity) * item.UnitPrice
	}

	order := &models.Order{
		ID:            uuid.NewString(),
		CustomerEmail: in.CustomerEmail,
		CustomerName:  in.CustomerName,
		LineItems:     in.LineItems,
		TotalAmount:   math.Round(total*100) / 100,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	log.Printf("🧾 Commande %s créée (%.2f %s, %d article(s)) pour %s",
		order.ID, order.TotalAmount, Currency, len(order.LineItems), order.CustomerEmail)
	return order, nil
}

// GetOrder retourne une commande persistée
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	return order, err
}

// PaymentResult — réponse renvoyée au client après un paiement réussi
type PaymentResult struct {
	Success   bool    `json:"success"`
	PaymentID string  `json:"payment_id"`
	OrderID   string  `json:"order_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}

// ProcessPayment débite la commande via la passerelle puis réconcilie le stock.
//
// Transitions :
//   - passerelle OK   → "completed" (LWT), puis décréments de stock best-effort
//   - refus passerelle → "failed" (LWT), erreur détaillée pour le client
//   - panne technique  → statut inchangé, erreur générique
//
// La précondition "pending" est revérifiée atomiquement par le store au moment
// de la transition : une seconde tentative concurrente est rejetée.
func (s *OrderService) ProcessPayment(ctx context.Context, orderID, sourceToken string) (*PaymentResult, error) {
	if orderID == "" {
		return nil, &ValidationError{Detail: "order_id manquant"}
	}
	if sourceToken == "" {
		return nil, &ValidationError{Detail: "source_id manquant"}
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		return nil, &InvalidStateError{Status: order.Status}
	}

	// Conversion en centimes — exacte pour tout montant au centime près
	amountCents := int64(math.Round(order.TotalAmount * 100))

	// ✅ Clé d'idempotence fraîche à chaque tentative
	idempotencyKey := uuid.NewString()

	result, err := s.gateway.CreatePayment(ctx, payment.ChargeRequest{
		AmountCents:    amountCents,
		Currency:       Currency,
		IdempotencyKey: idempotencyKey,
		SourceToken:    sourceToken,
		Reference:      order.ID,
	})
	if err != nil {
		var declined *payment.DeclinedError
		if errors.As(err, &declined) {
			applied, ferr := s.orders.FailIfPending(ctx, orderID)
			if ferr != nil {
				log.Printf("❌ Impossible de marquer la commande %s en échec: %v", orderID, ferr)
			} else if !applied {
				log.Printf("⚠️ Commande %s déjà conclue par une autre tentative", orderID)
			}
			return nil, declined
		}
		// Panne technique : on ne touche pas au statut, l'appelant peut retenter
		return nil, err
	}

	applied, err := s.orders.CompleteIfPending(ctx, orderID, result.PaymentID)
	if err != nil {
		return nil, err
	}
	if !applied {
		// Une tentative concurrente a gagné la course : on refuse celle-ci
		log.Printf("⚠️ Transition completed refusée pour %s (déjà conclue)", orderID)
		current, gerr := s.orders.GetByID(ctx, orderID)
		status := models.OrderStatusCompleted
		if gerr == nil {
			status = current.Status
		}
		return nil, &InvalidStateError{Status: status}
	}

	log.Printf("✅ Commande %s payée (%s, %d centimes)", orderID, result.PaymentID, amountCents)

	// Le paiement est acquis : la réconciliation est best-effort,
	// une dérive de stock est préférable à un double échec
	s.reconcileInventory(ctx, *order)

	if s.OnPaymentSucceeded != nil {
		paid := *order
		paid.Status = models.OrderStatusCompleted
		paid.PaymentID = result.PaymentID
		go s.OnPaymentSucceeded(paid)
	}

	return &PaymentResult{
		Success:   true,
		PaymentID: result.PaymentID,
		OrderID:   order.ID,
		Amount:    order.TotalAmount,
		Status:    result.Status,
	}, nil
}

// reconcileInventory décrémente le stock de chaque ligne d'une commande payée.
// Chaque ligne est indépendante : un échec n'interrompt pas les autres,
// et rien ne remonte jamais à l'appelant du paiement.
func (s *OrderService) reconcileInventory(ctx context.Context, order models.Order) {
	for _, item := range order.LineItems {
		if err := s.reconcileLineItem(ctx, item); err != nil {
			log.Printf("⚠️ Réconciliation stock ignorée pour %s (commande %s): %v",
				item.ProductID, order.ID, err)
		}
	}
}

func (s *OrderService) reconcileLineItem(ctx context.Context, item models.OrderLineItem) error {
	merch, err := s.catalog.GetMerch(ctx, item.ProductID)
	if errors.Is(err, store.ErrNotFound) {
		// Produit supprimé entre la commande et le paiement : no-op assumé
		log.Printf("⚠️ Produit %s introuvable, décrément ignoré", item.ProductID)
		return nil
	}
	if err != nil {
		return err
	}

	if merch.HasSizes() {
		if item.Size != nil {
			if _, ok := merch.Sizes[*item.Size]; ok {
				return s.catalog.DecrementSizeStock(ctx, item.ProductID, *item.Size, item.Quantity)
			}
		}
		log.Printf("⚠️ Taille absente du produit %s, décrément ignoré", item.ProductID)
		return nil
	}

	return s.catalog.DecrementStock(ctx, item.ProductID, item.Quantity)
}
