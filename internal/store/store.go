package store

import (
	"context"
	"errors"

	"github.com/HaZeModsII/website-design/internal/models"
)

// ErrNotFound est renvoyée quand une commande ou un article n'existe pas
var ErrNotFound = errors.New("ressource introuvable")

// OrderStore — accès au registre des commandes.
// Les transitions de statut sont conditionnelles (compare-and-swap côté base) :
// elles ne s'appliquent que si la commande est encore en "pending", ce qui
// empêche un double débit sur deux tentatives de paiement concurrentes.
type OrderStore interface {
	Insert(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	// CompleteIfPending passe la commande en "completed" avec l'ID de paiement.
	// Retourne false si la commande n'était plus en "pending".
	CompleteIfPending(ctx context.Context, id, paymentID string) (bool, error)
	// FailIfPending passe la commande en "failed".
	FailIfPending(ctx context.Context, id string) (bool, error)
}

// CatalogStore — accès au catalogue merch pour le flux commande/paiement.
// Les décréments de stock ne descendent jamais sous zéro et sont protégés par CAS.
type CatalogStore interface {
	GetMerch(ctx context.Context, id string) (*models.MerchItem, error)
	// DecrementStock décrémente le stock plat de qty, plancher à 0
	DecrementStock(ctx context.Context, id string, qty int) error
	// DecrementSizeStock décrémente le stock d'une taille donnée, plancher à 0.
	// Seule l'entrée de cette taille est modifiée.
	DecrementSizeStock(ctx context.Context, id, size string, qty int) error
}
