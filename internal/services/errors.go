package services

import (
	"errors"
	"fmt"

	"github.com/HaZeModsII/website-design/internal/models"
)

// ErrOrderNotFound — la commande demandée n'existe pas
var ErrOrderNotFound = errors.New("commande introuvable")

// ValidationError — entrée malformée (ligne de commande sans prix, quantité nulle...)
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// InvalidStateError — tentative de paiement sur une commande qui n'est
// plus en attente. Refusée pour éviter un double débit.
type InvalidStateError struct {
	Status models.OrderStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("la commande n'est plus en attente de paiement (statut %s)", e.Status)
}
