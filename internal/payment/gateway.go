package payment

import "context"

// ChargeRequest — demande de débit envoyée à la passerelle de paiement.
// Le montant est exprimé en centimes, la clé d'idempotence est générée
// fraîche à chaque tentative.
type ChargeRequest struct {
	AmountCents    int64
	Currency       string
	IdempotencyKey string
	SourceToken    string
	Reference      string // ID de commande, pour la traçabilité côté passerelle
}

// ChargeResult — réponse de la passerelle en cas de succès
type ChargeResult struct {
	PaymentID string
	Status    string
}

// DeclinedError — la passerelle a refusé le paiement (carte refusée,
// fonds insuffisants...). Le détail est montrable au client.
type DeclinedError struct {
	Detail string
}

func (e *DeclinedError) Error() string {
	return e.Detail
}

// Gateway abstrait la passerelle de paiement externe.
// Toute erreur autre que *DeclinedError est traitée comme une panne
// technique (réseau, sérialisation) et ne doit pas être exposée au client.
type Gateway interface {
	CreatePayment(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
