package payment

import (
	"context"
	"errors"
	"log"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

// StripeGateway implémente Gateway au-dessus de Stripe.
// Le token source est confirmé immédiatement (pas de flux client secret ici,
// le front envoie un token de paiement déjà collecté).
type StripeGateway struct{}

func NewStripeGateway() *StripeGateway {
	return &StripeGateway{}
}

var _ Gateway = (*StripeGateway)(nil)

func (g *StripeGateway) CreatePayment(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountCents),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.SourceToken),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
		Metadata: map[string]string{
			"order_id": req.Reference,
		},
	}
	params.Context = ctx
	// ✅ Clé d'idempotence : un renvoi de la même requête ne double pas le débit
	params.IdempotencyKey = stripe.String(req.IdempotencyKey)

	intent, err := paymentintent.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			detail := stripeErr.Msg
			if detail == "" {
				detail = "Paiement refusé par la banque"
			}
			log.Printf("❌ Paiement refusé pour la commande %s: %s", req.Reference, detail)
			return nil, &DeclinedError{Detail: detail}
		}
		return nil, err
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		log.Printf("❌ PaymentIntent %s non abouti (statut %s)", intent.ID, intent.Status)
		return nil, &DeclinedError{Detail: "Le paiement n'a pas abouti (" + string(intent.Status) + ")"}
	}

	log.Printf("💳 PaymentIntent confirmé : %s (%d centimes) pour commande %s",
		intent.ID, req.AmountCents, req.Reference)

	return &ChargeResult{
		PaymentID: intent.ID,
		Status:    string(intent.Status),
	}, nil
}
