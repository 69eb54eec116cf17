package services

import (
	"context"
	"errors"
	"testing"

	"github.com/HaZeModsII/website-design/internal/models"
	"github.com/HaZeModsII/website-design/internal/payment"
	"github.com/HaZeModsII/website-design/internal/store"
)

// fakeGateway enregistre chaque requête et renvoie une réponse scriptée
type fakeGateway struct {
	requests []payment.ChargeRequest
	result   *payment.ChargeResult
	err      error
}

func (f *fakeGateway) CreatePayment(_ context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func setup(t *testing.T, gw *fakeGateway) (*OrderService, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	if gw.result == nil && gw.err == nil {
		gw.result = &payment.ChargeResult{PaymentID: "pay_123", Status: "COMPLETED"}
	}
	return NewOrderService(mem, mem, gw), mem
}

func strPtr(s string) *string { return &s }

func TestCreateOrder_TotalAndStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t, &fakeGateway{})

	order, err := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerEmail: "rider@example.com",
		CustomerName:  "Jo Rider",
		LineItems: []models.OrderLineItem{
			{ProductID: "m1", ProductName: "Tee", Quantity: 2, UnitPrice: 10.25},
			{ProductID: "m2", ProductName: "Cap", Quantity: 1, UnitPrice: 5},
		},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.Status != models.OrderStatusPending {
		t.Fatalf("expected pending, got %s", order.Status)
	}
	if order.TotalAmount != 25.50 {
		t.Fatalf("expected total 25.50, got %v", order.TotalAmount)
	}
	if order.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t, &fakeGateway{})

	cases := []struct {
		name  string
		items []models.OrderLineItem
	}{
		{"empty", nil},
		{"missing product id", []models.OrderLineItem{{Quantity: 1, UnitPrice: 1}}},
		{"zero quantity", []models.OrderLineItem{{ProductID: "m1", Quantity: 0, UnitPrice: 1}}},
		{"negative price", []models.OrderLineItem{{ProductID: "m1", Quantity: 1, UnitPrice: -1}}},
	}
	for _, tc := range cases {
		_, err := svc.CreateOrder(ctx, CreateOrderInput{
			CustomerEmail: "rider@example.com",
			CustomerName:  "Jo",
			LineItems:     tc.items,
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
	}
}

func TestProcessPayment_Success(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{}
	svc, mem := setup(t, gw)

	order, err := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerEmail: "rider@example.com",
		CustomerName:  "Jo",
		LineItems:     []models.OrderLineItem{{ProductID: "m1", Quantity: 2, UnitPrice: 12.75}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	result, err := svc.ProcessPayment(ctx, order.ID, "tok_visa")
	if err != nil {
		t.Fatalf("process payment: %v", err)
	}
	if !result.Success || result.PaymentID != "pay_123" || result.OrderID != order.ID {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Amount != 25.50 {
		t.Fatalf("expected amount 25.50, got %v", result.Amount)
	}

	// Montant passerelle en centimes, exact
	if len(gw.requests) != 1 {
		t.Fatalf("expected 1 gateway call, got %d", len(gw.requests))
	}
	req := gw.requests[0]
	if req.AmountCents != 2550 {
		t.Fatalf("expected 2550 cents, got %d", req.AmountCents)
	}
	if req.Currency != Currency {
		t.Fatalf("expected currency %s, got %s", Currency, req.Currency)
	}
	if req.IdempotencyKey == "" {
		t.Fatalf("expected idempotency key")
	}

	stored, _ := mem.GetByID(ctx, order.ID)
	if stored.Status != models.OrderStatusCompleted {
		t.Fatalf("expected completed, got %s", stored.Status)
	}
	if stored.PaymentID != "pay_123" {
		t.Fatalf("expected payment id recorded, got %q", stored.PaymentID)
	}
}

func TestProcessPayment_FreshIdempotencyKeyPerAttempt(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{}
	svc, mem := setup(t, gw)

	order, _ := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerEmail: "rider@example.com",
		CustomerName:  "Jo",
		LineItems:     []models.OrderLineItem{{ProductID: "m1", Quantity: 1, UnitPrice: 10}},
	})

	if _, err := svc.ProcessPayment(ctx, order.ID, "tok_visa"); err != nil {
		t.Fatalf("first attempt: %v", err)
	}
	// Retente sur la même commande remise artificiellement en pending
	mem.SetOrderStatus(order.ID, models.OrderStatusPending)
	if _, err := svc.ProcessPayment(ctx, order.ID, "tok_visa"); err != nil {
		t.Fatalf("second attempt: %v", err)
	}

	if len(gw.requests) != 2 {
		t.Fatalf("expected 2 gateway calls, got %d", len(gw.requests))
	}
	if gw.requests[0].IdempotencyKey == gw.requests[1].IdempotencyKey {
		t.Fatalf("idempotency key reused across attempts")
	}
}

func TestProcessPayment_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t, &fakeGateway{})

	_, err := svc.ProcessPayment(ctx, "missing", "tok_visa")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestProcessPayment_NonPendingRejected(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{}
	svc, mem := setup(t, gw)

	order, _ := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerEmail: "rider@example.com",
		CustomerName:  "Jo",
		LineItems:     []models.OrderLineItem{{ProductID: "m1", Quantity: 1, UnitPrice: 10}},
	})
	mem.SetOrderStatus(order.ID, models.OrderStatusCompleted)

	_, err := svc.ProcessPayment(ctx, order.ID, "tok_visa")
	var state *InvalidStateError
	if !errors.As(err, &state) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}
	if len(gw.requests) != 0 {
		t.Fatalf("gateway must not be called for a concluded order")
	}
	stored, _ := mem.GetByID(ctx, order.ID)
	if stored.Status != models.OrderStatusCompleted {
		t.Fatalf("status must not change, got %s", stored.Status)
	}
}

func TestProcessPayment_DeclinedMarksFailed(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{err: &payment.DeclinedError{Detail: "Card declined"}}
	svc, mem := setup(t, gw)

	order, _ := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerEmail: "rider@example.com",
		CustomerName:  "Jo",
		LineItems:     []models.OrderLineItem{{ProductID: "m1", Quantity: 1, UnitPrice: 10}},
	})

	_, err := svc.ProcessPayment(ctx, order.ID, "tok_bad")
	var declined *payment.DeclinedError
	if !errors.As(err, &declined) {
		t.Fatalf("expected DeclinedError, got %v", err)
	}
	if declined.Detail != "Card declined" {
		t.Fatalf("unexpected detail: %q", declined.Detail)
	}

	stored, _ := mem.GetByID(ctx, order.ID)
	if stored.Status != models.OrderStatusFailed {
		t.Fatalf("expected failed, got %s", stored.Status)
	}
}

func TestProcessPayment_TechnicalErrorLeavesPending(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{err: errors.New("connection reset")}
	svc, mem := setup(t, gw)

	order, _ := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerEmail: "rider@example.com",
		CustomerName:  "Jo",
		LineItems:     []models.OrderLineItem{{ProductID: "m1", Quantity: 1, UnitPrice: 10}},
	})

	_, err := svc.ProcessPayment(ctx, order.ID, "tok_visa")
	if err == nil {
		t.Fatalf("expected error")
	}
	var declined *payment.DeclinedError
	if errors.As(err, &declined) {
		t.Fatalf("technical failure must not be a decline")
	}

	// Le statut n'a pas bougé, l'appelant peut retenter
	stored, _ := mem.GetByID(ctx, order.ID)
	if stored.Status != models.OrderStatusPending {
		t.Fatalf("expected pending, got %s", stored.Status)
	}
}

func TestProcessPayment_DecrementsSizedStock(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{}
	svc, mem := setup(t, gw)

	mem.SeedMerch(models.MerchItem{
		ID:    "tee",
		Name:  "Team Tee",
		Sizes: map[string]int{"M": 5, "L": 4},
	})

	order, _ := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerEmail: "rider@example.com",
		CustomerName:  "Jo",
		LineItems: []models.OrderLineItem{
			{ProductID: "tee", Size: strPtr("M"), Quantity: 3, UnitPrice: 20},
		},
	})
	if _, err := svc.ProcessPayment(ctx, order.ID, "tok_visa"); err != nil {
		t.Fatalf("process payment: %v", err)
	}

	item, _ := mem.GetMerch(ctx, "tee")
	if item.Sizes["M"] != 2 {
		t.Fatalf("expected M=2, got %d", item.Sizes["M"])
	}
	if item.Sizes["L"] != 4 {
		t.Fatalf("other sizes must not change, got L=%d", item.Sizes["L"])
	}
}

func TestProcessPayment_FlatStockFlooredAtZero(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{}
	svc, mem := setup(t, gw)

	mem.SeedMerch(models.MerchItem{ID: "cap", Name: "Cap", Stock: 2})

	order, _ := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerEmail: "rider@example.com",
		CustomerName:  "Jo",
		LineItems:     []models.OrderLineItem{{ProductID: "cap", Quantity: 5, UnitPrice: 15}},
	})
	if _, err := svc.ProcessPayment(ctx, order.ID, "tok_visa"); err != nil {
		t.Fatalf("process payment: %v", err)
	}

	item, _ := mem.GetMerch(ctx, "cap")
	if item.Stock != 0 {
		t.Fatalf("expected stock floored at 0, got %d", item.Stock)
	}
}

func TestProcessPayment_MissingProductIsNoOp(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{}
	svc, mem := setup(t, gw)

	order, _ := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerEmail: "rider@example.com",
		CustomerName:  "Jo",
		LineItems:     []models.OrderLineItem{{ProductID: "gone", Quantity: 1, UnitPrice: 30}},
	})

	// Le paiement réussit même si le produit a disparu du catalogue
	result, err := svc.ProcessPayment(ctx, order.ID, "tok_visa")
	if err != nil {
		t.Fatalf("process payment: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success")
	}
	stored, _ := mem.GetByID(ctx, order.ID)
	if stored.Status != models.OrderStatusCompleted {
		t.Fatalf("expected completed, got %s", stored.Status)
	}
}

func TestProcessPayment_UnknownSizeIsNoOp(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{}
	svc, mem := setup(t, gw)

	mem.SeedMerch(models.MerchItem{
		ID:    "tee",
		Name:  "Team Tee",
		Sizes: map[string]int{"M": 5},
	})

	order, _ := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerEmail: "rider@example.com",
		CustomerName:  "Jo",
		LineItems: []models.OrderLineItem{
			{ProductID: "tee", Size: strPtr("XXL"), Quantity: 1, UnitPrice: 20},
		},
	})
	if _, err := svc.ProcessPayment(ctx, order.ID, "tok_visa"); err != nil {
		t.Fatalf("process payment: %v", err)
	}

	item, _ := mem.GetMerch(ctx, "tee")
	if item.Sizes["M"] != 5 {
		t.Fatalf("known sizes must not change, got M=%d", item.Sizes["M"])
	}
}
