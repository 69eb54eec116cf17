package store

import (
	"context"
	"errors"
	"testing"

	"github.com/HaZeModsII/website-design/internal/models"
)

func TestCompleteIfPending_SingleWinner(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()

	mem.Insert(ctx, &models.Order{ID: "o1", Status: models.OrderStatusPending})

	applied, err := mem.CompleteIfPending(ctx, "o1", "pay_1")
	if err != nil || !applied {
		t.Fatalf("first transition should apply, got applied=%v err=%v", applied, err)
	}

	// Deuxième tentative : la précondition pending n'est plus vraie
	applied, err = mem.CompleteIfPending(ctx, "o1", "pay_2")
	if err != nil || applied {
		t.Fatalf("second transition must be refused, got applied=%v err=%v", applied, err)
	}

	o, _ := mem.GetByID(ctx, "o1")
	if o.PaymentID != "pay_1" {
		t.Fatalf("first payment id must win, got %q", o.PaymentID)
	}
}

func TestFailIfPending(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()

	mem.Insert(ctx, &models.Order{ID: "o1", Status: models.OrderStatusPending})

	applied, _ := mem.FailIfPending(ctx, "o1")
	if !applied {
		t.Fatalf("expected transition to apply")
	}
	o, _ := mem.GetByID(ctx, "o1")
	if o.Status != models.OrderStatusFailed {
		t.Fatalf("expected failed, got %s", o.Status)
	}

	// failed est terminal, on ne peut plus basculer en completed
	applied, _ = mem.CompleteIfPending(ctx, "o1", "pay_1")
	if applied {
		t.Fatalf("completed after failed must be refused")
	}
}

func TestGetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()

	_, err := mem.GetByID(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	_, err = mem.GetMerch(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for merch, got %v", err)
	}
}

func TestDecrementStock_Floor(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()

	mem.SeedMerch(models.MerchItem{ID: "cap", Stock: 3})

	if err := mem.DecrementStock(ctx, "cap", 10); err != nil {
		t.Fatalf("decrement: %v", err)
	}
	item, _ := mem.GetMerch(ctx, "cap")
	if item.Stock != 0 {
		t.Fatalf("expected floor at 0, got %d", item.Stock)
	}
}

func TestDecrementSizeStock(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()

	mem.SeedMerch(models.MerchItem{ID: "tee", Sizes: map[string]int{"M": 2, "L": 7}})

	if err := mem.DecrementSizeStock(ctx, "tee", "M", 5); err != nil {
		t.Fatalf("decrement: %v", err)
	}
	item, _ := mem.GetMerch(ctx, "tee")
	if item.Sizes["M"] != 0 {
		t.Fatalf("expected M floored at 0, got %d", item.Sizes["M"])
	}
	if item.Sizes["L"] != 7 {
		t.Fatalf("L must not change, got %d", item.Sizes["L"])
	}

	// Taille inconnue : no-op silencieux
	if err := mem.DecrementSizeStock(ctx, "tee", "XXL", 1); err != nil {
		t.Fatalf("unknown size must be a no-op, got %v", err)
	}
}

func TestGetMerch_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()

	mem.SeedMerch(models.MerchItem{ID: "tee", Sizes: map[string]int{"M": 2}})

	item, _ := mem.GetMerch(ctx, "tee")
	item.Sizes["M"] = 99

	fresh, _ := mem.GetMerch(ctx, "tee")
	if fresh.Sizes["M"] != 2 {
		t.Fatalf("store must not share its sizes map, got %d", fresh.Sizes["M"])
	}
}
