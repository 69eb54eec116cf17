package store

import (
	"context"
	"sync"

	"github.com/HaZeModsII/website-design/internal/models"
)

// MemoryStore — implémentation en mémoire de OrderStore et CatalogStore.
// Utilisée par les tests : mêmes sémantiques CAS que la version Scylla
// (transitions conditionnelles, plancher à zéro), protégées par mutex.
type MemoryStore struct {
	mu     sync.RWMutex
	orders map[string]models.Order
	merch  map[string]models.MerchItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orders: make(map[string]models.Order),
		merch:  make(map[string]models.MerchItem),
	}
}

var (
	_ OrderStore   = (*MemoryStore)(nil)
	_ CatalogStore = (*MemoryStore)(nil)
)

// --- OrderStore ---

func (m *MemoryStore) Insert(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = *o
	return nil
}

func (m *MemoryStore) GetByID(_ context.Context, id string) (*models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := o
	cp.LineItems = append([]models.OrderLineItem(nil), o.LineItems...)
	return &cp, nil
}

func (m *MemoryStore) CompleteIfPending(_ context.Context, id, paymentID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || o.Status != models.OrderStatusPending {
		return false, nil
	}
	o.Status = models.OrderStatusCompleted
	o.PaymentID = paymentID
	m.orders[id] = o
	return true, nil
}

func (m *MemoryStore) FailIfPending(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || o.Status != models.OrderStatusPending {
		return false, nil
	}
	o.Status = models.OrderStatusFailed
	m.orders[id] = o
	return true, nil
}

// --- CatalogStore ---

// SeedMerch insère ou remplace un article (helper de test)
func (m *MemoryStore) SeedMerch(item models.MerchItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.merch[item.ID] = item
}

// SetOrderStatus force un statut (helper de test pour les états terminaux)
func (m *MemoryStore) SetOrderStatus(id string, status models.OrderStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.orders[id]; ok {
		o.Status = status
		m.orders[id] = o
	}
}

func (m *MemoryStore) GetMerch(_ context.Context, id string) (*models.MerchItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.merch[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := item
	if item.Sizes != nil {
		cp.Sizes = make(map[string]int, len(item.Sizes))
		for k, v := range item.Sizes {
			cp.Sizes[k] = v
		}
	}
	return &cp, nil
}

func (m *MemoryStore) DecrementStock(_ context.Context, id string, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.merch[id]
	if !ok {
		return ErrNotFound
	}
	item.Stock -= qty
	if item.Stock < 0 {
		item.Stock = 0
	}
	m.merch[id] = item
	return nil
}

func (m *MemoryStore) DecrementSizeStock(_ context.Context, id, size string, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.merch[id]
	if !ok {
		return ErrNotFound
	}
	current, ok := item.Sizes[size]
	if !ok {
		return nil
	}
	next := current - qty
	if next < 0 {
		next = 0
	}
	item.Sizes[size] = next
	m.merch[id] = item
	return nil
}
