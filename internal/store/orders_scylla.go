package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gocql/gocql"

	"github.com/HaZeModsII/website-design/internal/models"
)

// ScyllaOrders — registre des commandes sur ScyllaDB (keyspace orders).
// Les items sont stockés en JSON dans la ligne, la commande est le seul
// propriétaire de ses lignes.
type ScyllaOrders struct {
	session *gocql.Session
}

func NewScyllaOrders(session *gocql.Session) *ScyllaOrders {
	return &ScyllaOrders{session: session}
}

var _ OrderStore = (*ScyllaOrders)(nil)

func (s *ScyllaOrders) Insert(ctx context.Context, o *models.Order) error {
	itemsJSON, err := json.Marshal(o.LineItems)
	if err != nil {
		return fmt.Errorf("sérialisation items: %w", err)
	}

	query := `INSERT INTO orders (id, customer_email, customer_name, items, total_amount, status, payment_id, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	return s.session.Query(query,
		o.ID, o.CustomerEmail, o.CustomerName, string(itemsJSON),
		o.TotalAmount, string(o.Status), o.PaymentID, o.CreatedAt,
	).WithContext(ctx).Exec()
}

func (s *ScyllaOrders) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var (
		o         models.Order
		itemsJSON string
		status    string
	)

	query := `SELECT id, customer_email, customer_name, items, total_amount, status, payment_id, created_at
	          FROM orders WHERE id = ?`

	err := s.session.Query(query, id).WithContext(ctx).Scan(
		&o.ID, &o.CustomerEmail, &o.CustomerName, &itemsJSON,
		&o.TotalAmount, &status, &o.PaymentID, &o.CreatedAt,
	)
	if err == gocql.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	o.Status = models.OrderStatus(status)
	if itemsJSON != "" {
		if err := json.Unmarshal([]byte(itemsJSON), &o.LineItems); err != nil {
			return nil, fmt.Errorf("désérialisation items: %w", err)
		}
	}
	return &o, nil
}

// CompleteIfPending — transition LWT "pending" → "completed".
// La condition IF est évaluée côté Scylla : deux tentatives concurrentes
// ne peuvent pas toutes les deux l'emporter.
func (s *ScyllaOrders) CompleteIfPending(ctx context.Context, id, paymentID string) (bool, error) {
	query := `UPDATE orders SET status = ?, payment_id = ? WHERE id = ? IF status = ?`

	prev := make(map[string]interface{})
	applied, err := s.session.Query(query,
		string(models.OrderStatusCompleted), paymentID, id, string(models.OrderStatusPending),
	).WithContext(ctx).MapScanCAS(prev)
	if err != nil {
		return false, err
	}
	return applied, nil
}

// FailIfPending — transition LWT "pending" → "failed"
func (s *ScyllaOrders) FailIfPending(ctx context.Context, id string) (bool, error) {
	query := `UPDATE orders SET status = ? WHERE id = ? IF status = ?`

	prev := make(map[string]interface{})
	applied, err := s.session.Query(query,
		string(models.OrderStatusFailed), id, string(models.OrderStatusPending),
	).WithContext(ctx).MapScanCAS(prev)
	if err != nil {
		return false, err
	}
	return applied, nil
}
