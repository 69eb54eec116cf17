package store

import (
	"context"
	"fmt"

	"github.com/gocql/gocql"

	"github.com/HaZeModsII/website-design/internal/models"
)

// Nombre max de tentatives CAS avant d'abandonner un décrément
const casMaxRetries = 5

// ScyllaCatalog — accès au catalogue merch sur ScyllaDB (keyspace catalog).
// Les décréments de stock passent par des LWT conditionnées sur la valeur
// lue, relues en cas de conflit avec une autre commande.
type ScyllaCatalog struct {
	session *gocql.Session
}

func NewScyllaCatalog(session *gocql.Session) *ScyllaCatalog {
	return &ScyllaCatalog{session: session}
}

var _ CatalogStore = (*ScyllaCatalog)(nil)

func (s *ScyllaCatalog) GetMerch(ctx context.Context, id string) (*models.MerchItem, error) {
	var (
		m           models.MerchItem
		salePercent float64
	)

	query := `SELECT id, name, description, price, image_url, image_urls, category,
	                 stock, sizes, featured, sale_percent, created_at
	          FROM merch WHERE id = ?`

	err := s.session.Query(query, id).WithContext(ctx).Scan(
		&m.ID, &m.Name, &m.Description, &m.Price, &m.ImageURL, &m.ImageURLs,
		&m.Category, &m.Stock, &m.Sizes, &m.Featured, &salePercent, &m.CreatedAt,
	)
	if err == gocql.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if salePercent > 0 {
		m.SalePercent = &salePercent
	}
	return &m, nil
}

func (s *ScyllaCatalog) DecrementStock(ctx context.Context, id string, qty int) error {
	for attempt := 0; attempt < casMaxRetries; attempt++ {
		var current int
		err := s.session.Query(`SELECT stock FROM merch WHERE id = ?`, id).
			WithContext(ctx).Scan(&current)
		if err == gocql.ErrNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		next := current - qty
		if next < 0 {
			next = 0
		}

		prev := make(map[string]interface{})
		applied, err := s.session.Query(
			`UPDATE merch SET stock = ? WHERE id = ? IF stock = ?`,
			next, id, current,
		).WithContext(ctx).MapScanCAS(prev)
		if err != nil {
			return err
		}
		if applied {
			return nil
		}
		// Quelqu'un d'autre a modifié le stock entre-temps, on relit
	}
	return fmt.Errorf("décrément stock %s: trop de conflits CAS", id)
}

func (s *ScyllaCatalog) DecrementSizeStock(ctx context.Context, id, size string, qty int) error {
	for attempt := 0; attempt < casMaxRetries; attempt++ {
		var sizes map[string]int
		err := s.session.Query(`SELECT sizes FROM merch WHERE id = ?`, id).
			WithContext(ctx).Scan(&sizes)
		if err == gocql.ErrNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		current, ok := sizes[size]
		if !ok {
			// Taille disparue entre la lecture et le décrément : no-op
			return nil
		}

		next := current - qty
		if next < 0 {
			next = 0
		}

		prev := make(map[string]interface{})
		applied, err := s.session.Query(
			`UPDATE merch SET sizes[?] = ? WHERE id = ? IF sizes[?] = ?`,
			size, next, id, size, current,
		).WithContext(ctx).MapScanCAS(prev)
		if err != nil {
			return err
		}
		if applied {
			return nil
		}
	}
	return fmt.Errorf("décrément taille %s/%s: trop de conflits CAS", id, size)
}
