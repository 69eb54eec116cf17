package models

import "time"

// MerchItem représente un article de la boutique (vêtements, goodies...).
// Le stock est soit plat (Stock), soit ventilé par taille (Sizes) — jamais les deux.
type MerchItem struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Price           float64        `json:"price"`
	ImageURL        string         `json:"image_url"`
	ImageURLs       []string       `json:"image_urls"`
	Category        string         `json:"category"`
	Stock           int            `json:"stock"`
	Sizes           map[string]int `json:"sizes,omitempty"`
	Featured        bool           `json:"featured"`
	SalePercent     *float64       `json:"sale_percent,omitempty"`
	EffectivePrice  float64        `json:"effective_price"`
	DiscountPercent float64        `json:"discount_percent"`
	CreatedAt       time.Time      `json:"created_at"`
}

// HasSizes indique si l'article gère son stock par taille
func (m *MerchItem) HasSizes() bool {
	return len(m.Sizes) > 0
}

// TotalStock retourne le stock total (plat ou somme des tailles)
func (m *MerchItem) TotalStock() int {
	if !m.HasSizes() {
		return m.Stock
	}
	total := 0
	for _, n := range m.Sizes {
		total += n
	}
	return total
}

// MerchItemUpdate — mise à jour partielle (les champs nil sont ignorés)
type MerchItemUpdate struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Price       *float64        `json:"price"`
	ImageURL    *string         `json:"image_url"`
	ImageURLs   *[]string       `json:"image_urls"`
	Category    *string         `json:"category"`
	Stock       *int            `json:"stock"`
	Sizes       *map[string]int `json:"sizes"`
	Featured    *bool           `json:"featured"`
	SalePercent *float64        `json:"sale_percent"`
}
