package models

// SalesSettings — réglages de promotion du site (document unique)
type SalesSettings struct {
	SiteWideSale            bool               `json:"site_wide_sale"`
	SiteWideDiscountPercent float64            `json:"site_wide_discount_percent"`
	CategorySales           map[string]float64 `json:"category_sales"`
}

// DiscountFor calcule la remise applicable à un article.
// Priorité : sale_percent de l'article > promo de catégorie > promo site entier.
func (s SalesSettings) DiscountFor(category string, salePercent *float64) float64 {
	if salePercent != nil && *salePercent > 0 {
		return *salePercent
	}
	if d, ok := s.CategorySales[category]; ok && d > 0 {
		return d
	}
	if s.SiteWideSale && s.SiteWideDiscountPercent > 0 {
		return s.SiteWideDiscountPercent
	}
	return 0
}

// ApplyPricing renseigne effective_price et discount_percent sur un article
func (s SalesSettings) ApplyPricing(m *MerchItem) {
	discount := s.DiscountFor(m.Category, m.SalePercent)
	if discount > 100 {
		discount = 100
	}
	m.DiscountPercent = discount
	m.EffectivePrice = m.Price * (1 - discount/100)
}
