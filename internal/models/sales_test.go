package models

import "testing"

func fptr(f float64) *float64 { return &f }

func TestDiscountFor_Precedence(t *testing.T) {
	settings := SalesSettings{
		SiteWideSale:            true,
		SiteWideDiscountPercent: 10,
		CategorySales:           map[string]float64{"apparel": 20},
	}

	// La remise article prime sur tout
	if d := settings.DiscountFor("apparel", fptr(30)); d != 30 {
		t.Fatalf("expected item discount 30, got %v", d)
	}
	// Puis la remise de catégorie
	if d := settings.DiscountFor("apparel", nil); d != 20 {
		t.Fatalf("expected category discount 20, got %v", d)
	}
	// Puis la remise site entier
	if d := settings.DiscountFor("stickers", nil); d != 10 {
		t.Fatalf("expected site-wide discount 10, got %v", d)
	}
}

func TestDiscountFor_NoSale(t *testing.T) {
	settings := SalesSettings{}
	if d := settings.DiscountFor("apparel", nil); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
	// site_wide_sale désactivé : le pourcentage est ignoré
	settings.SiteWideDiscountPercent = 25
	if d := settings.DiscountFor("apparel", nil); d != 0 {
		t.Fatalf("expected 0 when sale disabled, got %v", d)
	}
}

func TestApplyPricing(t *testing.T) {
	settings := SalesSettings{SiteWideSale: true, SiteWideDiscountPercent: 25}

	m := MerchItem{Price: 40, Category: "apparel"}
	settings.ApplyPricing(&m)
	if m.EffectivePrice != 30 {
		t.Fatalf("expected effective price 30, got %v", m.EffectivePrice)
	}
	if m.DiscountPercent != 25 {
		t.Fatalf("expected discount 25, got %v", m.DiscountPercent)
	}
}

func TestApplyPricing_CappedAt100(t *testing.T) {
	settings := SalesSettings{}
	m := MerchItem{Price: 40, SalePercent: fptr(150)}
	settings.ApplyPricing(&m)
	if m.EffectivePrice != 0 {
		t.Fatalf("expected free item at 100%% discount, got %v", m.EffectivePrice)
	}
	if m.DiscountPercent != 100 {
		t.Fatalf("expected capped discount 100, got %v", m.DiscountPercent)
	}
}
