package pricing

import (
	"testing"

	"smartprice_server/core/domain"
)

func TestBuildCartPreservesInsertionOrder(t *testing.T) {
	engine := NewEngine(testCards())

	items := []domain.ItemOffers{
		{
			Item: "vegetables",
			Offers: []domain.Offer{
				{Title: "Mixed Vegetables 1kg", Platform: "Zepto", PriceText: "₹120"},
			},
		},
		{
			Item: "milk",
			Offers: []domain.Offer{
				{Title: "Amul Taaza 500ml", Platform: "Blinkit", PriceText: "₹34"},
				{Title: "Amul Taaza 500ml", Platform: "Zepto", PriceText: "₹33"},
			},
		},
		{
			Item: "bread",
			Offers: []domain.Offer{
				{Title: "Brown Bread 400g", Platform: "Blinkit", PriceText: "₹45"},
			},
		},
	}

	cart, savings := engine.BuildCart(items, []string{"SBI SimplySAVE"})

	want := []string{"vegetables", "milk", "bread"}
	if len(cart.Items) != len(want) {
		t.Fatalf("len(cart.Items) = %d, want %d", len(cart.Items), len(want))
	}
	for i, item := range want {
		if cart.Items[i].Item != item {
			t.Errorf("cart.Items[%d].Item = %q, want %q (requested order, not price order)",
				i, cart.Items[i].Item, item)
		}
	}

	// 10% grocery rate on 120 + 33 + 45
	wantSavings := 12.0 + 3.3 + 4.5
	if diff := savings - wantSavings; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("savings = %v, want %v", savings, wantSavings)
	}
	if cart.TotalSavings() != savings {
		t.Errorf("TotalSavings() = %v, want %v", cart.TotalSavings(), savings)
	}

	wantCost := (120 - 12.0) + (33 - 3.3) + (45 - 4.5)
	if diff := cart.TotalCost() - wantCost; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("TotalCost() = %v, want %v", cart.TotalCost(), wantCost)
	}
}

func TestBuildCartSelectsCheapestEffectiveOffer(t *testing.T) {
	engine := NewEngine(testCards())

	items := []domain.ItemOffers{
		{
			Item: "milk",
			Offers: []domain.Offer{
				{Title: "Amul Taaza 500ml", Platform: "Blinkit", PriceText: "₹34"},
				{Title: "Amul Taaza 500ml", Platform: "Zepto", PriceText: "₹33"},
			},
		},
	}

	cart, _ := engine.BuildCart(items, nil)

	if len(cart.Items) != 1 {
		t.Fatalf("len(cart.Items) = %d, want 1", len(cart.Items))
	}
	if got := cart.Items[0].Selected.Offer.Platform; got != "Zepto" {
		t.Errorf("selected platform = %q, want Zepto", got)
	}
	if cart.Items[0].Quantity != 1 {
		t.Errorf("quantity = %d, want default 1", cart.Items[0].Quantity)
	}
}

func TestBuildCartOmitsItemsWithoutOffers(t *testing.T) {
	engine := NewEngine(testCards())

	items := []domain.ItemOffers{
		{Item: "milk", Offers: []domain.Offer{
			{Title: "Amul Taaza 500ml", Platform: "Blinkit", PriceText: "₹34"},
		}},
		{Item: "caviar", Offers: nil},
		{Item: "truffles", Offers: []domain.Offer{
			{Title: "Truffles", Platform: "Blinkit", PriceText: "contact store"},
		}},
	}

	cart, _ := engine.BuildCart(items, []string{"SBI SimplySAVE"})

	if len(cart.Items) != 1 {
		t.Fatalf("len(cart.Items) = %d, want 1 (unfilled items omitted)", len(cart.Items))
	}
	if cart.Items[0].Item != "milk" {
		t.Errorf("cart.Items[0].Item = %q, want milk", cart.Items[0].Item)
	}
}

func TestBuildCartEmptyInput(t *testing.T) {
	engine := NewEngine(testCards())

	cart, savings := engine.BuildCart(nil, []string{"SBI SimplySAVE"})

	if len(cart.Items) != 0 || savings != 0 {
		t.Errorf("empty input: cart=%+v savings=%v, want empty cart and 0", cart, savings)
	}
}

func TestPriceRange(t *testing.T) {
	offers := []domain.AnalyzedOffer{
		{OriginalPrice: 61499},
		{OriginalPrice: 62999},
		{OriginalPrice: 58000},
	}

	stats := PriceRange(offers)

	if stats.Min != 58000 || stats.Max != 62999 {
		t.Errorf("min/max = %v/%v, want 58000/62999", stats.Min, stats.Max)
	}
	wantAvg := (61499.0 + 62999.0 + 58000.0) / 3
	if stats.Average != wantAvg {
		t.Errorf("average = %v, want %v", stats.Average, wantAvg)
	}
	if stats.Currency != "INR" {
		t.Errorf("currency = %q, want INR", stats.Currency)
	}

	empty := PriceRange(nil)
	if empty.Min != 0 || empty.Max != 0 || empty.Average != 0 {
		t.Errorf("empty input should yield zero stats, got %+v", empty)
	}
}
