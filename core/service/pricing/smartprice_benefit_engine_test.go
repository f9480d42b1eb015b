package pricing

import (
	"testing"

	"smartprice_server/core/domain"
	"smartprice_server/pkg/apperr"
)

func testCards() []domain.CreditCard {
	return []domain.CreditCard{
		{
			Name: "HDFC Bank Millennia",
			Bank: "HDFC Bank",
			Rates: map[domain.SpendCategory]float64{
				domain.CategoryOnline:  0.05,
				domain.CategoryGrocery: 0.025,
				domain.CategoryGeneral: 0.01,
			},
			Description: "5% cashback on online spends",
		},
		{
			Name: "SBI SimplySAVE",
			Bank: "SBI Card",
			Rates: map[domain.SpendCategory]float64{
				domain.CategoryGrocery: 0.10,
				domain.CategoryGeneral: 0.0025,
			},
			Description: "10x reward points on grocery spends",
		},
		{
			Name: "Amazon Pay ICICI",
			Bank: "ICICI Bank",
			Rates: map[domain.SpendCategory]float64{
				domain.CategoryOnline:  0.03,
				domain.CategoryGrocery: 0.02,
				domain.CategoryGeneral: 0.01,
			},
			Description: "3% cashback on Amazon purchases",
		},
	}
}

func TestCalculateBenefit(t *testing.T) {
	engine := NewEngine(testCards())

	tests := []struct {
		name         string
		amount       float64
		card         string
		category     domain.SpendCategory
		wantDiscount float64
	}{
		{
			name:         "online rate applies",
			amount:       10000,
			card:         "HDFC Bank Millennia",
			category:     domain.CategoryOnline,
			wantDiscount: 500,
		},
		{
			name:         "grocery rate applies",
			amount:       1000,
			card:         "SBI SimplySAVE",
			category:     domain.CategoryGrocery,
			wantDiscount: 100,
		},
		{
			name:         "unmapped category falls back to general rate",
			amount:       2000,
			card:         "SBI SimplySAVE",
			category:     domain.CategoryOnline,
			wantDiscount: 5, // 0.25% general rate
		},
		{
			name:         "unknown card yields zero discount",
			amount:       5000,
			card:         "Nonexistent Platinum",
			category:     domain.CategoryOnline,
			wantDiscount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.CalculateBenefit(tt.amount, tt.card, tt.category)
			if got.Discount != tt.wantDiscount {
				t.Errorf("CalculateBenefit(%v, %q, %q).Discount = %v, want %v",
					tt.amount, tt.card, tt.category, got.Discount, tt.wantDiscount)
			}
		})
	}
}

func TestCalculateBenefitUnknownCardDescription(t *testing.T) {
	engine := NewEngine(testCards())

	got := engine.CalculateBenefit(1000, "Mystery Card", domain.CategoryGeneral)
	if got.Discount != 0 || got.Rate != 0 {
		t.Errorf("unknown card: got discount=%v rate=%v, want zeros", got.Discount, got.Rate)
	}
	if got.Description == "" {
		t.Error("unknown card should carry an explanatory description")
	}
}

func TestCalculateBenefitInvalidCategoryPanics(t *testing.T) {
	engine := NewEngine(testCards())

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for category outside the enumerated set")
		}
		appErr, ok := r.(*apperr.AppError)
		if !ok {
			t.Fatalf("panic value = %T, want *apperr.AppError", r)
		}
		if appErr.Code != apperr.CodeInvariant {
			t.Errorf("panic code = %q, want %q", appErr.Code, apperr.CodeInvariant)
		}
	}()
	engine.CalculateBenefit(1000, "HDFC Bank Millennia", domain.SpendCategory("fuel"))
}
