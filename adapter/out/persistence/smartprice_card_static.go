package persistence

import (
	"context"

	"smartprice_server/core/domain"
	"smartprice_server/core/port/out"
)

// StaticCardRepository serves the built-in card catalog. It is the default
// source when no database is configured.
type StaticCardRepository struct{}

var _ out.CardRepository = (*StaticCardRepository)(nil)

func NewStaticCardRepository() *StaticCardRepository {
	return &StaticCardRepository{}
}

var defaultCards = []domain.CreditCard{
	{
		Name: "HDFC Bank Millennia",
		Bank: "HDFC Bank",
		Rates: map[domain.SpendCategory]float64{
			domain.CategoryOnline:  0.05,
			domain.CategoryGrocery: 0.025,
			domain.CategoryGeneral: 0.01,
		},
		AnnualFee:   1000,
		Description: "5% cashback on Amazon, Flipkart and other online spends",
	},
	{
		Name: "SBI SimplySAVE",
		Bank: "SBI Card",
		Rates: map[domain.SpendCategory]float64{
			domain.CategoryGrocery: 0.10,
			domain.CategoryGeneral: 0.0025,
		},
		AnnualFee:   499,
		Description: "10x reward points on groceries, dining and movies",
	},
	{
		Name: "Amazon Pay ICICI",
		Bank: "ICICI Bank",
		Rates: map[domain.SpendCategory]float64{
			domain.CategoryOnline:  0.03,
			domain.CategoryGrocery: 0.02,
			domain.CategoryGeneral: 0.01,
		},
		AnnualFee:   0,
		Description: "3% back on Amazon purchases, lifetime free",
	},
}

func (r *StaticCardRepository) LoadCards(ctx context.Context) ([]domain.CreditCard, error) {
	cards := make([]domain.CreditCard, len(defaultCards))
	copy(cards, defaultCards)
	return cards, nil
}
