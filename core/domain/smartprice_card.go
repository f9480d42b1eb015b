package domain

import "fmt"

// SpendCategory selects which reward rate applies to a purchase.
type SpendCategory string

const (
	CategoryGeneral SpendCategory = "general" // Default rate for uncategorized spend
	CategoryOnline  SpendCategory = "online"  // Online shopping (products, flights)
	CategoryGrocery SpendCategory = "grocery" // Grocery and quick-commerce
)

// ValidCategory reports whether c is one of the enumerated spend categories.
func ValidCategory(c SpendCategory) bool {
	switch c {
	case CategoryGeneral, CategoryOnline, CategoryGrocery:
		return true
	}
	return false
}

func (c SpendCategory) String() string {
	return string(c)
}

// CreditCard is one entry of the benefit table. Loaded once at startup,
// never mutated afterwards.
type CreditCard struct {
	Name        string                    `json:"name"`
	Bank        string                    `json:"bank"`
	Rates       map[SpendCategory]float64 `json:"rates"`
	AnnualFee   float64                   `json:"annual_fee"`
	Description string                    `json:"description"`
}

// RateFor returns the reward rate for the given category, falling back to
// the card's general rate when the category is unmapped.
func (c *CreditCard) RateFor(category SpendCategory) float64 {
	if rate, ok := c.Rates[category]; ok {
		return rate
	}
	return c.Rates[CategoryGeneral]
}

// Benefit is the outcome of applying one card to one amount.
type Benefit struct {
	Discount    float64 `json:"discount"`
	Rate        float64 `json:"rate"`
	Description string  `json:"description"`
}

// NoCardName is the pseudo-card used when the caller supplies no cards.
// It guarantees every offer has a defined effective price.
const NoCardName = "No Card"

// ZeroBenefit is the benefit applied for unknown cards and the pseudo-card.
func ZeroBenefit() Benefit {
	return Benefit{Discount: 0, Rate: 0, Description: "No benefits available"}
}

// ErrInvalidCategory signals an integration bug: a category tag outside the
// enumerated set reached the pricing core.
func ErrInvalidCategory(c SpendCategory) error {
	return fmt.Errorf("invalid spend category: %q", c)
}
