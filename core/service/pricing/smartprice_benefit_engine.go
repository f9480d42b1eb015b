package pricing

import (
	"fmt"

	"smartprice_server/core/domain"
	"smartprice_server/pkg/apperr"
)

// =============================================================================
// Benefit Engine
// =============================================================================

// Engine resolves card benefits against a fixed credit card table. The
// table is set at construction and read-only afterwards, so one Engine is
// safe for unlimited concurrent readers.
type Engine struct {
	cards map[string]domain.CreditCard
	order []string
}

// NewEngine creates a benefit engine from the given card table.
func NewEngine(cards []domain.CreditCard) *Engine {
	e := &Engine{
		cards: make(map[string]domain.CreditCard, len(cards)),
		order: make([]string, 0, len(cards)),
	}
	for _, card := range cards {
		e.cards[card.Name] = card
		e.order = append(e.order, card.Name)
	}
	return e
}

// CardNames returns the table's card names in load order.
func (e *Engine) CardNames() []string {
	names := make([]string, len(e.order))
	copy(names, e.order)
	return names
}

// Cards returns the loaded card table in load order.
func (e *Engine) Cards() []domain.CreditCard {
	cards := make([]domain.CreditCard, 0, len(e.order))
	for _, name := range e.order {
		cards = append(cards, e.cards[name])
	}
	return cards
}

// CalculateBenefit computes the discount for spending amount on cardName in
// the given category. Unknown cards resolve to a zero benefit, never an
// error. An invalid category is a contract violation and panics.
func (e *Engine) CalculateBenefit(amount float64, cardName string, category domain.SpendCategory) domain.Benefit {
	if !domain.ValidCategory(category) {
		panic(apperr.Invariant(fmt.Sprintf("pricing: %v", domain.ErrInvalidCategory(category))))
	}

	card, ok := e.cards[cardName]
	if !ok {
		return domain.ZeroBenefit()
	}

	rate := card.RateFor(category)
	return domain.Benefit{
		Discount:    amount * rate,
		Rate:        rate * 100,
		Description: card.Description,
	}
}
