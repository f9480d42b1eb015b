package pricing

import (
	"smartprice_server/core/domain"
)

// =============================================================================
// Cart Aggregation (grocery path)
// =============================================================================

// BuildCart selects the best offer per requested item and aggregates the
// winners into a cart. Cart order follows requested-item order, never price
// order. Items with no rankable offers are omitted; callers surface the
// empty-result message upstream. Returns the cart and total savings.
func (e *Engine) BuildCart(items []domain.ItemOffers, cards []string) (domain.Cart, float64) {
	cart := domain.Cart{Items: make([]domain.CartItem, 0, len(items))}

	for _, item := range items {
		_, best, _ := e.RankOffers(item.Offers, cards, domain.CategoryGrocery)
		if best == nil {
			continue
		}

		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		cart.Items = append(cart.Items, domain.CartItem{
			Item:     item.Item,
			Selected: *best,
			Quantity: quantity,
		})
	}

	return cart, cart.TotalSavings()
}
