package agent

import (
	"context"
	"fmt"
	"strings"

	"smartprice_server/core/domain"
	"smartprice_server/core/port/out"
	"smartprice_server/core/service/pricing"
)

// =============================================================================
// Grocery Agent
// =============================================================================

// defaultGroceryPlatform is recommended when no offer covers any item.
const defaultGroceryPlatform = "Blinkit"

// GroceryAgent builds a best-price cart across quick-commerce platforms and
// recommends the platform that covers the most items.
type GroceryAgent struct {
	catalog out.OfferCatalog
	engine  *pricing.Engine
}

func NewGroceryAgent(catalog out.OfferCatalog, engine *pricing.Engine) *GroceryAgent {
	return &GroceryAgent{catalog: catalog, engine: engine}
}

func (a *GroceryAgent) Name() string {
	return "grocery"
}

func (a *GroceryAgent) Handle(ctx context.Context, query string, intent domain.IntentResult, cards []string) (*Result, error) {
	items := intent.Items
	if len(items) == 0 {
		items = []string{"groceries"}
	}

	itemOffers, err := a.catalog.SearchGroceries(ctx, items)
	if err != nil {
		return nil, err
	}

	cart, totalSavings := a.engine.BuildCart(itemOffers, cards)
	if len(cart.Items) == 0 {
		return &Result{
			Summary:      fmt.Sprintf("I couldn't find current prices for %s. Try again in a moment.", strings.Join(items, ", ")),
			GroceryItems: items,
			NextSteps: []string{
				"Retry the search",
				"Try different item names",
			},
		}, nil
	}

	platform := recommendPlatform(cart)

	summary := fmt.Sprintf("I've built a cart with %d items totalling ₹%.0f on %s",
		len(cart.Items), cart.TotalCost(), platform)
	if totalSavings > 0 {
		summary += fmt.Sprintf(", saving you ₹%.0f with your cards", totalSavings)
	}
	summary += "."

	return &Result{
		Summary:      summary,
		GroceryItems: items,
		Cart:         &cart,
		TotalSavings: totalSavings,
		Platform:     platform,
		NextSteps: []string{
			"Review cart items",
			"Confirm delivery address",
			"Proceed to checkout",
		},
	}, nil
}

// recommendPlatform picks the platform covering the most cart items. Ties go
// to the platform with the lower summed effective price.
func recommendPlatform(cart domain.Cart) string {
	counts := make(map[string]int)
	totals := make(map[string]float64)
	for _, item := range cart.Items {
		counts[item.Selected.Offer.Platform]++
		totals[item.Selected.Offer.Platform] += item.Selected.EffectivePrice * float64(item.Quantity)
	}

	best := defaultGroceryPlatform
	bestCount := 0
	for _, item := range cart.Items {
		p := item.Selected.Offer.Platform
		switch {
		case counts[p] > bestCount:
			best, bestCount = p, counts[p]
		case counts[p] == bestCount && totals[p] < totals[best]:
			best = p
		}
	}
	return best
}
