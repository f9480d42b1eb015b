package agent

import (
	"context"
	"fmt"

	"smartprice_server/core/domain"
	"smartprice_server/core/port/out"
	"smartprice_server/core/service/pricing"
)

// DomainAgent handles one query domain.
type DomainAgent interface {
	Handle(ctx context.Context, query string, intent domain.IntentResult, cards []string) (*Result, error)
	Name() string
}

// maxProducts caps how many listings appear in a product response.
const maxProducts = 5

// =============================================================================
// Product Agent
// =============================================================================

// ProductAgent serves product search queries: fetch candidate listings,
// rank them by effective price, and surface the best deal.
type ProductAgent struct {
	catalog out.OfferCatalog
	engine  *pricing.Engine
}

func NewProductAgent(catalog out.OfferCatalog, engine *pricing.Engine) *ProductAgent {
	return &ProductAgent{catalog: catalog, engine: engine}
}

func (a *ProductAgent) Name() string {
	return "product"
}

func (a *ProductAgent) Handle(ctx context.Context, query string, intent domain.IntentResult, cards []string) (*Result, error) {
	productName := intent.Params["product_name"]
	if productName == "" {
		productName = query
	}

	offers, err := a.catalog.SearchProducts(ctx, productName)
	if err != nil {
		return nil, err
	}

	analyzed, best, _ := a.engine.RankOffers(offers, cards, domain.CategoryOnline)
	if len(analyzed) > maxProducts {
		analyzed = analyzed[:maxProducts]
	}

	if best == nil {
		return &Result{
			Summary: fmt.Sprintf("I couldn't find any products matching '%s'. Try different keywords or check the spelling.", productName),
			NextSteps: []string{
				"Try alternative product names",
				"Check different categories",
				"Use more general search terms",
			},
		}, nil
	}

	totalSavings := 0.0
	for _, p := range analyzed {
		totalSavings += p.Discount
	}

	summary := fmt.Sprintf("I found %d products for '%s'. The best deal is %s on %s for ₹%.0f",
		len(analyzed), productName, best.Offer.Title, best.Offer.Platform, best.EffectivePrice)
	if best.Discount > 0 {
		summary += fmt.Sprintf(" (saving ₹%.0f with your %s)", best.Discount, best.Card)
	}
	summary += "."

	stats := pricing.PriceRange(analyzed)

	return &Result{
		Summary:      summary,
		Products:     analyzed,
		TotalSavings: totalSavings,
		BestOffer:    best,
		BestAction:   domain.ActionPurchase,
		PriceStats:   &stats,
		NextSteps: []string{
			"Compare product specifications",
			"Check delivery options and timeline",
			"Read customer reviews",
			"Proceed to purchase",
		},
	}, nil
}
