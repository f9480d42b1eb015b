package pricing

import (
	"sort"

	"smartprice_server/core/domain"
	"smartprice_server/pkg/logger"
)

// =============================================================================
// Offer Ranking
// =============================================================================

// RankOffers computes the best (card, effective price) pair per offer and
// returns the analyzed offers sorted ascending by effective price, the best
// offer, and the count of offers excluded for an unresolvable price.
//
// The sort is stable: offers with equal effective prices keep input order.
// An empty card list uses the "No Card" pseudo-card so every offer still
// has a defined effective price.
func (e *Engine) RankOffers(offers []domain.Offer, cards []string, category domain.SpendCategory) ([]domain.AnalyzedOffer, *domain.AnalyzedOffer, int) {
	analyzed := make([]domain.AnalyzedOffer, 0, len(offers))
	excluded := 0

	for _, offer := range offers {
		price := offer.Price
		if price <= 0 {
			price = ExtractPrice(offer.PriceText)
		}
		if price <= 0 {
			excluded++
			continue
		}
		offer.Price = price
		analyzed = append(analyzed, e.analyzeOffer(offer, cards, category))
	}

	if excluded > 0 {
		logger.WithField("excluded", excluded).
			Warn("Offers dropped from ranking: unresolvable price")
	}

	sort.SliceStable(analyzed, func(i, j int) bool {
		return analyzed[i].EffectivePrice < analyzed[j].EffectivePrice
	})

	if len(analyzed) == 0 {
		return analyzed, nil, excluded
	}

	best := analyzed[0]
	return analyzed, &best, excluded
}

// analyzeOffer picks the card maximizing discount for one offer. Ties keep
// the first card in caller order.
func (e *Engine) analyzeOffer(offer domain.Offer, cards []string, category domain.SpendCategory) domain.AnalyzedOffer {
	bestCard := domain.NoCardName
	bestBenefit := domain.ZeroBenefit()

	for i, cardName := range cards {
		benefit := e.CalculateBenefit(offer.Price, cardName, category)
		if i == 0 || benefit.Discount > bestBenefit.Discount {
			bestCard = cardName
			bestBenefit = benefit
		}
	}

	savings := 0.0
	if offer.Price > 0 {
		savings = bestBenefit.Discount / offer.Price * 100
	}

	return domain.AnalyzedOffer{
		Offer:          offer,
		OriginalPrice:  offer.Price,
		Card:           bestCard,
		Discount:       bestBenefit.Discount,
		EffectivePrice: offer.Price - bestBenefit.Discount,
		SavingsPercent: savings,
		Benefit:        bestBenefit.Description,
	}
}
