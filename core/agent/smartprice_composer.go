package agent

import (
	"time"

	"smartprice_server/core/domain"
)

// =============================================================================
// Response Composer
// =============================================================================

// Result is a domain agent's output bundle, the input to composition.
type Result struct {
	Summary      string
	Products     []domain.AnalyzedOffer
	Flights      []domain.AnalyzedOffer
	GroceryItems []string
	Cart         *domain.Cart
	TotalSavings float64
	BestOffer    *domain.AnalyzedOffer
	BestAction   string // purchase or book
	PriceStats   *domain.PriceStats
	Platform     string
	NextSteps    []string
}

// Composer assembles a result bundle into the conversational payload. It is
// a pure formatter: identical input yields identical output, and only
// non-empty keys reach the data map.
type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// Compose builds the final response. The timestamp is supplied by the
// caller so composition stays deterministic.
func (c *Composer) Compose(conversationID string, ts time.Time, intent domain.Intent, agentUsed string, result *Result) *domain.ConversationResponse {
	resp := &domain.ConversationResponse{
		ConversationID: conversationID,
		Timestamp:      ts,
		Message:        result.Summary,
		Intent:         intent,
		AgentUsed:      agentUsed,
		Status:         domain.StatusSuccess,
	}

	data := make(map[string]any)
	if len(result.Products) > 0 {
		data["products"] = result.Products
	}
	if len(result.Flights) > 0 {
		data["flights"] = result.Flights
	}
	if len(result.GroceryItems) > 0 {
		data["grocery_items"] = result.GroceryItems
	}
	if result.Cart != nil && len(result.Cart.Items) > 0 {
		data["cart"] = result.Cart.Items
		data["total_cost"] = result.Cart.TotalCost()
	}
	if result.TotalSavings > 0 {
		data["total_savings"] = result.TotalSavings
	}
	if result.BestOffer != nil {
		data["best_deal"] = result.BestOffer
	}
	if result.PriceStats != nil {
		data["price_range"] = result.PriceStats
	}
	if result.Platform != "" {
		data["platform_recommendation"] = result.Platform
	}
	if len(data) > 0 {
		resp.Data = data
	}

	if result.BestOffer != nil {
		actionType := result.BestAction
		if actionType == "" {
			actionType = domain.ActionPurchase
		}
		resp.Actions = append(resp.Actions, domain.Action{
			Type:  actionType,
			Label: result.BestOffer.Offer.Title,
			Params: map[string]any{
				"platform":        result.BestOffer.Offer.Platform,
				"effective_price": result.BestOffer.EffectivePrice,
				"card":            result.BestOffer.Card,
			},
		})
	}
	for _, step := range result.NextSteps {
		resp.Actions = append(resp.Actions, domain.Action{
			Type:  domain.ActionSuggestion,
			Label: step,
		})
	}

	return resp
}
