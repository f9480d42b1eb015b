package agent

import (
	"context"
	"fmt"

	"smartprice_server/core/domain"
	"smartprice_server/core/port/out"
	"smartprice_server/core/service/intent"
	"smartprice_server/core/service/pricing"
)

// =============================================================================
// Flight Agent
// =============================================================================

// Default route when the query names no recognizable cities.
const (
	defaultDeparture = "DEL"
	defaultArrival   = "BOM"
)

// FlightAgent searches fares for a parsed route and ranks them by effective
// price after card benefits.
type FlightAgent struct {
	catalog out.OfferCatalog
	engine  *pricing.Engine
}

func NewFlightAgent(catalog out.OfferCatalog, engine *pricing.Engine) *FlightAgent {
	return &FlightAgent{catalog: catalog, engine: engine}
}

func (a *FlightAgent) Name() string {
	return "flight"
}

func (a *FlightAgent) Handle(ctx context.Context, query string, result domain.IntentResult, cards []string) (*Result, error) {
	route := resolveRoute(query, result)

	offers, err := a.catalog.SearchFlights(ctx, route)
	if err != nil {
		return nil, err
	}

	analyzed, best, _ := a.engine.RankOffers(offers, cards, domain.CategoryOnline)
	if best == nil {
		return &Result{
			Summary: fmt.Sprintf("I couldn't find flights from %s to %s right now. Try different dates or nearby airports.", route.FromCity, route.ToCity),
			NextSteps: []string{
				"Try alternative travel dates",
				"Check nearby airports",
			},
		}, nil
	}

	summary := fmt.Sprintf("I found %d flights from %s to %s. The cheapest is %s on %s at ₹%.0f",
		len(analyzed), route.FromCity, route.ToCity, best.Offer.Title, best.Offer.Platform, best.EffectivePrice)
	if best.Discount > 0 {
		summary += fmt.Sprintf(" (saving ₹%.0f with your %s)", best.Discount, best.Card)
	}
	summary += "."

	stats := pricing.PriceRange(analyzed)

	return &Result{
		Summary:    summary,
		Flights:    analyzed,
		BestOffer:  best,
		BestAction: domain.ActionBook,
		PriceStats: &stats,
		NextSteps: []string{
			"Compare departure times",
			"Check baggage allowance",
			"Proceed to booking",
		},
	}, nil
}

// resolveRoute prefers classifier params, then a fresh parse of the query,
// then the default DEL to BOM route.
func resolveRoute(query string, result domain.IntentResult) domain.FlightRoute {
	dep := result.Params["departure"]
	arr := result.Params["arrival"]
	if dep != "" && arr != "" {
		return domain.FlightRoute{
			Departure: dep,
			Arrival:   arr,
			FromCity:  intent.CityName(dep),
			ToCity:    intent.CityName(arr),
		}
	}
	if route, ok := intent.ParseRoute(query); ok {
		return route
	}
	return domain.FlightRoute{
		Departure: defaultDeparture,
		Arrival:   defaultArrival,
		FromCity:  intent.CityName(defaultDeparture),
		ToCity:    intent.CityName(defaultArrival),
	}
}
