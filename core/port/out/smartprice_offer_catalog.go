package out

import (
	"context"

	"smartprice_server/core/domain"
)

// OfferCatalog supplies candidate offers per query. The shipped adapter
// serves a static catalog; a live scraping service can replace it without
// touching ranking logic.
type OfferCatalog interface {
	// SearchProducts returns product offers matching the given name.
	SearchProducts(ctx context.Context, productName string) ([]domain.Offer, error)

	// SearchGroceries returns candidate offers per requested item name,
	// in the same order as the input items.
	SearchGroceries(ctx context.Context, items []string) ([]domain.ItemOffers, error)

	// SearchFlights returns fare offers for the given route.
	SearchFlights(ctx context.Context, route domain.FlightRoute) ([]domain.Offer, error)
}
