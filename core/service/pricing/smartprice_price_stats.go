package pricing

import (
	"smartprice_server/core/domain"
)

// PriceRange summarizes the original-price spread of analyzed offers.
// Returns a zero-value stats struct when offers is empty.
func PriceRange(offers []domain.AnalyzedOffer) domain.PriceStats {
	if len(offers) == 0 {
		return domain.PriceStats{Currency: "INR"}
	}

	min := offers[0].OriginalPrice
	max := offers[0].OriginalPrice
	sum := 0.0

	for _, offer := range offers {
		if offer.OriginalPrice < min {
			min = offer.OriginalPrice
		}
		if offer.OriginalPrice > max {
			max = offer.OriginalPrice
		}
		sum += offer.OriginalPrice
	}

	return domain.PriceStats{
		Min:      min,
		Max:      max,
		Average:  sum / float64(len(offers)),
		Currency: "INR",
	}
}
