// Package routing maps classified intents to serving domains.
package routing

import (
	"strings"

	"smartprice_server/core/domain"
)

// confidenceThreshold gates direct intent-to-domain mapping. Below it the
// router re-examines the raw query keywords.
const confidenceThreshold = 0.6

// Keyword fallback order: grocery first because food words rarely overlap
// with the other sets, product last because its keywords are a catch-all.
var fallbackOrder = []struct {
	domain   domain.Domain
	keywords []string
}{
	{domain.DomainGrocery, []string{"grocery", "milk", "bread", "food", "vegetables", "fruits", "dairy", "snacks"}},
	{domain.DomainFlight, []string{"flight", "fly", "travel", "airport", "booking", "ticket", "airline"}},
	{domain.DomainProduct, []string{"buy", "purchase", "compare", "price", "phone", "laptop", "electronics", "clothing", "shoes"}},
}

// Router resolves the serving domain for a query. It always produces a
// domain; there is no unroutable outcome.
type Router struct{}

func NewRouter() *Router {
	return &Router{}
}

// Route returns the domain for the classified intent. High-confidence
// search intents map directly; everything else falls back to keyword
// matching on the raw query, defaulting to product.
func (r *Router) Route(result domain.IntentResult, rawQuery string) domain.Domain {
	if d, ok := domain.DomainForIntent(result.Intent); ok && result.Confidence > confidenceThreshold {
		return d
	}

	lower := strings.ToLower(rawQuery)
	for _, candidate := range fallbackOrder {
		for _, keyword := range candidate.keywords {
			if strings.Contains(lower, keyword) {
				return candidate.domain
			}
		}
	}

	return domain.DomainProduct
}
