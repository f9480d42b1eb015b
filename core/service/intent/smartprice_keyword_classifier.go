// Package intent implements query intent classification: a deterministic
// keyword classifier, a flight route micro-parser, and a pipeline that
// consults an optional external oracle with the keyword path as fallback.
package intent

import (
	"strings"

	"smartprice_server/core/domain"
)

// =============================================================================
// Keyword Tables
// =============================================================================

var (
	productKeywords = []string{"buy", "purchase", "compare", "price", "phone", "laptop", "electronics", "clothing", "shoes"}
	flightKeywords  = []string{"flight", "fly", "travel", "airport", "booking", "ticket", "airline"}
	groceryKeywords = []string{"grocery", "milk", "bread", "food", "vegetables", "fruits", "dairy", "snacks"}

	// groceryItems are the item names collected into the items parameter.
	groceryItems = []string{"milk", "bread", "vegetables", "fruits"}

	// namedProducts maps a query keyword to a canonical product name.
	// Checked in order; first hit wins.
	namedProducts = []struct {
		keyword string
		name    string
	}{
		{"iphone", "iPhone 15"},
		{"samsung", "Samsung Galaxy S24"},
		{"macbook", "MacBook Air"},
		{"laptop", "laptop"},
		{"headphones", "headphones"},
		{"shoes", "running shoes"},
	}
)

// =============================================================================
// Keyword Classifier
// =============================================================================

// KeywordClassifier is the deterministic intent classifier. It is pure and
// stateless; one instance serves all requests.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Classify tests the keyword sets against the lowercased query in priority
// order: product, flight, grocery. The first matching category wins with
// confidence 0.8; no match returns general_question with confidence 0.3.
func (c *KeywordClassifier) Classify(query string) domain.IntentResult {
	lower := strings.ToLower(query)

	if containsAny(lower, productKeywords) {
		return c.productResult(query, lower)
	}
	if containsAny(lower, flightKeywords) {
		return c.flightResult(lower)
	}
	if containsAny(lower, groceryKeywords) {
		return c.groceryResult(lower)
	}

	return domain.IntentResult{
		Intent:     domain.IntentGeneralQuestion,
		Confidence: 0.3,
		Questions:  []string{"How can I help you today?"},
	}
}

func (c *KeywordClassifier) productResult(query, lower string) domain.IntentResult {
	result := domain.IntentResult{
		Intent:     domain.IntentProductSearch,
		Confidence: 0.8,
		Params:     map[string]string{},
	}

	for _, p := range namedProducts {
		if strings.Contains(lower, p.keyword) {
			result.Params["product_name"] = p.name
			return result
		}
	}

	// No named product recognized: fall back to the raw query and ask.
	result.Params["product_name"] = query
	result.MissingParams = []string{"specific product"}
	result.Questions = []string{"What specific product are you looking for?"}
	return result
}

func (c *KeywordClassifier) flightResult(lower string) domain.IntentResult {
	result := domain.IntentResult{
		Intent:     domain.IntentFlightSearch,
		Confidence: 0.8,
		Params:     map[string]string{},
	}

	route, ok := ParseRoute(lower)
	if ok {
		result.Params["departure"] = route.Departure
		result.Params["arrival"] = route.Arrival
		return result
	}

	result.MissingParams = []string{"departure city", "arrival city"}
	result.Questions = []string{
		"From which city do you want to depart?",
		"To which city do you want to travel?",
	}
	return result
}

func (c *KeywordClassifier) groceryResult(lower string) domain.IntentResult {
	result := domain.IntentResult{
		Intent:     domain.IntentGrocerySearch,
		Confidence: 0.8,
	}

	for _, item := range groceryItems {
		if strings.Contains(lower, item) {
			result.Items = append(result.Items, item)
		}
	}
	if len(result.Items) == 0 {
		result.Items = []string{"groceries"}
	}
	return result
}

func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
