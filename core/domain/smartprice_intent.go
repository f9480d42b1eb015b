package domain

// Intent is the classified purpose of a user query.
type Intent string

const (
	IntentProductSearch   Intent = "product_search"
	IntentGrocerySearch   Intent = "grocery_search"
	IntentFlightSearch    Intent = "flight_search"
	IntentGeneralQuestion Intent = "general_question"
)

// ValidIntent reports whether i is one of the enumerated intents.
func ValidIntent(i Intent) bool {
	switch i {
	case IntentProductSearch, IntentGrocerySearch, IntentFlightSearch, IntentGeneralQuestion:
		return true
	}
	return false
}

// IntentResult is the output of intent classification, from either the
// deterministic classifier or the external oracle. Confidence is always
// clamped into [0,1].
type IntentResult struct {
	Intent        Intent            `json:"intent"`
	Confidence    float64           `json:"confidence"`
	Params        map[string]string `json:"params,omitempty"`
	Items         []string          `json:"items,omitempty"` // grocery_search only
	MissingParams []string          `json:"missing_params,omitempty"`
	Questions     []string          `json:"questions,omitempty"`
}

// Clamp forces confidence into [0,1].
func (r *IntentResult) Clamp() {
	if r.Confidence < 0 {
		r.Confidence = 0
	}
	if r.Confidence > 1 {
		r.Confidence = 1
	}
}

// DefaultIntentResult is the safe fallback when classification produces
// nothing usable.
func DefaultIntentResult() IntentResult {
	return IntentResult{
		Intent:     IntentGeneralQuestion,
		Confidence: 0.5,
	}
}

// Domain identifies which handler serves a query.
type Domain string

const (
	DomainProduct Domain = "product"
	DomainGrocery Domain = "grocery"
	DomainFlight  Domain = "flight"
)

func (d Domain) String() string {
	return string(d)
}

// DomainForIntent maps a search intent to its serving domain. The second
// return is false for general_question and unknown intents.
func DomainForIntent(i Intent) (Domain, bool) {
	switch i {
	case IntentProductSearch:
		return DomainProduct, true
	case IntentGrocerySearch:
		return DomainGrocery, true
	case IntentFlightSearch:
		return DomainFlight, true
	}
	return "", false
}

// FlightRoute is the departure/arrival pair extracted from a flight query.
type FlightRoute struct {
	Departure string `json:"departure"` // IATA code
	Arrival   string `json:"arrival"`   // IATA code
	FromCity  string `json:"from_city"`
	ToCity    string `json:"to_city"`
}
