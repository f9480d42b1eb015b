package routing

import (
	"testing"

	"smartprice_server/core/domain"
)

func TestRoute(t *testing.T) {
	router := NewRouter()

	tests := []struct {
		name   string
		intent domain.IntentResult
		query  string
		want   domain.Domain
	}{
		{
			name:   "high confidence product intent maps directly",
			intent: domain.IntentResult{Intent: domain.IntentProductSearch, Confidence: 0.8},
			query:  "I want to buy an iPhone",
			want:   domain.DomainProduct,
		},
		{
			name:   "high confidence flight intent maps directly",
			intent: domain.IntentResult{Intent: domain.IntentFlightSearch, Confidence: 0.8},
			query:  "flights to goa",
			want:   domain.DomainFlight,
		},
		{
			name:   "high confidence grocery intent maps directly",
			intent: domain.IntentResult{Intent: domain.IntentGrocerySearch, Confidence: 0.8},
			query:  "milk",
			want:   domain.DomainGrocery,
		},
		{
			name:   "low confidence falls back to keywords",
			intent: domain.IntentResult{Intent: domain.IntentProductSearch, Confidence: 0.4},
			query:  "I need milk delivered",
			want:   domain.DomainGrocery,
		},
		{
			name:   "general question routes by keywords",
			intent: domain.IntentResult{Intent: domain.IntentGeneralQuestion, Confidence: 0.3},
			query:  "how do flight tickets work",
			want:   domain.DomainFlight,
		},
		{
			name:   "grocery keywords outrank flight keywords in fallback",
			intent: domain.IntentResult{Intent: domain.IntentGeneralQuestion, Confidence: 0.3},
			query:  "snacks for my flight",
			want:   domain.DomainGrocery,
		},
		{
			name:   "no keywords defaults to product",
			intent: domain.IntentResult{Intent: domain.IntentGeneralQuestion, Confidence: 0.3},
			query:  "hello there",
			want:   domain.DomainProduct,
		},
		{
			name:   "confidence at the threshold is not enough",
			intent: domain.IntentResult{Intent: domain.IntentFlightSearch, Confidence: 0.6},
			query:  "milk run",
			want:   domain.DomainGrocery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := router.Route(tt.intent, tt.query)
			if got != tt.want {
				t.Errorf("Route(%+v, %q) = %q, want %q", tt.intent, tt.query, got, tt.want)
			}
		})
	}
}
