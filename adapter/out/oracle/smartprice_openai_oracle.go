// Package oracle implements intent classification against the OpenAI API,
// guarded by a circuit breaker. The keyword classifier remains the fallback
// path whenever this adapter errors.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"

	"smartprice_server/core/agent/llm"
	"smartprice_server/core/domain"
	"smartprice_server/core/port/out"
	"smartprice_server/pkg/apperr"
	"smartprice_server/pkg/logger"
)

// =============================================================================
// OpenAI Intent Oracle
// =============================================================================

const classifySystemPrompt = `You classify shopping queries for an Indian price-comparison assistant.
Respond with a JSON object:
{
  "intent": "product_search" | "grocery_search" | "flight_search" | "general_question",
  "confidence": 0.0-1.0,
  "params": {"product_name": "...", "departure": "IATA", "arrival": "IATA"},
  "items": ["grocery items, grocery_search only"]
}
Include only the params you are sure about. Use IATA codes for Indian airports.`

// OpenAIOracle classifies query intent with an LLM call.
type OpenAIOracle struct {
	client *llm.Client
	cb     *gobreaker.CircuitBreaker
}

var _ out.IntentOracle = (*OpenAIOracle)(nil)

func NewOpenAIOracle(client *llm.Client) *OpenAIOracle {
	cbSettings := gobreaker.Settings{
		Name:        "intent-oracle",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.ConsecutiveFailures > 5 ||
				(counts.Requests >= 10 && failureRatio >= 0.6)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		},
	}

	return &OpenAIOracle{
		client: client,
		cb:     gobreaker.NewCircuitBreaker(cbSettings),
	}
}

// oracleReply mirrors the JSON contract in the system prompt.
type oracleReply struct {
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Params     map[string]string `json:"params"`
	Items      []string          `json:"items"`
}

// ClassifyIntent asks the model for a structured classification. A tripped
// breaker or malformed reply surfaces as an error so the caller can fall
// back to the keyword path. Recent conversation turns precede the query so
// follow-ups ("what about the cheaper one") classify in context.
func (o *OpenAIOracle) ClassifyIntent(ctx context.Context, query, history string) (domain.IntentResult, error) {
	userPrompt := query
	if history != "" {
		userPrompt = fmt.Sprintf("Recent conversation:\n%s\nQuery: %s", history, query)
	}

	raw, err := o.cb.Execute(func() (any, error) {
		return o.client.CompleteJSON(ctx, classifySystemPrompt, userPrompt)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domain.IntentResult{}, apperr.Unavailable("intent oracle").WithError(err)
	}
	if err != nil {
		return domain.IntentResult{}, fmt.Errorf("oracle call: %w", err)
	}

	var reply oracleReply
	if err := json.Unmarshal([]byte(raw.(string)), &reply); err != nil {
		return domain.IntentResult{}, fmt.Errorf("oracle reply parse: %w", err)
	}

	result := domain.IntentResult{
		Intent:     domain.Intent(reply.Intent),
		Confidence: reply.Confidence,
		Params:     reply.Params,
		Items:      reply.Items,
	}
	return result, nil
}
