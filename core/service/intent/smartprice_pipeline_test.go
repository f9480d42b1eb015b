package intent

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartprice_server/core/domain"
)

// stubOracle returns a fixed result or error.
type stubOracle struct {
	result      domain.IntentResult
	err         error
	delay       time.Duration
	seenHistory string
}

func (o *stubOracle) ClassifyIntent(ctx context.Context, query, history string) (domain.IntentResult, error) {
	o.seenHistory = history
	if o.delay > 0 {
		select {
		case <-time.After(o.delay):
		case <-ctx.Done():
			return domain.IntentResult{}, ctx.Err()
		}
	}
	if o.err != nil {
		return domain.IntentResult{}, o.err
	}
	return o.result, nil
}

func TestPipelineWithoutOracle(t *testing.T) {
	pipeline := NewPipeline()

	got := pipeline.Classify(context.Background(), "I want to buy an iPhone 15", "")
	if got.Intent != domain.IntentProductSearch {
		t.Errorf("Intent = %q, want product_search", got.Intent)
	}
}

func TestPipelineOracleResultUsed(t *testing.T) {
	oracle := &stubOracle{
		result: domain.IntentResult{
			Intent:     domain.IntentFlightSearch,
			Confidence: 0.95,
		},
	}
	pipeline := NewPipelineWithOracle(oracle, time.Second)

	got := pipeline.Classify(context.Background(), "anything", "")
	if got.Intent != domain.IntentFlightSearch || got.Confidence != 0.95 {
		t.Errorf("got %+v, want oracle result to pass through", got)
	}
}

func TestPipelineForwardsHistoryToOracle(t *testing.T) {
	oracle := &stubOracle{
		result: domain.IntentResult{Intent: domain.IntentProductSearch, Confidence: 0.9},
	}
	pipeline := NewPipelineWithOracle(oracle, time.Second)

	history := "user: I want to buy an iphone\nassistant: I found 3 products\n"
	pipeline.Classify(context.Background(), "what about the cheaper one", history)

	if oracle.seenHistory != history {
		t.Errorf("oracle saw history %q, want %q", oracle.seenHistory, history)
	}
}

func TestPipelineOracleErrorFallsBack(t *testing.T) {
	oracle := &stubOracle{err: errors.New("upstream unavailable")}
	pipeline := NewPipelineWithOracle(oracle, time.Second)

	got := pipeline.Classify(context.Background(), "I need milk and bread", "")
	if got.Intent != domain.IntentGrocerySearch {
		t.Errorf("Intent = %q, want keyword fallback grocery_search", got.Intent)
	}
}

func TestPipelineOracleTimeoutFallsBack(t *testing.T) {
	oracle := &stubOracle{
		result: domain.IntentResult{Intent: domain.IntentFlightSearch, Confidence: 0.9},
		delay:  200 * time.Millisecond,
	}
	pipeline := NewPipelineWithOracle(oracle, 10*time.Millisecond)

	got := pipeline.Classify(context.Background(), "I want to buy shoes", "")
	if got.Intent != domain.IntentProductSearch {
		t.Errorf("Intent = %q, want keyword fallback after oracle timeout", got.Intent)
	}
}

func TestPipelineMalformedOracleOutput(t *testing.T) {
	t.Run("unknown intent tag coerces to default", func(t *testing.T) {
		oracle := &stubOracle{
			result: domain.IntentResult{Intent: "purchase_everything", Confidence: 0.9},
		}
		pipeline := NewPipelineWithOracle(oracle, time.Second)

		got := pipeline.Classify(context.Background(), "anything", "")
		if got.Intent != domain.IntentGeneralQuestion || got.Confidence != 0.5 {
			t.Errorf("got %+v, want (general_question, 0.5)", got)
		}
	})

	t.Run("out of range confidence clamps", func(t *testing.T) {
		oracle := &stubOracle{
			result: domain.IntentResult{Intent: domain.IntentProductSearch, Confidence: 1.7},
		}
		pipeline := NewPipelineWithOracle(oracle, time.Second)

		got := pipeline.Classify(context.Background(), "anything", "")
		if got.Intent != domain.IntentProductSearch {
			t.Errorf("Intent = %q, want valid tag preserved", got.Intent)
		}
		if got.Confidence != 1.0 {
			t.Errorf("Confidence = %v, want clamped to 1.0", got.Confidence)
		}
	})

	t.Run("negative confidence clamps to zero", func(t *testing.T) {
		oracle := &stubOracle{
			result: domain.IntentResult{Intent: domain.IntentGrocerySearch, Confidence: -0.2},
		}
		pipeline := NewPipelineWithOracle(oracle, time.Second)

		got := pipeline.Classify(context.Background(), "anything", "")
		if got.Confidence != 0 {
			t.Errorf("Confidence = %v, want clamped to 0", got.Confidence)
		}
	})
}
