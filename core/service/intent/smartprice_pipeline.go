package intent

import (
	"context"
	"time"

	"smartprice_server/core/domain"
	"smartprice_server/core/port/out"
	"smartprice_server/pkg/logger"
)

// =============================================================================
// Classification Pipeline
// =============================================================================

const defaultOracleTimeout = 5 * time.Second

// Pipeline classifies queries through the external oracle when one is
// configured, falling back to the deterministic keyword classifier on any
// oracle failure. Classification is never a hard failure point.
type Pipeline struct {
	keywords      *KeywordClassifier
	oracle        out.IntentOracle
	oracleTimeout time.Duration
}

// NewPipeline creates a pipeline without an oracle (deterministic only).
func NewPipeline() *Pipeline {
	return &Pipeline{
		keywords:      NewKeywordClassifier(),
		oracleTimeout: defaultOracleTimeout,
	}
}

// NewPipelineWithOracle creates a pipeline that consults the oracle first.
func NewPipelineWithOracle(oracle out.IntentOracle, timeout time.Duration) *Pipeline {
	if timeout <= 0 {
		timeout = defaultOracleTimeout
	}
	return &Pipeline{
		keywords:      NewKeywordClassifier(),
		oracle:        oracle,
		oracleTimeout: timeout,
	}
}

// Classify returns the intent for a query. history carries recent
// conversation turns for the oracle and may be empty; the keyword path
// ignores it. Oracle timeouts, errors, and malformed results fall back to
// the keyword classifier; malformed results that still carry a valid
// intent tag are coerced instead of discarded.
func (p *Pipeline) Classify(ctx context.Context, query, history string) domain.IntentResult {
	if p.oracle == nil {
		return p.keywords.Classify(query)
	}

	oracleCtx, cancel := context.WithTimeout(ctx, p.oracleTimeout)
	defer cancel()

	result, err := p.oracle.ClassifyIntent(oracleCtx, query, history)
	if err != nil {
		logger.WithError(err).Warn("Intent oracle failed, using keyword classifier")
		return p.keywords.Classify(query)
	}

	return sanitize(result)
}

// sanitize coerces malformed oracle output to safe values. An unknown
// intent tag collapses the whole result to the default; a valid tag with
// out-of-range confidence only clamps the confidence.
func sanitize(result domain.IntentResult) domain.IntentResult {
	if !domain.ValidIntent(result.Intent) {
		logger.WithField("intent", string(result.Intent)).
			Warn("Intent oracle returned unknown intent tag, coercing to default")
		return domain.DefaultIntentResult()
	}
	result.Clamp()
	return result
}
