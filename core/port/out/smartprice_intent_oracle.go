package out

import (
	"context"

	"smartprice_server/core/domain"
)

// IntentOracle is an optional external classifier. Implementations must
// respect ctx cancellation; callers impose the timeout and fall back to the
// deterministic classifier on any error. history carries the recent
// conversation turns and may be empty.
type IntentOracle interface {
	ClassifyIntent(ctx context.Context, query, history string) (domain.IntentResult, error)
}
