package out

import (
	"context"

	"smartprice_server/core/domain"
)

// CardRepository loads the credit card benefit table at startup. The table
// is read-only afterwards, so implementations only need a single load path.
type CardRepository interface {
	LoadCards(ctx context.Context) ([]domain.CreditCard, error)
}
