package persistence

import (
	"context"
	"time"

	"smartprice_server/core/domain"
	"smartprice_server/core/port/out"
	"smartprice_server/pkg/logger"
)

const (
	cardSnapshotKey = "smartprice:cards:v1"
	cardSnapshotTTL = 10 * time.Minute
)

// CachedCardRepository keeps a Redis snapshot of the card catalog in front
// of a slower source. Cache failures degrade to the source, never to an
// error.
type CachedCardRepository struct {
	source out.CardRepository
	cache  out.Cache
}

var _ out.CardRepository = (*CachedCardRepository)(nil)

func NewCachedCardRepository(source out.CardRepository, c out.Cache) *CachedCardRepository {
	return &CachedCardRepository{source: source, cache: c}
}

func (r *CachedCardRepository) LoadCards(ctx context.Context) ([]domain.CreditCard, error) {
	var cards []domain.CreditCard
	found, err := r.cache.GetJSON(ctx, cardSnapshotKey, &cards)
	if err != nil {
		logger.WithError(err).Warn("card snapshot read failed")
	}
	if found && len(cards) > 0 {
		return cards, nil
	}

	cards, err = r.source.LoadCards(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetJSON(ctx, cardSnapshotKey, cards, cardSnapshotTTL); err != nil {
		logger.WithError(err).Warn("card snapshot write failed")
	}
	return cards, nil
}
