package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"smartprice_server/core/domain"
	"smartprice_server/core/port/out"
)

// CardAdapter loads the card catalog from Postgres. Rate rows join onto
// card rows; a card with no rate rows still loads with an empty table and
// yields zero benefit everywhere.
type CardAdapter struct {
	db *sqlx.DB
}

var _ out.CardRepository = (*CardAdapter)(nil)

func NewCardAdapter(db *sqlx.DB) *CardAdapter {
	return &CardAdapter{db: db}
}

// cardRow represents the database row
type cardRow struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Bank        string  `db:"bank"`
	AnnualFee   float64 `db:"annual_fee"`
	Description string  `db:"description"`
}

// rateRow represents one spend-category rate for a card
type rateRow struct {
	CardID   int64   `db:"card_id"`
	Category string  `db:"category"`
	Rate     float64 `db:"rate"`
}

func (a *CardAdapter) LoadCards(ctx context.Context) ([]domain.CreditCard, error) {
	const cardQuery = `
		SELECT id, name, bank, annual_fee, description
		FROM credit_cards
		ORDER BY id
	`

	var cardRows []cardRow
	if err := a.db.SelectContext(ctx, &cardRows, cardQuery); err != nil {
		return nil, err
	}

	const rateQuery = `
		SELECT card_id, category, rate
		FROM card_rates
	`

	var rateRows []rateRow
	if err := a.db.SelectContext(ctx, &rateRows, rateQuery); err != nil {
		return nil, err
	}

	ratesByCard := make(map[int64]map[domain.SpendCategory]float64)
	for _, r := range rateRows {
		category := domain.SpendCategory(r.Category)
		if !domain.ValidCategory(category) {
			continue
		}
		if ratesByCard[r.CardID] == nil {
			ratesByCard[r.CardID] = make(map[domain.SpendCategory]float64)
		}
		ratesByCard[r.CardID][category] = r.Rate
	}

	cards := make([]domain.CreditCard, 0, len(cardRows))
	for _, row := range cardRows {
		rates := ratesByCard[row.ID]
		if rates == nil {
			rates = make(map[domain.SpendCategory]float64)
		}
		cards = append(cards, domain.CreditCard{
			Name:        row.Name,
			Bank:        row.Bank,
			Rates:       rates,
			AnnualFee:   row.AnnualFee,
			Description: row.Description,
		})
	}
	return cards, nil
}
