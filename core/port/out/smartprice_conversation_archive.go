package out

import (
	"context"

	"smartprice_server/core/domain"
)

// ConversationArchive persists finished chat turns for later inspection.
// Archiving is best-effort: failures are logged by callers, never surfaced.
type ConversationArchive interface {
	SaveTurn(ctx context.Context, conversationID, query string, resp *domain.ConversationResponse) error
	History(ctx context.Context, conversationID string, limit int) ([]domain.ConversationResponse, error)
}
