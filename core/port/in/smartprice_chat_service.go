package in

import (
	"context"

	"smartprice_server/core/domain"
)

// ChatRequest is one inbound chat turn.
type ChatRequest struct {
	Message        string   `json:"message"`
	ConversationID string   `json:"conversation_id,omitempty"`
	Cards          []string `json:"cards,omitempty"` // Override the default card set
}

// ChatService is the inbound port for the conversational pipeline.
type ChatService interface {
	Chat(ctx context.Context, req *ChatRequest) (*domain.ConversationResponse, error)
	Capabilities() map[string]any
}
