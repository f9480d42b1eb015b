package domain

import "time"

// Response status values.
const (
	StatusSuccess            = "success"
	StatusNeedsClarification = "needs_clarification"
	StatusError              = "error"
)

// Action types.
const (
	ActionPurchase   = "purchase"
	ActionBook       = "book"
	ActionSuggestion = "suggestion"
)

// Action is one suggested follow-up the client can render as a button.
type Action struct {
	Type   string         `json:"type"`
	Label  string         `json:"label"`
	Params map[string]any `json:"params,omitempty"`
}

// ConversationResponse is the payload returned for one chat turn.
type ConversationResponse struct {
	ConversationID string         `json:"conversation_id"`
	Timestamp      time.Time      `json:"timestamp"`
	Message        string         `json:"message"`
	Intent         Intent         `json:"intent"`
	AgentUsed      string         `json:"agent_used,omitempty"`
	Data           map[string]any `json:"data,omitempty"`
	FollowUps      []string       `json:"follow_up_questions,omitempty"`
	Actions        []Action       `json:"actions,omitempty"`
	Status         string         `json:"status"`
	Error          string         `json:"error,omitempty"`
}
