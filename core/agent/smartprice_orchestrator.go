package agent

import (
	"context"
	"time"

	"github.com/google/uuid"

	"smartprice_server/core/agent/session"
	"smartprice_server/core/domain"
	"smartprice_server/core/port/in"
	"smartprice_server/core/port/out"
	"smartprice_server/core/service/intent"
	"smartprice_server/core/service/pricing"
	"smartprice_server/core/service/routing"
	"smartprice_server/pkg/logger"
)

// =============================================================================
// Orchestrator
// =============================================================================

// clarificationThreshold gates the clarifying-question detour. Below it a
// low-confidence guess still runs: a wrong search beats an annoying question.
const clarificationThreshold = 0.7

// archiveTimeout bounds the best-effort background save of a finished turn.
const archiveTimeout = 3 * time.Second

// recentContextTurns bounds the conversation history handed to the intent
// oracle per classification.
const recentContextTurns = 6

// Orchestrator drives one chat turn end to end: classify, route, dispatch
// to the serving agent, compose the reply, and record the turn. It is the
// sole implementation of the inbound chat port.
type Orchestrator struct {
	pipeline *intent.Pipeline
	router   *routing.Router
	composer *Composer
	agents   map[domain.Domain]DomainAgent
	sessions *session.Manager
	archive  out.ConversationArchive // nil when archiving is disabled
	engine   *pricing.Engine
}

var _ in.ChatService = (*Orchestrator)(nil)

// NewOrchestrator wires the full pipeline. The archive may be nil.
func NewOrchestrator(
	pipeline *intent.Pipeline,
	engine *pricing.Engine,
	catalog out.OfferCatalog,
	sessions *session.Manager,
	archive out.ConversationArchive,
) *Orchestrator {
	return &Orchestrator{
		pipeline: pipeline,
		router:   routing.NewRouter(),
		composer: NewComposer(),
		agents: map[domain.Domain]DomainAgent{
			domain.DomainProduct: NewProductAgent(catalog, engine),
			domain.DomainGrocery: NewGroceryAgent(catalog, engine),
			domain.DomainFlight:  NewFlightAgent(catalog, engine),
		},
		sessions: sessions,
		archive:  archive,
		engine:   engine,
	}
}

// Chat processes one conversational turn.
func (o *Orchestrator) Chat(ctx context.Context, req *in.ChatRequest) (*domain.ConversationResponse, error) {
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	cards := req.Cards
	if len(cards) == 0 {
		cards = o.engine.CardNames()
	}

	sess := o.sessions.GetOrCreate(conversationID)

	result := o.pipeline.Classify(ctx, req.Message, sess.GetRecentContext(recentContextTurns))
	sess.AddMessage("user", req.Message, string(result.Intent))

	// Ask instead of guessing only when the classifier is sure about the
	// intent but missing a required parameter.
	if len(result.MissingParams) > 0 && result.Confidence > clarificationThreshold {
		resp := o.clarify(conversationID, result)
		sess.AddMessage("assistant", resp.Message, string(result.Intent))
		o.record(conversationID, req.Message, resp)
		return resp, nil
	}

	dom := o.router.Route(result, req.Message)
	ag := o.agents[dom]

	bundle, err := ag.Handle(ctx, req.Message, result, cards)
	if err != nil {
		logger.WithError(err).
			WithField("agent", ag.Name()).
			Error("agent dispatch failed")
		return nil, err
	}

	resp := o.composer.Compose(conversationID, time.Now().UTC(), result.Intent, ag.Name(), bundle)
	sess.AddMessage("assistant", resp.Message, string(result.Intent))
	o.record(conversationID, req.Message, resp)
	return resp, nil
}

// clarify builds a needs-clarification response from the classifier's
// prepared questions.
func (o *Orchestrator) clarify(conversationID string, result domain.IntentResult) *domain.ConversationResponse {
	questions := result.Questions
	if len(questions) == 0 {
		questions = []string{"Could you tell me a bit more about what you're looking for?"}
	}
	return &domain.ConversationResponse{
		ConversationID: conversationID,
		Timestamp:      time.Now().UTC(),
		Message:        "I need a bit more information to help you.",
		Intent:         result.Intent,
		FollowUps:      questions,
		Status:         domain.StatusNeedsClarification,
	}
}

// record archives the finished turn in the background. Failures are logged
// and dropped; the user's reply never waits on persistence.
func (o *Orchestrator) record(conversationID, query string, resp *domain.ConversationResponse) {
	if o.archive == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		defer cancel()
		if err := o.archive.SaveTurn(ctx, conversationID, query, resp); err != nil {
			logger.WithError(err).
				WithField("conversation_id", conversationID).
				Warn("failed to archive conversation turn")
		}
	}()
}

// Capabilities describes the supported domains and the platforms each one
// searches.
func (o *Orchestrator) Capabilities() map[string]any {
	return map[string]any{
		"product_search": map[string]any{
			"description": "Compare product prices across e-commerce platforms",
			"platforms":   []string{"Amazon", "Flipkart"},
		},
		"grocery_search": map[string]any{
			"description": "Build best-price grocery carts on quick-commerce apps",
			"platforms":   []string{"Blinkit", "Zepto"},
		},
		"flight_search": map[string]any{
			"description": "Find the cheapest flights between Indian cities",
			"platforms":   []string{"Google Flights", "MakeMyTrip", "Cleartrip"},
		},
		"cards": o.engine.CardNames(),
	}
}
