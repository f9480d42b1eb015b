package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"smartprice_server/core/agent/session"
	in "smartprice_server/core/port/in"
	"smartprice_server/core/service/pricing"
	"smartprice_server/pkg/metrics"
	"smartprice_server/pkg/response"
)

// ChatHandler handles HTTP requests for the conversational pipeline.
type ChatHandler struct {
	service  in.ChatService
	sessions *session.Manager
	engine   *pricing.Engine
	latency  *metrics.LatencyTracker
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(service in.ChatService, sessions *session.Manager, engine *pricing.Engine) *ChatHandler {
	return &ChatHandler{
		service:  service,
		sessions: sessions,
		engine:   engine,
		latency:  metrics.NewLatencyTracker(1000),
	}
}

// Register registers chat routes
func (h *ChatHandler) Register(router fiber.Router) {
	router.Post("/chat", h.Chat)
	router.Get("/capabilities", h.Capabilities)
	router.Get("/cards", h.Cards)
	router.Get("/stats", h.Stats)

	sessions := router.Group("/sessions")
	sessions.Get("/:id", h.GetSession)
	sessions.Delete("/:id", h.DeleteSession)
}

// Chat processes one conversational turn
// @Summary Process a chat message
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body in.ChatRequest true "Chat request"
// @Success 200 {object} domain.ConversationResponse
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req in.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	if strings.TrimSpace(req.Message) == "" {
		return response.BadRequest(c, "message is required")
	}

	start := time.Now()
	resp, err := h.service.Chat(c.Context(), &req)
	h.latency.Record(time.Since(start))
	if err != nil {
		return err
	}

	return response.OK(c, resp)
}

// Stats reports chat pipeline latency percentiles
// @Summary Chat latency statistics
// @Tags Chat
// @Produce json
// @Router /api/v1/stats [get]
func (h *ChatHandler) Stats(c *fiber.Ctx) error {
	return response.OK(c, fiber.Map{
		"chat_latency":    h.latency.Stats().ToMap(),
		"active_sessions": h.sessions.Count(),
	})
}

// Capabilities describes supported domains and platforms
// @Summary List assistant capabilities
// @Tags Chat
// @Produce json
// @Router /api/v1/capabilities [get]
func (h *ChatHandler) Capabilities(c *fiber.Ctx) error {
	return response.OK(c, h.service.Capabilities())
}

// Cards lists the configured credit cards
// @Summary List credit cards
// @Tags Cards
// @Produce json
// @Router /api/v1/cards [get]
func (h *ChatHandler) Cards(c *fiber.Ctx) error {
	return response.OK(c, h.engine.Cards())
}

// GetSession returns an active session's message history
// @Summary Get a conversation session
// @Tags Sessions
// @Produce json
// @Param id path string true "Conversation ID"
// @Router /api/v1/sessions/{id} [get]
func (h *ChatHandler) GetSession(c *fiber.Ctx) error {
	sess := h.sessions.Get(c.Params("id"))
	if sess == nil {
		return response.NotFound(c, "session not found")
	}
	return response.OK(c, sess)
}

// DeleteSession removes a conversation session
// @Summary Delete a conversation session
// @Tags Sessions
// @Param id path string true "Conversation ID"
// @Router /api/v1/sessions/{id} [delete]
func (h *ChatHandler) DeleteSession(c *fiber.Ctx) error {
	h.sessions.Delete(c.Params("id"))
	return response.NoContent(c)
}
