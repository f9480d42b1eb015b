package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Session Management
// =============================================================================

// Session represents a conversation session
type Session struct {
	ID        string    `json:"id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	LastUsed  time.Time `json:"last_used"`
}

// Message represents a single message in a session
type Message struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	Intent  string    `json:"intent,omitempty"`
	Time    time.Time `json:"time"`
}

// AddMessage adds a message to the session
func (s *Session) AddMessage(role, content, intent string) {
	s.Messages = append(s.Messages, Message{
		Role:    role,
		Content: content,
		Intent:  intent,
		Time:    time.Now(),
	})
	s.LastUsed = time.Now()

	// Keep only last 20 messages
	if len(s.Messages) > 20 {
		s.Messages = s.Messages[len(s.Messages)-20:]
	}
}

// GetRecentContext returns recent conversation for context
func (s *Session) GetRecentContext(limit int) string {
	if limit > len(s.Messages) {
		limit = len(s.Messages)
	}

	context := ""
	for _, msg := range s.Messages[len(s.Messages)-limit:] {
		context += fmt.Sprintf("%s: %s\n", msg.Role, msg.Content)
	}
	return context
}

// =============================================================================
// Session Manager
// =============================================================================

// Manager manages conversation sessions with TTL support
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	stopCh   chan struct{}
}

// NewManager creates a new session manager with default 30 minute TTL
func NewManager() *Manager {
	return NewManagerWithTTL(30 * time.Minute)
}

// NewManagerWithTTL creates a new session manager with custom TTL
func NewManagerWithTTL(ttl time.Duration) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}
	go m.cleanupLoop()
	return m
}

// GetOrCreate gets an existing session or creates a new one
func (m *Manager) GetOrCreate(sessionID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	if session, ok := m.sessions[sessionID]; ok {
		session.LastUsed = time.Now()
		return session
	}

	session := &Session{
		ID:        sessionID,
		Messages:  []Message{},
		CreatedAt: time.Now(),
		LastUsed:  time.Now(),
	}
	m.sessions[sessionID] = session
	return session
}

// Get retrieves a session by ID
func (m *Manager) Get(sessionID string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if session, ok := m.sessions[sessionID]; ok {
		return session
	}
	return nil
}

// Delete removes a session
func (m *Manager) Delete(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// Count returns the number of active sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// cleanupLoop periodically removes expired sessions
func (m *Manager) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.stopCh:
			return
		}
	}
}

// cleanup removes expired sessions
func (m *Manager) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, session := range m.sessions {
		if now.Sub(session.LastUsed) > m.ttl {
			delete(m.sessions, id)
		}
	}
}

// Stop stops the cleanup goroutine
func (m *Manager) Stop() {
	close(m.stopCh)
}
