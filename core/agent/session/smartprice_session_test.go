package session

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestGetOrCreate(t *testing.T) {
	m := NewManager()
	defer m.Stop()

	s := m.GetOrCreate("")
	if s.ID == "" {
		t.Fatal("expected generated session ID")
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}

	// Same ID returns the same session.
	s.AddMessage("user", "hello", "")
	again := m.GetOrCreate(s.ID)
	if again != s {
		t.Error("GetOrCreate returned a different session for the same ID")
	}
	if len(again.Messages) != 1 {
		t.Errorf("messages = %d, want 1", len(again.Messages))
	}

	// New ID creates a fresh session.
	other := m.GetOrCreate("other-session")
	if other.ID != "other-session" {
		t.Errorf("ID = %q, want other-session", other.ID)
	}
	if m.Count() != 2 {
		t.Errorf("Count() = %d, want 2", m.Count())
	}
}

func TestGetAndDelete(t *testing.T) {
	m := NewManager()
	defer m.Stop()

	if got := m.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}

	s := m.GetOrCreate("sess-1")
	if got := m.Get("sess-1"); got != s {
		t.Error("Get did not return the created session")
	}

	m.Delete("sess-1")
	if got := m.Get("sess-1"); got != nil {
		t.Error("session survived Delete")
	}
}

func TestMessageCap(t *testing.T) {
	s := &Session{ID: "s"}
	for i := 0; i < 25; i++ {
		s.AddMessage("user", fmt.Sprintf("msg %d", i), "")
	}

	if len(s.Messages) != 20 {
		t.Fatalf("messages = %d, want 20", len(s.Messages))
	}
	// Oldest messages drop first.
	if s.Messages[0].Content != "msg 5" {
		t.Errorf("first message = %q, want msg 5", s.Messages[0].Content)
	}
	if s.Messages[19].Content != "msg 24" {
		t.Errorf("last message = %q, want msg 24", s.Messages[19].Content)
	}
}

func TestGetRecentContext(t *testing.T) {
	s := &Session{ID: "s"}
	s.AddMessage("user", "find me a laptop", "product_search")
	s.AddMessage("assistant", "I found 3 laptops", "")
	s.AddMessage("user", "cheapest one", "product_search")

	got := s.GetRecentContext(2)
	if strings.Contains(got, "find me a laptop") {
		t.Errorf("context includes message beyond limit: %q", got)
	}
	if !strings.Contains(got, "assistant: I found 3 laptops") {
		t.Errorf("context missing assistant turn: %q", got)
	}
	if !strings.Contains(got, "user: cheapest one") {
		t.Errorf("context missing latest user turn: %q", got)
	}

	// Limit larger than history returns everything.
	all := s.GetRecentContext(10)
	if !strings.Contains(all, "find me a laptop") {
		t.Errorf("full context missing first turn: %q", all)
	}
}

func TestCleanupExpiresSessions(t *testing.T) {
	m := NewManagerWithTTL(10 * time.Millisecond)
	defer m.Stop()

	fresh := m.GetOrCreate("fresh")
	stale := m.GetOrCreate("stale")
	stale.LastUsed = time.Now().Add(-time.Minute)

	m.cleanup()

	if m.Get("stale") != nil {
		t.Error("expired session survived cleanup")
	}
	if m.Get("fresh") != fresh {
		t.Error("live session removed by cleanup")
	}
}
