package agent

import (
	"context"
	"testing"
	"time"

	"smartprice_server/core/agent/session"
	"smartprice_server/core/domain"
	"smartprice_server/core/port/in"
	"smartprice_server/core/service/intent"
	"smartprice_server/core/service/pricing"
)

type stubCatalog struct {
	products []domain.Offer
	grocery  []domain.ItemOffers
	flights  []domain.Offer
}

func (s *stubCatalog) SearchProducts(ctx context.Context, name string) ([]domain.Offer, error) {
	return s.products, nil
}

func (s *stubCatalog) SearchGroceries(ctx context.Context, items []string) ([]domain.ItemOffers, error) {
	return s.grocery, nil
}

func (s *stubCatalog) SearchFlights(ctx context.Context, route domain.FlightRoute) ([]domain.Offer, error) {
	return s.flights, nil
}

type recordingArchive struct {
	saved chan string
}

func (a *recordingArchive) SaveTurn(ctx context.Context, conversationID, query string, resp *domain.ConversationResponse) error {
	a.saved <- conversationID
	return nil
}

func (a *recordingArchive) History(ctx context.Context, conversationID string, limit int) ([]domain.ConversationResponse, error) {
	return nil, nil
}

func testEngine() *pricing.Engine {
	return pricing.NewEngine([]domain.CreditCard{
		{
			Name: "HDFC Bank Millennia",
			Bank: "HDFC Bank",
			Rates: map[domain.SpendCategory]float64{
				domain.CategoryOnline:  0.05,
				domain.CategoryGrocery: 0.025,
				domain.CategoryGeneral: 0.01,
			},
		},
		{
			Name: "SBI SimplySAVE",
			Bank: "SBI",
			Rates: map[domain.SpendCategory]float64{
				domain.CategoryGrocery: 0.10,
				domain.CategoryGeneral: 0.0025,
			},
		},
	})
}

func testOrchestrator(catalog *stubCatalog) *Orchestrator {
	mgr := session.NewManager()
	return NewOrchestrator(intent.NewPipeline(), testEngine(), catalog, mgr, nil)
}

func TestChatProductFlow(t *testing.T) {
	catalog := &stubCatalog{products: []domain.Offer{
		{Title: "iPhone 15 128GB", Platform: "Amazon", PriceText: "₹61,499"},
		{Title: "iPhone 15 128GB", Platform: "Flipkart", PriceText: "₹62,999"},
	}}
	o := testOrchestrator(catalog)

	resp, err := o.Chat(context.Background(), &in.ChatRequest{Message: "I want to buy an iphone"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if resp.Status != domain.StatusSuccess {
		t.Fatalf("Status = %q, want success", resp.Status)
	}
	if resp.Intent != domain.IntentProductSearch {
		t.Errorf("Intent = %q, want product_search", resp.Intent)
	}
	if resp.AgentUsed != "product" {
		t.Errorf("AgentUsed = %q, want product", resp.AgentUsed)
	}
	if resp.ConversationID == "" {
		t.Error("ConversationID not assigned")
	}
	best, ok := resp.Data["best_deal"].(*domain.AnalyzedOffer)
	if !ok {
		t.Fatalf("best_deal missing or wrong type: %T", resp.Data["best_deal"])
	}
	if best.Offer.Platform != "Amazon" {
		t.Errorf("best platform = %q, want Amazon", best.Offer.Platform)
	}
	// 5% online rate on 61499
	if want := 61499 - 61499*0.05; best.EffectivePrice != want {
		t.Errorf("EffectivePrice = %v, want %v", best.EffectivePrice, want)
	}
}

func TestChatGroceryFlow(t *testing.T) {
	catalog := &stubCatalog{grocery: []domain.ItemOffers{
		{Item: "milk", Offers: []domain.Offer{
			{Title: "Amul Taaza 1L", Platform: "Blinkit", PriceText: "₹60"},
			{Title: "Amul Taaza 1L", Platform: "Zepto", PriceText: "₹62"},
		}},
		{Item: "bread", Offers: []domain.Offer{
			{Title: "Britannia Bread", Platform: "Blinkit", PriceText: "₹45"},
		}},
	}}
	o := testOrchestrator(catalog)

	resp, err := o.Chat(context.Background(), &in.ChatRequest{Message: "order milk and bread"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if resp.AgentUsed != "grocery" {
		t.Fatalf("AgentUsed = %q, want grocery", resp.AgentUsed)
	}
	if got := resp.Data["platform_recommendation"]; got != "Blinkit" {
		t.Errorf("platform_recommendation = %v, want Blinkit", got)
	}
	items, ok := resp.Data["cart"].([]domain.CartItem)
	if !ok {
		t.Fatalf("cart missing or wrong type: %T", resp.Data["cart"])
	}
	if len(items) != 2 || items[0].Item != "milk" || items[1].Item != "bread" {
		t.Errorf("cart items out of order: %v", items)
	}
}

func TestChatFlightFlow(t *testing.T) {
	catalog := &stubCatalog{flights: []domain.Offer{
		{Title: "IndiGo 6E-203", Platform: "Google Flights", PriceText: "₹4,899"},
		{Title: "Air India AI-887", Platform: "MakeMyTrip", PriceText: "₹5,299"},
	}}
	o := testOrchestrator(catalog)

	resp, err := o.Chat(context.Background(), &in.ChatRequest{Message: "book a flight from delhi to mumbai"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if resp.AgentUsed != "flight" {
		t.Fatalf("AgentUsed = %q, want flight", resp.AgentUsed)
	}
	if len(resp.Actions) == 0 || resp.Actions[0].Type != domain.ActionBook {
		t.Errorf("Actions[0] = %v, want book action first", resp.Actions)
	}
}

func TestChatClarification(t *testing.T) {
	o := testOrchestrator(&stubCatalog{})

	resp, err := o.Chat(context.Background(), &in.ChatRequest{Message: "I want to buy a tractor"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if resp.Status != domain.StatusNeedsClarification {
		t.Fatalf("Status = %q, want needs_clarification", resp.Status)
	}
	if len(resp.FollowUps) == 0 {
		t.Error("FollowUps empty for clarification response")
	}
	if resp.Data != nil {
		t.Errorf("Data = %v, want nil for clarification", resp.Data)
	}
}

func TestChatConversationIDSticks(t *testing.T) {
	catalog := &stubCatalog{products: []domain.Offer{
		{Title: "MacBook Air M3", Platform: "Amazon", PriceText: "₹99,990"},
	}}
	o := testOrchestrator(catalog)

	first, err := o.Chat(context.Background(), &in.ChatRequest{Message: "buy a macbook"})
	if err != nil {
		t.Fatalf("first Chat() error = %v", err)
	}
	second, err := o.Chat(context.Background(), &in.ChatRequest{
		Message:        "buy a macbook",
		ConversationID: first.ConversationID,
	})
	if err != nil {
		t.Fatalf("second Chat() error = %v", err)
	}
	if second.ConversationID != first.ConversationID {
		t.Errorf("ConversationID changed: %q then %q", first.ConversationID, second.ConversationID)
	}

	sess := o.sessions.Get(first.ConversationID)
	if sess == nil {
		t.Fatal("session not retained")
	}
	// Two turns, each a user and an assistant message.
	if len(sess.Messages) != 4 {
		t.Errorf("len(Messages) = %d, want 4", len(sess.Messages))
	}
}

func TestChatArchivesTurn(t *testing.T) {
	catalog := &stubCatalog{products: []domain.Offer{
		{Title: "Sony WH-1000XM5", Platform: "Amazon", PriceText: "₹24,990"},
	}}
	archive := &recordingArchive{saved: make(chan string, 1)}
	o := NewOrchestrator(intent.NewPipeline(), testEngine(), catalog, session.NewManager(), archive)

	resp, err := o.Chat(context.Background(), &in.ChatRequest{Message: "buy headphones"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	select {
	case id := <-archive.saved:
		if id != resp.ConversationID {
			t.Errorf("archived conversation %q, want %q", id, resp.ConversationID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("turn was never archived")
	}
}

func TestCapabilities(t *testing.T) {
	o := testOrchestrator(&stubCatalog{})
	caps := o.Capabilities()

	for _, key := range []string{"product_search", "grocery_search", "flight_search", "cards"} {
		if _, ok := caps[key]; !ok {
			t.Errorf("capabilities missing %q", key)
		}
	}
	cards, ok := caps["cards"].([]string)
	if !ok || len(cards) != 2 {
		t.Errorf("cards = %v, want the two configured cards", caps["cards"])
	}
}
