package mongodb

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smartprice_server/core/domain"
	"smartprice_server/core/port/out"
)

// =============================================================================
// MongoDB Conversation Adapter
// =============================================================================

const (
	collectionConversations = "conversation_turns"

	// Archived turns expire after 30 days.
	conversationRetention = 30 * 24 * time.Hour
)

// ConversationAdapter implements out.ConversationArchive using MongoDB.
type ConversationAdapter struct {
	db         *mongo.Database
	collection *mongo.Collection
	zlog       zerolog.Logger
}

var _ out.ConversationArchive = (*ConversationAdapter)(nil)

// NewConversationAdapter creates a new MongoDB conversation adapter.
func NewConversationAdapter(db *mongo.Database) *ConversationAdapter {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		With().Timestamp().Str("component", "archive").Logger()
	return &ConversationAdapter{
		db:         db,
		collection: db.Collection(collectionConversations),
		zlog:       zlog,
	}
}

// EnsureIndexes creates necessary indexes for the collection.
func (a *ConversationAdapter) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "conversation_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0), // TTL index
		},
	}

	_, err := a.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// =============================================================================
// Document Model
// =============================================================================

type turnDocument struct {
	ConversationID string                      `bson:"conversation_id"`
	Query          string                      `bson:"query"`
	Response       domain.ConversationResponse `bson:"response"`
	CreatedAt      time.Time                   `bson:"created_at"`
	ExpiresAt      time.Time                   `bson:"expires_at"`
}

// SaveTurn archives one finished chat turn.
func (a *ConversationAdapter) SaveTurn(ctx context.Context, conversationID, query string, resp *domain.ConversationResponse) error {
	now := time.Now().UTC()
	doc := turnDocument{
		ConversationID: conversationID,
		Query:          query,
		Response:       *resp,
		CreatedAt:      now,
		ExpiresAt:      now.Add(conversationRetention),
	}

	_, err := a.collection.InsertOne(ctx, doc)
	if err == nil {
		a.zlog.Debug().
			Str("conversation_id", conversationID).
			Str("intent", string(resp.Intent)).
			Msg("turn archived")
	}
	return err
}

// History returns the most recent archived turns for a conversation,
// newest first.
func (a *ConversationAdapter) History(ctx context.Context, conversationID string, limit int) ([]domain.ConversationResponse, error) {
	if limit <= 0 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := a.collection.Find(ctx, bson.M{"conversation_id": conversationID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []turnDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	responses := make([]domain.ConversationResponse, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, doc.Response)
	}
	return responses, nil
}
