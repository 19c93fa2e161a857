package conversationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arogyamitra/database"
	"arogyamitra/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConversationRepo implements ConversationRepository using MongoDB.
type MongoConversationRepo struct {
	coll *mongo.Collection
}

// NewMongoConversationRepo creates a new instance of ConversationRepository using MongoDB.
func NewMongoConversationRepo() ConversationRepository {
	coll := database.MongoClient.Database("arogyamitra").Collection("conversations")
	repo := &MongoConversationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoConversationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByUserID retrieves a user's conversation. Returns nil without error
// when the user has no conversation yet.
func (r *MongoConversationRepo) GetByUserID(userID string) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var conv models.Conversation
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&conv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation for user %s: %w", userID, err)
	}
	return &conv, nil
}

// AppendMessages pushes messages onto the user's conversation with upsert
// semantics, so the first chat turn creates the document.
func (r *MongoConversationRepo) AppendMessages(userID string, messages []models.Message) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"userId": userID}
	update := bson.M{
		"$push":        bson.M{"messages": bson.M{"$each": messages}},
		"$setOnInsert": bson.M{"id": uuid.NewString()},
	}

	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to append messages for user %s: %w", userID, err)
	}
	return nil
}
