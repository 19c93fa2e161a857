package firstaidRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arogyamitra/database"
	"arogyamitra/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFirstAidRepo implements FirstAidRepository using MongoDB.
type MongoFirstAidRepo struct {
	coll *mongo.Collection
}

// NewMongoFirstAidRepo creates a new instance of FirstAidRepository using MongoDB.
func NewMongoFirstAidRepo() FirstAidRepository {
	coll := database.MongoClient.Database("arogyamitra").Collection("firstaidcases")
	repo := &MongoFirstAidRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFirstAidRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "case", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAllSummaries retrieves the title/case projection of every case.
func (r *MongoFirstAidRepo) GetAllSummaries() ([]models.FirstAidSummary, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"title": 1, "case": 1, "_id": 0})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch first-aid cases: %w", err)
	}
	defer cursor.Close(ctx)

	var summaries []models.FirstAidSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode first-aid cases: %w", err)
	}
	return summaries, nil
}

// GetByCase retrieves a full case record by its slug.
func (r *MongoFirstAidRepo) GetByCase(caseKey string) (*models.FirstAidCase, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var fa models.FirstAidCase
	err := r.coll.FindOne(ctx, bson.M{"case": caseKey}).Decode(&fa)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch first-aid case %s: %w", caseKey, err)
	}
	return &fa, nil
}
