package reminderRepo

import (
	"errors"
	"fmt"
	"time"

	"arogyamitra/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new reminder document.
func (r *MongoReminderRepo) Create(reminder *models.Reminder) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	}

	_, err := r.coll.InsertOne(ctx, reminder)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// MarkTaken flips isTaken to true and returns the updated document.
// Calling it again on an already-taken reminder is a no-op update.
func (r *MongoReminderRepo) MarkTaken(id string) (*models.Reminder, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"isTaken": true}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Reminder
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark reminder %s as taken: %w", id, err)
	}
	return &updated, nil
}
