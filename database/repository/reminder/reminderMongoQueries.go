package reminderRepo

import (
	"fmt"
	"time"

	"arogyamitra/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByUserAndDate retrieves a user's reminders for one date, sorted by
// reminderTime ascending. "HH:MM" strings sort lexicographically in time order.
func (r *MongoReminderRepo) GetByUserAndDate(userID, date string) ([]models.Reminder, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"userId": userID, "date": date}
	opts := options.Find().SetSort(bson.D{{Key: "reminderTime", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reminders for user %s on %s: %w", userID, date, err)
	}
	defer cursor.Close(ctx)

	var reminders []models.Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, fmt.Errorf("failed to decode reminders for user %s: %w", userID, err)
	}
	return reminders, nil
}

// GetDue retrieves untaken reminders matching the exact date and time tuple.
func (r *MongoReminderRepo) GetDue(date, reminderTime string) ([]models.Reminder, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"date": date, "reminderTime": reminderTime, "isTaken": false}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch due reminders at %s %s: %w", date, reminderTime, err)
	}
	defer cursor.Close(ctx)

	var reminders []models.Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, fmt.Errorf("failed to decode due reminders: %w", err)
	}
	return reminders, nil
}
