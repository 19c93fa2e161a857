package prescriptionRepo

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

// Create inserts a new prescription document.
func (r *MongoPrescriptionRepo) Create(p *models.Prescription) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

// GetLatestByUser retrieves the user's most recent prescription.
// Returns nil without error when the user has none.
func (r *MongoPrescriptionRepo) GetLatestByUser(userID string) (*models.Prescription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var p models.Prescription
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest prescription for user %s: %w", userID, err)
	}
	return &p, nil
}

// GetAllByUser retrieves all prescriptions for a user, most recent first.
func (r *MongoPrescriptionRepo) GetAllByUser(userID string) ([]models.Prescription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prescriptions for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var prescriptions []models.Prescription
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, fmt.Errorf("failed to decode prescriptions for user %s: %w", userID, err)
	}
	return prescriptions, nil
}
