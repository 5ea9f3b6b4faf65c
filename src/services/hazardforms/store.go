package hazardforms

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Backend-HazardAssessment/src/database"
	"Backend-HazardAssessment/src/models"
)

// FormStore persists hazard form records.
type FormStore interface {
	Save(ctx context.Context, record *models.HazardFormRecord) error
}

// MongoFormStore บันทึก record ลง collection hazardforms
type MongoFormStore struct {
	collection *mongo.Collection
}

func NewMongoFormStore() *MongoFormStore {
	return &MongoFormStore{collection: database.HazardFormCollection}
}

// Save assigns the record id and timestamps, then inserts it. Records are
// write-once: nothing in this service ever updates or deletes them.
func (s *MongoFormStore) Save(ctx context.Context, record *models.HazardFormRecord) error {
	record.ID = primitive.NewObjectID()
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := s.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to save hazard form: %w", err)
	}
	return nil
}
