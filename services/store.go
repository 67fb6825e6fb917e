package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maheshathikala/stress-detect/models"
)

// LogStore persists stress logs and retrieves them newest first. Append must
// be safe under concurrent invocation; no update or delete is exposed.
type LogStore interface {
	Append(ctx context.Context, userID, username string, stressLevel int) (*models.StressLog, error)
	ListForUser(ctx context.Context, userID string, limit int64) ([]models.StressLog, error)
	ListAll(ctx context.Context, limit int64) ([]models.StressLog, error)
}

type mongoLogStore struct {
	coll *mongo.Collection
}

// NewMongoLogStore returns a LogStore backed by the stress_logs collection.
func NewMongoLogStore(db *mongo.Database) LogStore {
	return &mongoLogStore{coll: db.Collection("stress_logs")}
}

func (s *mongoLogStore) Append(ctx context.Context, userID, username string, stressLevel int) (*models.StressLog, error) {
	if stressLevel < 0 || stressLevel > 100 {
		return nil, fmt.Errorf("stress level %d out of range", stressLevel)
	}

	log := &models.StressLog{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Username:    username,
		StressLevel: stressLevel,
		Category:    models.CategoryForLevel(stressLevel),
		Timestamp:   time.Now().UTC(),
	}

	if _, err := s.coll.InsertOne(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to insert stress log: %w", err)
	}
	return log, nil
}

func (s *mongoLogStore) ListForUser(ctx context.Context, userID string, limit int64) ([]models.StressLog, error) {
	return s.find(ctx, bson.M{"user_id": userID}, limit)
}

func (s *mongoLogStore) ListAll(ctx context.Context, limit int64) ([]models.StressLog, error) {
	return s.find(ctx, bson.M{}, limit)
}

func (s *mongoLogStore) find(ctx context.Context, filter bson.M, limit int64) ([]models.StressLog, error) {
	// _id descending breaks timestamp ties by insertion order.
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query stress logs: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.StressLog
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode stress logs: %w", err)
	}
	return out, nil
}
