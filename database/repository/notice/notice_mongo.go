package noticeRepo

import (
	"context"
	"fmt"
	"time"

	"tutoria/database"
	"tutoria/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NoticeRepository stores delivered in-app notifications.
type NoticeRepository interface {
	Create(notice *models.Notice) error
	ListByRecipient(recipientID string) ([]models.Notice, error)
}

// MongoNoticeRepo implements NoticeRepository using MongoDB.
type MongoNoticeRepo struct {
	coll *mongo.Collection
}

// NewMongoNoticeRepo creates a new instance of NoticeRepository using MongoDB.
func NewMongoNoticeRepo() NoticeRepository {
	coll := database.DB().Collection("notices")
	repo := &MongoNoticeRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create notice indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNoticeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a delivered notice.
func (r *MongoNoticeRepo) Create(notice *models.Notice) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if notice.CreatedAt.IsZero() {
		notice.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, notice); err != nil {
		return fmt.Errorf("failed to create notice: %w", err)
	}
	return nil
}

// ListByRecipient retrieves a recipient's notices, newest first.
func (r *MongoNoticeRepo) ListByRecipient(recipientID string) ([]models.Notice, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"recipient_id": recipientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve notices: %w", err)
	}
	defer cursor.Close(ctx)

	var notices []models.Notice
	for cursor.Next(ctx) {
		var n models.Notice
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to decode notice: %w", err)
		}
		notices = append(notices, n)
	}
	return notices, nil
}
