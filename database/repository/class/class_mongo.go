package classRepo

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

// MongoClassRepo implements ClassRepository using MongoDB.
type MongoClassRepo struct {
	coll *mongo.Collection
}

// NewMongoClassRepo creates a new instance of ClassRepository using MongoDB.
func NewMongoClassRepo() ClassRepository {
	coll := database.DB().Collection("classes")
	repo := &MongoClassRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create class indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoClassRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "branch_id", Value: 1}}},
		{Keys: bson.D{{Key: "tutor_id", Value: 1}, {Key: "start_time", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new class document.
func (r *MongoClassRepo) Create(class *models.Class) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	class.CreatedAt = now
	class.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, class); err != nil {
		return fmt.Errorf("failed to create class: %w", err)
	}
	return nil
}

// Update modifies an existing class document.
func (r *MongoClassRepo) Update(class *models.Class) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	class.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": class.ID}, bson.M{"$set": class})
	if err != nil {
		return fmt.Errorf("failed to update class with id %s: %w", class.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("class with id %s not found: %w", class.ID, mongo.ErrNoDocuments)
	}
	return nil
}

// Delete removes a class document by its ID.
func (r *MongoClassRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete class with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("class with id %s not found: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

// GetByID retrieves a class by its unique ID.
func (r *MongoClassRepo) GetByID(id string) (*models.Class, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var class models.Class
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&class); err != nil {
		return nil, fmt.Errorf("failed to fetch class with id %s: %w", id, err)
	}
	return &class, nil
}

// GetAll retrieves all class documents.
func (r *MongoClassRepo) GetAll() ([]models.Class, error) {
	return r.find(bson.M{})
}

// ListByBranch retrieves all classes at a branch.
func (r *MongoClassRepo) ListByBranch(branchID string) ([]models.Class, error) {
	return r.find(bson.M{"branch_id": branchID})
}

func (r *MongoClassRepo) find(filter bson.M) ([]models.Class, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve classes: %w", err)
	}
	defer cursor.Close(ctx)

	var classes []models.Class
	for cursor.Next(ctx) {
		var c models.Class
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode class: %w", err)
		}
		classes = append(classes, c)
	}
	return classes, nil
}
