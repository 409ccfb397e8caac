package parentRepo

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

// ParentRepository defines data access for parent accounts.
type ParentRepository interface {
	Create(parent *models.Parent) error
	Update(parent *models.Parent) error
	GetByID(id string) (*models.Parent, error)
	// GetByEmail returns (nil, nil) when no account matches.
	GetByEmail(email string) (*models.Parent, error)
}

// MongoParentRepo implements ParentRepository using MongoDB.
type MongoParentRepo struct {
	coll *mongo.Collection
}

// NewMongoParentRepo creates a new instance of ParentRepository using MongoDB.
func NewMongoParentRepo() ParentRepository {
	coll := database.DB().Collection("parents")
	repo := &MongoParentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create parent indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoParentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new parent document.
func (r *MongoParentRepo) Create(parent *models.Parent) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	parent.CreatedAt = now
	parent.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, parent); err != nil {
		return fmt.Errorf("failed to create parent account: %w", err)
	}
	return nil
}

// Update modifies an existing parent document.
func (r *MongoParentRepo) Update(parent *models.Parent) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	parent.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": parent.ID}, bson.M{"$set": parent})
	if err != nil {
		return fmt.Errorf("failed to update parent with id %s: %w", parent.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("parent with id %s not found: %w", parent.ID, mongo.ErrNoDocuments)
	}
	return nil
}

// GetByID retrieves a parent account by its unique ID.
func (r *MongoParentRepo) GetByID(id string) (*models.Parent, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var parent models.Parent
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&parent); err != nil {
		return nil, fmt.Errorf("failed to fetch parent with id %s: %w", id, err)
	}
	return &parent, nil
}

// GetByEmail retrieves a parent account by email, or (nil, nil) when absent.
func (r *MongoParentRepo) GetByEmail(email string) (*models.Parent, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var parent models.Parent
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&parent); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch parent with email %s: %w", email, err)
	}
	return &parent, nil
}
