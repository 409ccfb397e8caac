package branchRepo

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

// BranchRepository defines data access for branches and their classrooms.
type BranchRepository interface {
	Create(branch *models.Branch) error
	Update(branch *models.Branch) error
	Delete(id string) error
	GetByID(id string) (*models.Branch, error)
	GetAll() ([]models.Branch, error)
	AddClassroom(branchID string, room models.Classroom) error
	RemoveClassroom(branchID, roomID string) error
}

// MongoBranchRepo implements BranchRepository using MongoDB.
type MongoBranchRepo struct {
	coll *mongo.Collection
}

// NewMongoBranchRepo creates a new instance of BranchRepository using MongoDB.
func NewMongoBranchRepo() BranchRepository {
	coll := database.DB().Collection("branches")
	repo := &MongoBranchRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create branch indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBranchRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new branch document.
func (r *MongoBranchRepo) Create(branch *models.Branch) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	branch.CreatedAt = now
	branch.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, branch); err != nil {
		return fmt.Errorf("failed to create branch: %w", err)
	}
	return nil
}

// Update modifies an existing branch document.
func (r *MongoBranchRepo) Update(branch *models.Branch) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	branch.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": branch.ID}, bson.M{"$set": branch})
	if err != nil {
		return fmt.Errorf("failed to update branch with id %s: %w", branch.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("branch with id %s not found: %w", branch.ID, mongo.ErrNoDocuments)
	}
	return nil
}

// Delete removes a branch document by its ID.
func (r *MongoBranchRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete branch with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("branch with id %s not found: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

// GetByID retrieves a branch by its unique ID.
func (r *MongoBranchRepo) GetByID(id string) (*models.Branch, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var branch models.Branch
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&branch); err != nil {
		return nil, fmt.Errorf("failed to fetch branch with id %s: %w", id, err)
	}
	return &branch, nil
}

// GetAll retrieves all branch documents.
func (r *MongoBranchRepo) GetAll() ([]models.Branch, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve branches: %w", err)
	}
	defer cursor.Close(ctx)

	var branches []models.Branch
	for cursor.Next(ctx) {
		var b models.Branch
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode branch: %w", err)
		}
		branches = append(branches, b)
	}
	return branches, nil
}

// AddClassroom appends a classroom to a branch.
func (r *MongoBranchRepo) AddClassroom(branchID string, room models.Classroom) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"classrooms": room},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": branchID}, update)
	if err != nil {
		return fmt.Errorf("failed to add classroom to branch %s: %w", branchID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("branch with id %s not found: %w", branchID, mongo.ErrNoDocuments)
	}
	return nil
}

// RemoveClassroom removes a classroom from a branch by room ID.
func (r *MongoBranchRepo) RemoveClassroom(branchID, roomID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"classrooms": bson.M{"id": roomID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": branchID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove classroom from branch %s: %w", branchID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("branch with id %s not found: %w", branchID, mongo.ErrNoDocuments)
	}
	return nil
}
