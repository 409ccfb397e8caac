package enrollmentRepo

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

// EnrollmentRepository defines data access for enrollments.
type EnrollmentRepository interface {
	Create(enrollment *models.Enrollment) error
	GetByID(id string) (*models.Enrollment, error)
	// GetActive returns the active enrollment of a student in a class, or
	// (nil, nil) when there is none.
	GetActive(classID, studentID string) (*models.Enrollment, error)
	ListByParent(parentID string) ([]models.Enrollment, error)
	ListByClass(classID string) ([]models.Enrollment, error)
	Withdraw(id string, at time.Time) error
}

// MongoEnrollmentRepo implements EnrollmentRepository using MongoDB.
type MongoEnrollmentRepo struct {
	coll *mongo.Collection
}

// NewMongoEnrollmentRepo creates a new instance of EnrollmentRepository using MongoDB.
func NewMongoEnrollmentRepo() EnrollmentRepository {
	coll := database.DB().Collection("enrollments")
	repo := &MongoEnrollmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create enrollment indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEnrollmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "class_id", Value: 1}, {Key: "student_id", Value: 1}}},
		{Keys: bson.D{{Key: "parent_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new enrollment document.
func (r *MongoEnrollmentRepo) Create(enrollment *models.Enrollment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	enrollment.CreatedAt = now
	enrollment.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, enrollment); err != nil {
		return fmt.Errorf("failed to create enrollment: %w", err)
	}
	return nil
}

// GetByID retrieves an enrollment by its unique ID.
func (r *MongoEnrollmentRepo) GetByID(id string) (*models.Enrollment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var enrollment models.Enrollment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&enrollment); err != nil {
		return nil, fmt.Errorf("failed to fetch enrollment with id %s: %w", id, err)
	}
	return &enrollment, nil
}

// GetActive returns the active enrollment of a student in a class, or (nil, nil).
func (r *MongoEnrollmentRepo) GetActive(classID, studentID string) (*models.Enrollment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"class_id": classID, "student_id": studentID, "status": models.EnrollmentActive}
	var enrollment models.Enrollment
	if err := r.coll.FindOne(ctx, filter).Decode(&enrollment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch enrollment for class %s: %w", classID, err)
	}
	return &enrollment, nil
}

// ListByParent retrieves all enrollments created by a parent.
func (r *MongoEnrollmentRepo) ListByParent(parentID string) ([]models.Enrollment, error) {
	return r.find(bson.M{"parent_id": parentID})
}

// ListByClass retrieves all enrollments in a class.
func (r *MongoEnrollmentRepo) ListByClass(classID string) ([]models.Enrollment, error) {
	return r.find(bson.M{"class_id": classID})
}

// Withdraw marks an active enrollment as withdrawn.
func (r *MongoEnrollmentRepo) Withdraw(id string, at time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.EnrollmentActive}
	update := bson.M{"$set": bson.M{
		"status":       models.EnrollmentWithdrawn,
		"withdrawn_at": at,
		"updated_at":   time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to withdraw enrollment %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("active enrollment with id %s not found: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

func (r *MongoEnrollmentRepo) find(filter bson.M) ([]models.Enrollment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "enrolled_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve enrollments: %w", err)
	}
	defer cursor.Close(ctx)

	var enrollments []models.Enrollment
	for cursor.Next(ctx) {
		var e models.Enrollment
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode enrollment: %w", err)
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, nil
}
