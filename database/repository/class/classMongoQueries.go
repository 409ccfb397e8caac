package classRepo

import (
	"errors"
	"fmt"
	"time"

	"tutoria/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrClassFull is returned by ReserveSeat when a class is at capacity.
var ErrClassFull = errors.New("class is at capacity")

// ListByTutorBetween returns the tutor's classes starting in [from, to),
// ordered by start time.
func (r *MongoClassRepo) ListByTutorBetween(tutorID string, from, to time.Time) ([]models.Class, error) {
	return r.find(bson.M{
		"tutor_id":   tutorID,
		"start_time": bson.M{"$gte": from, "$lt": to},
	})
}

// SetTutor assigns the tutor on a class; empty IDs clear the assignment.
func (r *MongoClassRepo) SetTutor(classID, tutorID, tutorName string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"tutor_id":   tutorID,
		"tutor_name": tutorName,
		"updated_at": time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": classID}, update)
	if err != nil {
		return fmt.Errorf("failed to set tutor on class %s: %w", classID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("class with id %s not found: %w", classID, mongo.ErrNoDocuments)
	}
	return nil
}

// ReserveSeat atomically increments the enrolled count while capacity remains.
// The filter rejects the update when the class is already full, so concurrent
// enrollments cannot oversubscribe a class.
func (r *MongoClassRepo) ReserveSeat(classID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":    classID,
		"$expr": bson.M{"$lt": bson.A{"$enrolled_count", "$capacity"}},
	}
	update := bson.M{
		"$inc": bson.M{"enrolled_count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve seat on class %s: %w", classID, err)
	}
	if result.MatchedCount == 0 {
		return ErrClassFull
	}
	return nil
}

// ReleaseSeat decrements the enrolled count after a withdrawal.
func (r *MongoClassRepo) ReleaseSeat(classID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": classID, "enrolled_count": bson.M{"$gt": 0}}
	update := bson.M{
		"$inc": bson.M{"enrolled_count": -1},
		"$set": bson.M{"updated_at": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to release seat on class %s: %w", classID, err)
	}
	return nil
}
