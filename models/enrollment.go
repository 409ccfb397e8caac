package models

import "time"

// Enrollment statuses.
const (
	EnrollmentActive    = "active"
	EnrollmentWithdrawn = "withdrawn"
)

// Enrollment links a student to a class.
type Enrollment struct {
	ID          string     `bson:"id" json:"id"`
	ClassID     string     `bson:"class_id" json:"classId"`
	StudentID   string     `bson:"student_id" json:"studentId"`
	ParentID    string     `bson:"parent_id" json:"parentId"`
	Status      string     `bson:"status" json:"status"`
	EnrolledAt  time.Time  `bson:"enrolled_at" json:"enrolledAt"`
	WithdrawnAt *time.Time `bson:"withdrawn_at,omitempty" json:"withdrawnAt,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updatedAt"`
}

// EnrollRequest is the payload for enrolling a student in a class.
type EnrollRequest struct {
	ClassID   string `json:"classId" binding:"required"`
	StudentID string `json:"studentId" binding:"required"`
}
