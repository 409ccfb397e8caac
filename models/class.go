package models

import "time"

// Class represents a scheduled tuition class at a branch.
type Class struct {
	ID              string     `bson:"id" json:"id"`
	Name            string     `bson:"name" json:"name"`
	Subject         string     `bson:"subject" json:"subject"`
	Level           string     `bson:"level,omitempty" json:"level,omitempty"` // e.g., "P5", "Sec 2"
	BranchID        string     `bson:"branch_id,omitempty" json:"branchId,omitempty"`
	BranchName      string     `bson:"branch_name,omitempty" json:"branchName,omitempty"`
	ClassroomID     string     `bson:"classroom_id,omitempty" json:"classroomId,omitempty"`
	TutorID         string     `bson:"tutor_id,omitempty" json:"tutorId,omitempty"` // empty when unassigned
	TutorName       string     `bson:"tutor_name,omitempty" json:"tutorName,omitempty"`
	StartTime       time.Time  `bson:"start_time" json:"startTime"`
	EndTime         *time.Time `bson:"end_time,omitempty" json:"endTime,omitempty"`
	DurationMinutes int        `bson:"duration_minutes" json:"durationMinutes"`
	Capacity        int        `bson:"capacity" json:"capacity"`
	EnrolledCount   int        `bson:"enrolled_count" json:"enrolledCount"`
	MonthlyFee      Money      `bson:"monthly_fee" json:"monthlyFee"`
	Status          string     `bson:"status" json:"status"` // "open", "full", "cancelled"
	CreatedAt       time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `bson:"updated_at" json:"updatedAt"`
}

// EndAt returns the class end instant, preferring the explicit end time.
func (c Class) EndAt() time.Time {
	if c.EndTime != nil {
		return *c.EndTime
	}
	return c.StartTime.Add(time.Duration(c.DurationMinutes) * time.Minute)
}

// Booked converts the class to the shape the conflict checker consumes.
func (c Class) Booked() BookedClass {
	return BookedClass{
		ClassID:         c.ID,
		Subject:         c.Subject,
		Level:           c.Level,
		StartTime:       c.StartTime,
		EndTime:         c.EndTime,
		DurationMinutes: c.DurationMinutes,
		BranchID:        c.BranchID,
		BranchName:      c.BranchName,
	}
}

// ClassCreateRequest is the payload for creating a class.
type ClassCreateRequest struct {
	Name            string     `json:"name" binding:"required"`
	Subject         string     `json:"subject" binding:"required"`
	Level           string     `json:"level"`
	BranchID        string     `json:"branchId" binding:"required"`
	ClassroomID     string     `json:"classroomId"`
	StartTime       time.Time  `json:"startTime" binding:"required"`
	EndTime         *time.Time `json:"endTime"`
	DurationMinutes int        `json:"durationMinutes" binding:"required,min=1"`
	Capacity        int        `json:"capacity" binding:"required,min=1"`
	MonthlyFee      Money      `json:"monthlyFee"`
}

// ClassUpdateRequest carries partial updates; nil fields are left untouched.
type ClassUpdateRequest struct {
	Name            *string    `json:"name"`
	Subject         *string    `json:"subject"`
	Level           *string    `json:"level"`
	ClassroomID     *string    `json:"classroomId"`
	StartTime       *time.Time `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	DurationMinutes *int       `json:"durationMinutes"`
	Capacity        *int       `json:"capacity"`
	MonthlyFee      *Money     `json:"monthlyFee"`
	Status          *string    `json:"status"`
}
