package models

import "time"

// Student is a child record owned by a parent account.
type Student struct {
	ID          string    `bson:"id" json:"id"`
	ParentID    string    `bson:"parent_id" json:"parentId"`
	FullName    string    `bson:"full_name" json:"fullName"`
	DateOfBirth string    `bson:"date_of_birth,omitempty" json:"dateOfBirth,omitempty"` // "2006-01-02"
	Level       string    `bson:"level,omitempty" json:"level,omitempty"`
	School      string    `bson:"school,omitempty" json:"school,omitempty"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// StudentCreateRequest is the payload for adding a student.
type StudentCreateRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	DateOfBirth string `json:"dateOfBirth"`
	Level       string `json:"level"`
	School      string `json:"school"`
	Notes       string `json:"notes"`
}

// StudentUpdateRequest carries partial updates; nil fields are left untouched.
type StudentUpdateRequest struct {
	FullName    *string `json:"fullName"`
	DateOfBirth *string `json:"dateOfBirth"`
	Level       *string `json:"level"`
	School      *string `json:"school"`
	Notes       *string `json:"notes"`
}
