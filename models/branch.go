package models

import "time"

// Branch is a physical tuition-centre location.
type Branch struct {
	ID         string      `bson:"id" json:"id"`
	Name       string      `bson:"name" json:"name"`
	Address    string      `bson:"address" json:"address"`
	Phone      string      `bson:"phone,omitempty" json:"phone,omitempty"`
	Classrooms []Classroom `bson:"classrooms,omitempty" json:"classrooms,omitempty"`
	CreatedAt  time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time   `bson:"updated_at" json:"updatedAt"`
}

// Classroom is a bookable room inside a branch.
type Classroom struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Capacity int    `bson:"capacity" json:"capacity"`
}

// BranchCreateRequest is the payload for creating a branch.
type BranchCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone"`
}

// BranchUpdateRequest carries partial updates; nil fields are left untouched.
type BranchUpdateRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// ClassroomRequest is the payload for adding a classroom to a branch.
type ClassroomRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}
