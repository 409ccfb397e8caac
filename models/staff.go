package models

import "time"

// Staff roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
	RoleTutor = "tutor"
)

// Staff is a centre employee: admins, front-desk staff and tutors.
type Staff struct {
	ID           string    `bson:"id" json:"id"`
	FullName     string    `bson:"full_name" json:"fullName"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	BranchID     string    `bson:"branch_id,omitempty" json:"branchId,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Subjects     []string  `bson:"subjects,omitempty" json:"subjects,omitempty"` // tutors only
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// StaffCreateRequest is the payload for registering a staff account.
type StaffCreateRequest struct {
	FullName string   `json:"fullName" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=8"`
	Role     string   `json:"role" binding:"required,oneof=admin staff tutor"`
	BranchID string   `json:"branchId"`
	Phone    string   `json:"phone"`
	Subjects []string `json:"subjects"`
}

// StaffUpdateRequest carries partial updates; nil fields are left untouched.
type StaffUpdateRequest struct {
	FullName *string   `json:"fullName"`
	Role     *string   `json:"role"`
	BranchID *string   `json:"branchId"`
	Phone    *string   `json:"phone"`
	Subjects *[]string `json:"subjects"`
	Active   *bool     `json:"active"`
}
