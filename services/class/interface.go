package class

import (
	"context"

	branchRepo "tutoria/database/repository/branch"
	classRepo "tutoria/database/repository/class"
	staffRepo "tutoria/database/repository/staff"
	"tutoria/models"
	"tutoria/services/notification"
	"tutoria/services/scheduling"
)

// ClassService manages classes and tutor assignments.
type ClassService interface {
	CreateClass(req models.ClassCreateRequest) (*models.Class, error)
	UpdateClass(id string, req models.ClassUpdateRequest) (*models.Class, error)
	DeleteClass(id string) error
	GetClassByID(id string) (*models.Class, error)
	ListClasses(branchID string) ([]models.Class, error)

	// PreviewAssignment computes the conflict report shown in the assignment
	// dialog when a tutor is selected.
	PreviewAssignment(ctx context.Context, classID string, req models.AssignmentPreviewRequest) (*models.AssignmentPreview, error)
	// ReassignTutor commits an assignment, gated on the conflict report.
	ReassignTutor(ctx context.Context, classID string, req models.ReassignRequest) (*models.Class, error)
	// UnassignTutor clears the tutor from a class.
	UnassignTutor(ctx context.Context, classID string) (*models.Class, error)
}

// DefaultClassService is the production implementation.
type DefaultClassService struct {
	Repo       classRepo.ClassRepository
	StaffRepo  staffRepo.StaffRepository
	BranchRepo branchRepo.BranchRepository
	Previewer  *scheduling.ConflictPreviewer
	Notifier   notification.NotificationService
}
