package branch

import (
	branchRepo "tutoria/database/repository/branch"
	"tutoria/models"

	"github.com/google/uuid"
)

// BranchService manages branches and their classrooms.
type BranchService interface {
	CreateBranch(req models.BranchCreateRequest) (*models.Branch, error)
	UpdateBranch(id string, req models.BranchUpdateRequest) (*models.Branch, error)
	DeleteBranch(id string) error
	GetBranchByID(id string) (*models.Branch, error)
	ListBranches() ([]models.Branch, error)
	AddClassroom(branchID string, req models.ClassroomRequest) (*models.Classroom, error)
	RemoveClassroom(branchID, roomID string) error
}

// DefaultBranchService is the production implementation.
type DefaultBranchService struct {
	Repo branchRepo.BranchRepository
}

// CreateBranch inserts a new branch.
func (s *DefaultBranchService) CreateBranch(req models.BranchCreateRequest) (*models.Branch, error) {
	branch := &models.Branch{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	}
	if err := s.Repo.Create(branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// UpdateBranch applies a partial update to a branch.
func (s *DefaultBranchService) UpdateBranch(id string, req models.BranchUpdateRequest) (*models.Branch, error) {
	branch, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.Phone != nil {
		branch.Phone = *req.Phone
	}

	if err := s.Repo.Update(branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// DeleteBranch removes a branch.
func (s *DefaultBranchService) DeleteBranch(id string) error {
	return s.Repo.Delete(id)
}

// GetBranchByID fetches a single branch.
func (s *DefaultBranchService) GetBranchByID(id string) (*models.Branch, error) {
	return s.Repo.GetByID(id)
}

// ListBranches returns all branches.
func (s *DefaultBranchService) ListBranches() ([]models.Branch, error) {
	return s.Repo.GetAll()
}

// AddClassroom appends a classroom to a branch.
func (s *DefaultBranchService) AddClassroom(branchID string, req models.ClassroomRequest) (*models.Classroom, error) {
	room := models.Classroom{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Capacity: req.Capacity,
	}
	if err := s.Repo.AddClassroom(branchID, room); err != nil {
		return nil, err
	}
	return &room, nil
}

// RemoveClassroom removes a classroom from a branch.
func (s *DefaultBranchService) RemoveClassroom(branchID, roomID string) error {
	return s.Repo.RemoveClassroom(branchID, roomID)
}
