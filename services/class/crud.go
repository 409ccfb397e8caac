package class

import (
	"fmt"

	"tutoria/models"
	"tutoria/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateClass validates the branch and inserts a new class.
func (s *DefaultClassService) CreateClass(req models.ClassCreateRequest) (*models.Class, error) {
	branch, err := s.BranchRepo.GetByID(req.BranchID)
	if err != nil {
		return nil, fmt.Errorf("branch lookup failed: %w", err)
	}
	if req.ClassroomID != "" && !branchHasRoom(branch, req.ClassroomID) {
		return nil, fmt.Errorf("branch %s has no classroom %s", branch.Name, req.ClassroomID)
	}

	class := &models.Class{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Subject:         req.Subject,
		Level:           req.Level,
		BranchID:        branch.ID,
		BranchName:      branch.Name,
		ClassroomID:     req.ClassroomID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: req.DurationMinutes,
		Capacity:        req.Capacity,
		MonthlyFee:      req.MonthlyFee,
		Status:          "open",
	}
	if err := s.Repo.Create(class); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("class created",
		zap.String("classID", class.ID), zap.String("branch", branch.Name))
	return class, nil
}

// UpdateClass applies a partial update to a class.
func (s *DefaultClassService) UpdateClass(id string, req models.ClassUpdateRequest) (*models.Class, error) {
	class, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		class.Name = *req.Name
	}
	if req.Subject != nil {
		class.Subject = *req.Subject
	}
	if req.Level != nil {
		class.Level = *req.Level
	}
	if req.ClassroomID != nil {
		branch, err := s.BranchRepo.GetByID(class.BranchID)
		if err != nil {
			return nil, fmt.Errorf("branch lookup failed: %w", err)
		}
		if *req.ClassroomID != "" && !branchHasRoom(branch, *req.ClassroomID) {
			return nil, fmt.Errorf("branch %s has no classroom %s", branch.Name, *req.ClassroomID)
		}
		class.ClassroomID = *req.ClassroomID
	}
	if req.StartTime != nil {
		class.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		class.EndTime = req.EndTime
	}
	if req.DurationMinutes != nil {
		class.DurationMinutes = *req.DurationMinutes
	}
	if req.Capacity != nil {
		class.Capacity = *req.Capacity
	}
	if req.MonthlyFee != nil {
		class.MonthlyFee = *req.MonthlyFee
	}
	if req.Status != nil {
		class.Status = *req.Status
	}

	if err := s.Repo.Update(class); err != nil {
		return nil, err
	}
	return class, nil
}

// DeleteClass removes a class.
func (s *DefaultClassService) DeleteClass(id string) error {
	return s.Repo.Delete(id)
}

// GetClassByID fetches a single class.
func (s *DefaultClassService) GetClassByID(id string) (*models.Class, error) {
	return s.Repo.GetByID(id)
}

// ListClasses returns all classes, or the classes of one branch.
func (s *DefaultClassService) ListClasses(branchID string) ([]models.Class, error) {
	if branchID == "" {
		return s.Repo.GetAll()
	}
	return s.Repo.ListByBranch(branchID)
}

func branchHasRoom(branch *models.Branch, roomID string) bool {
	for _, room := range branch.Classrooms {
		if room.ID == roomID {
			return true
		}
	}
	return false
}
