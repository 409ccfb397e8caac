package staff

import (
	"fmt"

	staffRepo "tutoria/database/repository/staff"
	"tutoria/models"
	"tutoria/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// StaffService manages staff accounts and staff sign-in.
type StaffService interface {
	CreateStaff(req models.StaffCreateRequest) (*models.Staff, error)
	UpdateStaff(id string, req models.StaffUpdateRequest) (*models.Staff, error)
	DeleteStaff(id string) error
	GetStaffByID(id string) (*models.Staff, error)
	ListStaff(role string) ([]models.Staff, error)
	ListTutors() ([]models.Staff, error)

	Authenticate(email, password string) (*models.AuthResponse, error)
	RevokeToken(staffID string) error
}

// DefaultStaffService is the production implementation.
type DefaultStaffService struct {
	Repo staffRepo.StaffRepository
}

// CreateStaff registers a new staff account with a bcrypt-hashed password.
func (s *DefaultStaffService) CreateStaff(req models.StaffCreateRequest) (*models.Staff, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("a staff account with email %s already exists", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	staff := &models.Staff{
		ID:           uuid.New().String(),
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		BranchID:     req.BranchID,
		Phone:        req.Phone,
		Subjects:     req.Subjects,
		Active:       true,
	}
	if err := s.Repo.Create(staff); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("staff account created",
		zap.String("staffID", staff.ID), zap.String("role", staff.Role))
	return staff, nil
}

// UpdateStaff applies a partial update to a staff account.
func (s *DefaultStaffService) UpdateStaff(id string, req models.StaffUpdateRequest) (*models.Staff, error) {
	staff, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		staff.FullName = *req.FullName
	}
	if req.Role != nil {
		staff.Role = *req.Role
	}
	if req.BranchID != nil {
		staff.BranchID = *req.BranchID
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Subjects != nil {
		staff.Subjects = *req.Subjects
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := s.Repo.Update(staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// DeleteStaff removes a staff account.
func (s *DefaultStaffService) DeleteStaff(id string) error {
	return s.Repo.Delete(id)
}

// GetStaffByID fetches a single staff account.
func (s *DefaultStaffService) GetStaffByID(id string) (*models.Staff, error) {
	return s.Repo.GetByID(id)
}

// ListStaff returns all staff, or staff with one role.
func (s *DefaultStaffService) ListStaff(role string) ([]models.Staff, error) {
	if role == "" {
		return s.Repo.GetAll()
	}
	return s.Repo.ListByRole(role)
}

// ListTutors returns all tutor accounts, for the assignment dialog dropdown.
func (s *DefaultStaffService) ListTutors() ([]models.Staff, error) {
	return s.Repo.ListByRole(models.RoleTutor)
}
