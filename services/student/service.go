package student

import (
	"errors"

	studentRepo "tutoria/database/repository/student"
	"tutoria/models"

	"github.com/google/uuid"
)

// ErrNotOwner is returned when a parent touches a student they do not own.
var ErrNotOwner = errors.New("student does not belong to this parent")

// StudentService manages parent-owned student records.
type StudentService interface {
	CreateStudent(parentID string, req models.StudentCreateRequest) (*models.Student, error)
	UpdateStudent(parentID, studentID string, req models.StudentUpdateRequest) (*models.Student, error)
	DeleteStudent(parentID, studentID string) error
	GetStudent(parentID, studentID string) (*models.Student, error)
	ListStudents(parentID string) ([]models.Student, error)
}

// DefaultStudentService is the production implementation.
type DefaultStudentService struct {
	Repo studentRepo.StudentRepository
}

// CreateStudent adds a student under the parent's account.
func (s *DefaultStudentService) CreateStudent(parentID string, req models.StudentCreateRequest) (*models.Student, error) {
	student := &models.Student{
		ID:          uuid.New().String(),
		ParentID:    parentID,
		FullName:    req.FullName,
		DateOfBirth: req.DateOfBirth,
		Level:       req.Level,
		School:      req.School,
		Notes:       req.Notes,
	}
	if err := s.Repo.Create(student); err != nil {
		return nil, err
	}
	return student, nil
}

// UpdateStudent applies a partial update after an ownership check.
func (s *DefaultStudentService) UpdateStudent(parentID, studentID string, req models.StudentUpdateRequest) (*models.Student, error) {
	student, err := s.owned(parentID, studentID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		student.FullName = *req.FullName
	}
	if req.DateOfBirth != nil {
		student.DateOfBirth = *req.DateOfBirth
	}
	if req.Level != nil {
		student.Level = *req.Level
	}
	if req.School != nil {
		student.School = *req.School
	}
	if req.Notes != nil {
		student.Notes = *req.Notes
	}

	if err := s.Repo.Update(student); err != nil {
		return nil, err
	}
	return student, nil
}

// DeleteStudent removes a student after an ownership check.
func (s *DefaultStudentService) DeleteStudent(parentID, studentID string) error {
	if _, err := s.owned(parentID, studentID); err != nil {
		return err
	}
	return s.Repo.Delete(studentID)
}

// GetStudent fetches a student after an ownership check.
func (s *DefaultStudentService) GetStudent(parentID, studentID string) (*models.Student, error) {
	return s.owned(parentID, studentID)
}

// ListStudents returns the parent's students.
func (s *DefaultStudentService) ListStudents(parentID string) ([]models.Student, error) {
	return s.Repo.ListByParent(parentID)
}

func (s *DefaultStudentService) owned(parentID, studentID string) (*models.Student, error) {
	student, err := s.Repo.GetByID(studentID)
	if err != nil {
		return nil, err
	}
	if student.ParentID != parentID {
		return nil, ErrNotOwner
	}
	return student, nil
}
