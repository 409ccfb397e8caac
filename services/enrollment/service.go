package enrollment

import (
	"errors"
	"fmt"
	"time"

	classRepo "tutoria/database/repository/class"
	enrollmentRepo "tutoria/database/repository/enrollment"
	studentRepo "tutoria/database/repository/student"
	"tutoria/models"
	"tutoria/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrAlreadyEnrolled rejects a second active enrollment of the same
	// student in the same class.
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this class")
	// ErrClassFull mirrors the repository's capacity rejection.
	ErrClassFull = classRepo.ErrClassFull
	// ErrNotOwner is returned when a parent enrolls a student they do not own.
	ErrNotOwner = errors.New("student does not belong to this parent")
)

// EnrollmentService manages class enrollments.
type EnrollmentService interface {
	Enroll(parentID string, req models.EnrollRequest) (*models.Enrollment, error)
	Withdraw(parentID, enrollmentID string) error
	ListByParent(parentID string) ([]models.Enrollment, error)
	ListByClass(classID string) ([]models.Enrollment, error)
}

// DefaultEnrollmentService is the production implementation.
type DefaultEnrollmentService struct {
	Repo        enrollmentRepo.EnrollmentRepository
	ClassRepo   classRepo.ClassRepository
	StudentRepo studentRepo.StudentRepository
}

// Enroll places a student in a class. The seat is reserved atomically against
// the class capacity; a full class rejects the enrollment.
func (s *DefaultEnrollmentService) Enroll(parentID string, req models.EnrollRequest) (*models.Enrollment, error) {
	student, err := s.StudentRepo.GetByID(req.StudentID)
	if err != nil {
		return nil, err
	}
	if student.ParentID != parentID {
		return nil, ErrNotOwner
	}

	if _, err := s.ClassRepo.GetByID(req.ClassID); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetActive(req.ClassID, req.StudentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyEnrolled
	}

	if err := s.ClassRepo.ReserveSeat(req.ClassID); err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		ID:         uuid.New().String(),
		ClassID:    req.ClassID,
		StudentID:  req.StudentID,
		ParentID:   parentID,
		Status:     models.EnrollmentActive,
		EnrolledAt: time.Now(),
	}
	if err := s.Repo.Create(enrollment); err != nil {
		// Give the seat back; the enrollment record never existed.
		if relErr := s.ClassRepo.ReleaseSeat(req.ClassID); relErr != nil {
			utils.GetLogger().Error("failed to release seat after enrollment failure",
				zap.String("classID", req.ClassID), zap.Error(relErr))
		}
		return nil, err
	}

	utils.GetLogger().Info("student enrolled",
		zap.String("enrollmentID", enrollment.ID),
		zap.String("classID", req.ClassID),
		zap.String("studentID", req.StudentID))
	return enrollment, nil
}

// Withdraw marks an enrollment withdrawn and releases the seat.
func (s *DefaultEnrollmentService) Withdraw(parentID, enrollmentID string) error {
	enrollment, err := s.Repo.GetByID(enrollmentID)
	if err != nil {
		return err
	}
	if enrollment.ParentID != parentID {
		return fmt.Errorf("enrollment does not belong to this parent")
	}

	if err := s.Repo.Withdraw(enrollmentID, time.Now()); err != nil {
		return err
	}
	if err := s.ClassRepo.ReleaseSeat(enrollment.ClassID); err != nil {
		utils.GetLogger().Error("failed to release seat after withdrawal",
			zap.String("classID", enrollment.ClassID), zap.Error(err))
	}
	return nil
}

// ListByParent returns a parent's enrollments.
func (s *DefaultEnrollmentService) ListByParent(parentID string) ([]models.Enrollment, error) {
	return s.Repo.ListByParent(parentID)
}

// ListByClass returns a class roster (staff only).
func (s *DefaultEnrollmentService) ListByClass(classID string) ([]models.Enrollment, error) {
	return s.Repo.ListByClass(classID)
}
