package classRepo

import (
	"time"

	"tutoria/models"
)

// ClassRepository defines data access for classes.
type ClassRepository interface {
	Create(class *models.Class) error
	Update(class *models.Class) error
	Delete(id string) error
	GetByID(id string) (*models.Class, error)
	GetAll() ([]models.Class, error)
	ListByBranch(branchID string) ([]models.Class, error)

	// ListByTutorBetween returns the tutor's classes whose start time falls in
	// [from, to). This feeds the schedule-conflict checker.
	ListByTutorBetween(tutorID string, from, to time.Time) ([]models.Class, error)

	// SetTutor assigns (or with empty IDs clears) the tutor on a class.
	SetTutor(classID, tutorID, tutorName string) error

	// ReserveSeat atomically increments the enrolled count while capacity
	// remains; it returns ErrClassFull when the class is at capacity.
	ReserveSeat(classID string) error
	ReleaseSeat(classID string) error
}
