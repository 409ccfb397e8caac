package staffRepo

import "tutoria/models"

// StaffRepository defines data access for staff accounts.
type StaffRepository interface {
	Create(staff *models.Staff) error
	Update(staff *models.Staff) error
	Delete(id string) error
	GetByID(id string) (*models.Staff, error)
	// GetByEmail returns (nil, nil) when no account matches.
	GetByEmail(email string) (*models.Staff, error)
	GetAll() ([]models.Staff, error)
	ListByRole(role string) ([]models.Staff, error)
}
