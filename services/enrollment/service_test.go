package enrollment

import (
	"fmt"
	"testing"
	"time"

	classRepo "tutoria/database/repository/class"
	"tutoria/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEnrollmentRepo is an in-memory EnrollmentRepository.
type fakeEnrollmentRepo struct {
	records   map[string]*models.Enrollment
	createErr error
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{records: make(map[string]*models.Enrollment)}
}

func (f *fakeEnrollmentRepo) Create(e *models.Enrollment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.records[e.ID] = e
	return nil
}

func (f *fakeEnrollmentRepo) GetByID(id string) (*models.Enrollment, error) {
	e, ok := f.records[id]
	if !ok {
		return nil, fmt.Errorf("enrollment %s not found", id)
	}
	return e, nil
}

func (f *fakeEnrollmentRepo) GetActive(classID, studentID string) (*models.Enrollment, error) {
	for _, e := range f.records {
		if e.ClassID == classID && e.StudentID == studentID && e.Status == models.EnrollmentActive {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEnrollmentRepo) ListByParent(parentID string) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range f.records {
		if e.ParentID == parentID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentRepo) ListByClass(classID string) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range f.records {
		if e.ClassID == classID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentRepo) Withdraw(id string, at time.Time) error {
	e, ok := f.records[id]
	if !ok {
		return fmt.Errorf("enrollment %s not found", id)
	}
	e.Status = models.EnrollmentWithdrawn
	e.WithdrawnAt = &at
	return nil
}

// fakeSeatClassRepo tracks seat counts against capacity.
type fakeSeatClassRepo struct {
	classes map[string]*models.Class
}

func (f *fakeSeatClassRepo) Create(*models.Class) error { return nil }
func (f *fakeSeatClassRepo) Update(*models.Class) error { return nil }
func (f *fakeSeatClassRepo) Delete(string) error        { return nil }

func (f *fakeSeatClassRepo) GetByID(id string) (*models.Class, error) {
	c, ok := f.classes[id]
	if !ok {
		return nil, fmt.Errorf("class %s not found", id)
	}
	return c, nil
}

func (f *fakeSeatClassRepo) GetAll() ([]models.Class, error)             { return nil, nil }
func (f *fakeSeatClassRepo) ListByBranch(string) ([]models.Class, error) { return nil, nil }
func (f *fakeSeatClassRepo) ListByTutorBetween(string, time.Time, time.Time) ([]models.Class, error) {
	return nil, nil
}
func (f *fakeSeatClassRepo) SetTutor(string, string, string) error { return nil }

func (f *fakeSeatClassRepo) ReserveSeat(id string) error {
	c, ok := f.classes[id]
	if !ok {
		return fmt.Errorf("class %s not found", id)
	}
	if c.EnrolledCount >= c.Capacity {
		return classRepo.ErrClassFull
	}
	c.EnrolledCount++
	return nil
}

func (f *fakeSeatClassRepo) ReleaseSeat(id string) error {
	if c, ok := f.classes[id]; ok && c.EnrolledCount > 0 {
		c.EnrolledCount--
	}
	return nil
}

// fakeStudentRepo serves a fixed set of students.
type fakeStudentRepo struct {
	students map[string]*models.Student
}

func (f *fakeStudentRepo) Create(*models.Student) error { return nil }
func (f *fakeStudentRepo) Update(*models.Student) error { return nil }
func (f *fakeStudentRepo) Delete(string) error          { return nil }

func (f *fakeStudentRepo) GetByID(id string) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, fmt.Errorf("student %s not found", id)
	}
	return s, nil
}

func (f *fakeStudentRepo) ListByParent(string) ([]models.Student, error) { return nil, nil }

func enrollmentFixture(capacity int) (*DefaultEnrollmentService, *fakeSeatClassRepo, *fakeEnrollmentRepo) {
	classes := &fakeSeatClassRepo{classes: map[string]*models.Class{
		"c-math": {ID: "c-math", Capacity: capacity},
	}}
	enrollments := newFakeEnrollmentRepo()
	svc := &DefaultEnrollmentService{
		Repo:      enrollments,
		ClassRepo: classes,
		StudentRepo: &fakeStudentRepo{students: map[string]*models.Student{
			"s-1": {ID: "s-1", ParentID: "p-1"},
			"s-2": {ID: "s-2", ParentID: "p-2"},
		}},
	}
	return svc, classes, enrollments
}

func TestEnroll_ReservesSeat(t *testing.T) {
	svc, classes, _ := enrollmentFixture(2)

	created, err := svc.Enroll("p-1", models.EnrollRequest{ClassID: "c-math", StudentID: "s-1"})

	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentActive, created.Status)
	assert.Equal(t, 1, classes.classes["c-math"].EnrolledCount)
}

func TestEnroll_FullClassRejected(t *testing.T) {
	svc, _, _ := enrollmentFixture(0)

	_, err := svc.Enroll("p-1", models.EnrollRequest{ClassID: "c-math", StudentID: "s-1"})

	assert.ErrorIs(t, err, ErrClassFull)
}

func TestEnroll_DuplicateRejected(t *testing.T) {
	svc, classes, _ := enrollmentFixture(5)

	_, err := svc.Enroll("p-1", models.EnrollRequest{ClassID: "c-math", StudentID: "s-1"})
	require.NoError(t, err)

	_, err = svc.Enroll("p-1", models.EnrollRequest{ClassID: "c-math", StudentID: "s-1"})
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	assert.Equal(t, 1, classes.classes["c-math"].EnrolledCount, "the duplicate must not hold a seat")
}

func TestEnroll_OtherParentsStudentRejected(t *testing.T) {
	svc, _, _ := enrollmentFixture(5)

	_, err := svc.Enroll("p-1", models.EnrollRequest{ClassID: "c-math", StudentID: "s-2"})

	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestEnroll_CreateFailureReleasesSeat(t *testing.T) {
	svc, classes, enrollments := enrollmentFixture(2)
	enrollments.createErr = fmt.Errorf("mongo unavailable")

	_, err := svc.Enroll("p-1", models.EnrollRequest{ClassID: "c-math", StudentID: "s-1"})

	require.Error(t, err)
	assert.Equal(t, 0, classes.classes["c-math"].EnrolledCount)
}

func TestWithdraw_ReleasesSeat(t *testing.T) {
	svc, classes, _ := enrollmentFixture(2)
	created, err := svc.Enroll("p-1", models.EnrollRequest{ClassID: "c-math", StudentID: "s-1"})
	require.NoError(t, err)

	require.NoError(t, svc.Withdraw("p-1", created.ID))

	assert.Equal(t, 0, classes.classes["c-math"].EnrolledCount)
	stored, err := svc.Repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentWithdrawn, stored.Status)
}

func TestWithdraw_OtherParentRejected(t *testing.T) {
	svc, _, _ := enrollmentFixture(2)
	created, err := svc.Enroll("p-1", models.EnrollRequest{ClassID: "c-math", StudentID: "s-1"})
	require.NoError(t, err)

	assert.Error(t, svc.Withdraw("p-2", created.ID))
}
