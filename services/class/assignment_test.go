package class

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"tutoria/models"
	"tutoria/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tutorAssignment struct {
	classID, tutorID, tutorName string
}

// fakeClassRepo serves canned classes and records SetTutor calls.
type fakeClassRepo struct {
	classes map[string]*models.Class
	booked  []models.Class
	listErr error

	setCalls []tutorAssignment
}

func (f *fakeClassRepo) Create(*models.Class) error { return nil }
func (f *fakeClassRepo) Update(*models.Class) error { return nil }
func (f *fakeClassRepo) Delete(string) error        { return nil }

func (f *fakeClassRepo) GetByID(id string) (*models.Class, error) {
	c, ok := f.classes[id]
	if !ok {
		return nil, fmt.Errorf("class %s not found", id)
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClassRepo) GetAll() ([]models.Class, error)             { return nil, nil }
func (f *fakeClassRepo) ListByBranch(string) ([]models.Class, error) { return nil, nil }

func (f *fakeClassRepo) ListByTutorBetween(tutorID string, from, to time.Time) ([]models.Class, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.booked, nil
}

func (f *fakeClassRepo) SetTutor(classID, tutorID, tutorName string) error {
	f.setCalls = append(f.setCalls, tutorAssignment{classID, tutorID, tutorName})
	if c, ok := f.classes[classID]; ok {
		c.TutorID, c.TutorName = tutorID, tutorName
	}
	return nil
}

func (f *fakeClassRepo) ReserveSeat(string) error { return nil }
func (f *fakeClassRepo) ReleaseSeat(string) error { return nil }

// fakeStaffRepo serves a fixed set of staff accounts.
type fakeStaffRepo struct {
	staff map[string]*models.Staff
}

func (f *fakeStaffRepo) Create(*models.Staff) error { return nil }
func (f *fakeStaffRepo) Update(*models.Staff) error { return nil }
func (f *fakeStaffRepo) Delete(string) error        { return nil }

func (f *fakeStaffRepo) GetByID(id string) (*models.Staff, error) {
	s, ok := f.staff[id]
	if !ok {
		return nil, fmt.Errorf("staff %s not found", id)
	}
	return s, nil
}

func (f *fakeStaffRepo) GetByEmail(string) (*models.Staff, error) { return nil, nil }
func (f *fakeStaffRepo) GetAll() ([]models.Staff, error)          { return nil, nil }
func (f *fakeStaffRepo) ListByRole(string) ([]models.Staff, error) {
	return nil, nil
}

// fakeNotifier records assignment notices.
type fakeNotifier struct {
	assignments []models.AssignmentNoticePayload
	payments    []models.PaymentNoticePayload
}

func (f *fakeNotifier) NotifyAssignment(p models.AssignmentNoticePayload) {
	f.assignments = append(f.assignments, p)
}

func (f *fakeNotifier) NotifyPayment(p models.PaymentNoticePayload) {
	f.payments = append(f.payments, p)
}

func testService(repo *fakeClassRepo, notifier *fakeNotifier) *DefaultClassService {
	svc := &DefaultClassService{
		Repo: repo,
		StaffRepo: &fakeStaffRepo{staff: map[string]*models.Staff{
			"tutor-1": {ID: "tutor-1", FullName: "Mr Tan", Role: models.RoleTutor},
			"staff-1": {ID: "staff-1", FullName: "Alex", Role: models.RoleStaff},
		}},
		Previewer: scheduling.NewConflictPreviewer(repo),
	}
	// Assign only when non-nil so a nil *fakeNotifier does not become a
	// non-nil interface value that defeats the service's nil check.
	if notifier != nil {
		svc.Notifier = notifier
	}
	return svc
}

func mathClass() *models.Class {
	return &models.Class{
		ID:              "c-math",
		Name:            "P5 Maths",
		Subject:         "Maths",
		Level:           "P5",
		BranchID:        "b-tampines",
		BranchName:      "Tampines",
		StartTime:       time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC),
		DurationMinutes: 90,
	}
}

func overlappingBooking() models.Class {
	return models.Class{
		ID:              "c-sci",
		Subject:         "Science",
		TutorID:         "tutor-1",
		BranchID:        "b-tampines",
		StartTime:       time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	}
}

func TestReassignTutor_BlockedOnConflict(t *testing.T) {
	repo := &fakeClassRepo{
		classes: map[string]*models.Class{"c-math": mathClass()},
		booked:  []models.Class{overlappingBooking()},
	}
	svc := testService(repo, nil)

	_, err := svc.ReassignTutor(context.Background(), "c-math", models.ReassignRequest{TutorID: "tutor-1"})

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Mr Tan", conflict.TutorName)
	assert.Len(t, conflict.Report.Direct, 1)
	assert.Empty(t, repo.setCalls, "a conflicting assignment must not be committed")
}

func TestReassignTutor_ForceOverridesConflict(t *testing.T) {
	repo := &fakeClassRepo{
		classes: map[string]*models.Class{"c-math": mathClass()},
		booked:  []models.Class{overlappingBooking()},
	}
	svc := testService(repo, nil)

	updated, err := svc.ReassignTutor(context.Background(), "c-math", models.ReassignRequest{TutorID: "tutor-1", Force: true})

	require.NoError(t, err)
	assert.Equal(t, "tutor-1", updated.TutorID)
	require.Len(t, repo.setCalls, 1)
	assert.Equal(t, tutorAssignment{"c-math", "tutor-1", "Mr Tan"}, repo.setCalls[0])
}

func TestReassignTutor_CleanScheduleCommitsAndNotifies(t *testing.T) {
	repo := &fakeClassRepo{classes: map[string]*models.Class{"c-math": mathClass()}}
	notifier := &fakeNotifier{}
	svc := testService(repo, notifier)

	updated, err := svc.ReassignTutor(context.Background(), "c-math", models.ReassignRequest{TutorID: "tutor-1"})

	require.NoError(t, err)
	assert.Equal(t, "Mr Tan", updated.TutorName)
	require.Len(t, notifier.assignments, 1)
	assert.Equal(t, "c-math", notifier.assignments[0].ClassID)
	assert.Equal(t, "tutor-1", notifier.assignments[0].TutorID)
}

func TestReassignTutor_FetchFailureRefusesAssignment(t *testing.T) {
	repo := &fakeClassRepo{
		classes: map[string]*models.Class{"c-math": mathClass()},
		listErr: errors.New("mongo unavailable"),
	}
	svc := testService(repo, nil)

	_, err := svc.ReassignTutor(context.Background(), "c-math", models.ReassignRequest{TutorID: "tutor-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, scheduling.ErrScheduleUnavailable)
	assert.Empty(t, repo.setCalls, "unknown conflict status must refuse the assignment")
}

func TestReassignTutor_NonTutorRejected(t *testing.T) {
	repo := &fakeClassRepo{classes: map[string]*models.Class{"c-math": mathClass()}}
	svc := testService(repo, nil)

	_, err := svc.ReassignTutor(context.Background(), "c-math", models.ReassignRequest{TutorID: "staff-1"})

	assert.ErrorIs(t, err, ErrTutorRequired)
}

func TestPreviewAssignment_ConflictMessage(t *testing.T) {
	repo := &fakeClassRepo{
		classes: map[string]*models.Class{"c-math": mathClass()},
		booked:  []models.Class{overlappingBooking()},
	}
	svc := testService(repo, nil)

	preview, err := svc.PreviewAssignment(context.Background(), "c-math", models.AssignmentPreviewRequest{TutorID: "tutor-1"})

	require.NoError(t, err)
	assert.False(t, preview.Report.Empty())
	assert.Contains(t, preview.Message, "Mr Tan has 1 scheduling conflict")
}

func TestPreviewAssignment_NoConflictsNoMessage(t *testing.T) {
	repo := &fakeClassRepo{classes: map[string]*models.Class{"c-math": mathClass()}}
	svc := testService(repo, nil)

	preview, err := svc.PreviewAssignment(context.Background(), "c-math", models.AssignmentPreviewRequest{TutorID: "tutor-1"})

	require.NoError(t, err)
	assert.True(t, preview.Report.Empty())
	assert.Empty(t, preview.Message)
}

func TestUnassignTutor_ClearsTutor(t *testing.T) {
	c := mathClass()
	c.TutorID, c.TutorName = "tutor-1", "Mr Tan"
	repo := &fakeClassRepo{classes: map[string]*models.Class{"c-math": c}}
	svc := testService(repo, nil)

	updated, err := svc.UnassignTutor(context.Background(), "c-math")

	require.NoError(t, err)
	assert.Empty(t, updated.TutorID)
	require.Len(t, repo.setCalls, 1)
	assert.Equal(t, tutorAssignment{"c-math", "", ""}, repo.setCalls[0])
}
