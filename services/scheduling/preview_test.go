package scheduling

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tutoria/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClassSource returns canned classes, optionally blocking until released
// to simulate a slow fetch.
type stubClassSource struct {
	mu         sync.Mutex
	classes    []models.Class
	err        error
	blockFirst chan struct{}
	calls      int

	gotTutor string
	gotFrom  time.Time
	gotTo    time.Time
}

func (s *stubClassSource) ListByTutorBetween(tutorID string, from, to time.Time) ([]models.Class, error) {
	s.mu.Lock()
	s.calls++
	s.gotTutor, s.gotFrom, s.gotTo = tutorID, from, to
	block := s.blockFirst
	first := s.calls == 1
	s.mu.Unlock()

	if block != nil && first {
		<-block
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.classes, nil
}

func previewCandidate() models.CandidateAssignment {
	return models.CandidateAssignment{
		ClassID:         "c-new",
		TutorID:         "tutor-1",
		StartTime:       time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		BranchID:        "A",
	}
}

func TestPreview_QueriesCandidateDay(t *testing.T) {
	src := &stubClassSource{}
	p := NewConflictPreviewer(src)

	_, err := p.Preview(context.Background(), "dialog-1", previewCandidate())
	require.NoError(t, err)

	assert.Equal(t, "tutor-1", src.gotTutor)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), src.gotFrom)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), src.gotTo)
}

func TestPreview_ExcludesOwnClassAndUnassigned(t *testing.T) {
	src := &stubClassSource{classes: []models.Class{
		// The class being reassigned overlaps itself; it must be ignored.
		{ID: "c-new", TutorID: "tutor-1", StartTime: time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC), DurationMinutes: 60, BranchID: "A"},
		// Unassigned classes are not bookings.
		{ID: "c-open", TutorID: "", StartTime: time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC), DurationMinutes: 60, BranchID: "A"},
		// A real clash.
		{ID: "c-clash", TutorID: "tutor-1", StartTime: time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC), DurationMinutes: 60, BranchID: "A"},
	}}
	p := NewConflictPreviewer(src)

	report, err := p.Preview(context.Background(), "dialog-1", previewCandidate())
	require.NoError(t, err)

	require.Len(t, report.Direct, 1)
	assert.Equal(t, "c-clash", report.Direct[0].ClassID)
}

func TestPreview_FetchFailureIsAnError(t *testing.T) {
	src := &stubClassSource{err: errors.New("mongo unavailable")}
	p := NewConflictPreviewer(src)

	_, err := p.Preview(context.Background(), "dialog-1", previewCandidate())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScheduleUnavailable)
	assert.NotErrorIs(t, err, ErrStalePreview)
}

func TestPreview_StaleResultIsDiscarded(t *testing.T) {
	block := make(chan struct{})
	src := &stubClassSource{blockFirst: block}
	p := NewConflictPreviewer(src)

	staleErr := make(chan error, 1)
	go func() {
		_, err := p.Preview(context.Background(), "dialog-1", previewCandidate())
		staleErr <- err
	}()

	// Wait for the first preview to reach the fetch, then supersede it.
	assert.Eventually(t, func() bool {
		src.mu.Lock()
		defer src.mu.Unlock()
		return src.calls == 1
	}, time.Second, 5*time.Millisecond)

	_, err := p.Preview(context.Background(), "dialog-1", previewCandidate())
	require.NoError(t, err, "the newer preview must win")

	close(block)
	assert.ErrorIs(t, <-staleErr, ErrStalePreview)
}

func TestPreview_IndependentSessionKeys(t *testing.T) {
	src := &stubClassSource{}
	p := NewConflictPreviewer(src)

	_, err1 := p.Preview(context.Background(), "dialog-1", previewCandidate())
	_, err2 := p.Preview(context.Background(), "dialog-2", previewCandidate())

	assert.NoError(t, err1)
	assert.NoError(t, err2)
}
