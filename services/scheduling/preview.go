package scheduling

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tutoria/models"
)

// ErrStalePreview is returned when a newer preview superseded this one before
// its booking fetch resolved. Callers should drop the result silently; the
// newer preview's result is the one to display.
var ErrStalePreview = errors.New("preview superseded by a newer tutor selection")

// ErrScheduleUnavailable marks a failed booking fetch. The tutor's conflict
// status is unknown, which is not the same as having no conflicts.
var ErrScheduleUnavailable = errors.New("tutor schedule unavailable")

// ClassSource is the slice of the class repository the previewer needs.
type ClassSource interface {
	ListByTutorBetween(tutorID string, from, to time.Time) ([]models.Class, error)
}

// ConflictPreviewer computes conflict reports for candidate assignments.
//
// Each open assignment dialog is identified by a session key. Selecting a
// tutor triggers a preview; re-selecting before the previous fetch resolves
// must not let the older response overwrite the newer one, so every preview
// takes a monotonically increasing sequence number per session key and a
// result is discarded if a newer preview started in the meantime.
type ConflictPreviewer struct {
	Classes ClassSource

	mu   sync.Mutex
	seqs map[string]uint64
}

// NewConflictPreviewer creates a previewer backed by the given class source.
func NewConflictPreviewer(classes ClassSource) *ConflictPreviewer {
	return &ConflictPreviewer{
		Classes: classes,
		seqs:    make(map[string]uint64),
	}
}

func (p *ConflictPreviewer) nextSeq(key string) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seqs[key]++
	return p.seqs[key]
}

func (p *ConflictPreviewer) latestSeq(key string) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seqs[key]
}

// Preview fetches the tutor's bookings on the candidate's calendar date and
// runs the conflict checker. A fetch failure is returned as an error: the
// tutor's conflict status is then unknown and callers must block or warn
// rather than assume no conflicts.
func (p *ConflictPreviewer) Preview(ctx context.Context, sessionKey string, candidate models.CandidateAssignment) (models.ConflictReport, error) {
	seq := p.nextSeq(sessionKey)

	booked, err := p.fetchBookings(ctx, candidate)
	if err != nil {
		return models.ConflictReport{}, fmt.Errorf("%w: %w", ErrScheduleUnavailable, err)
	}

	if p.latestSeq(sessionKey) != seq {
		return models.ConflictReport{}, ErrStalePreview
	}
	return CheckSchedule(candidate, booked), nil
}

// fetchBookings loads the tutor's classes for the candidate's day and maps
// them to checker input, dropping the candidate's own class and anything
// without an assigned tutor.
func (p *ConflictPreviewer) fetchBookings(ctx context.Context, candidate models.CandidateAssignment) ([]models.BookedClass, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	y, m, d := candidate.StartTime.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, candidate.StartTime.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	classes, err := p.Classes.ListByTutorBetween(candidate.TutorID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	booked := make([]models.BookedClass, 0, len(classes))
	for _, c := range classes {
		if c.ID == candidate.ClassID || c.TutorID == "" {
			continue
		}
		booked = append(booked, c.Booked())
	}
	return booked, nil
}
