package class

import (
	"context"
	"errors"
	"fmt"

	"tutoria/models"
	"tutoria/services/scheduling"
	"tutoria/utils"

	"go.uber.org/zap"
)

// ConflictError blocks a tutor assignment whose conflict report is non-empty.
type ConflictError struct {
	TutorName string
	Report    models.ConflictReport
}

func (e *ConflictError) Error() string {
	return scheduling.FormatConflicts(e.TutorName, e.Report)
}

// ErrTutorRequired is returned when the selected account is not a tutor.
var ErrTutorRequired = errors.New("selected staff member is not a tutor")

// PreviewAssignment runs the conflict checker for a tutor selected in the
// assignment dialog. A booking-fetch failure propagates as an error so the
// caller blocks the assignment instead of assuming no conflicts.
func (s *DefaultClassService) PreviewAssignment(ctx context.Context, classID string, req models.AssignmentPreviewRequest) (*models.AssignmentPreview, error) {
	class, tutor, err := s.loadAssignmentTargets(classID, req.TutorID)
	if err != nil {
		return nil, err
	}

	report, err := s.Previewer.Preview(ctx, previewKey(req.SessionKey, classID), candidateFor(class, tutor.ID))
	if err != nil {
		return nil, err
	}

	preview := &models.AssignmentPreview{
		TutorID:   tutor.ID,
		TutorName: tutor.FullName,
		Report:    report,
	}
	if !report.Empty() {
		preview.Message = scheduling.FormatConflicts(tutor.FullName, report)
	}
	return preview, nil
}

// ReassignTutor commits a tutor assignment. The conflict check runs again at
// commit time; a non-empty report aborts with *ConflictError unless the
// request sets Force.
func (s *DefaultClassService) ReassignTutor(ctx context.Context, classID string, req models.ReassignRequest) (*models.Class, error) {
	class, tutor, err := s.loadAssignmentTargets(classID, req.TutorID)
	if err != nil {
		return nil, err
	}

	report, err := s.Previewer.Preview(ctx, previewKey(req.SessionKey, classID), candidateFor(class, tutor.ID))
	if err != nil {
		return nil, fmt.Errorf("conflict status unknown, assignment refused: %w", err)
	}
	if !report.Empty() && !req.Force {
		return nil, &ConflictError{TutorName: tutor.FullName, Report: report}
	}

	if err := s.Repo.SetTutor(class.ID, tutor.ID, tutor.FullName); err != nil {
		return nil, err
	}
	class.TutorID = tutor.ID
	class.TutorName = tutor.FullName

	utils.GetLogger().Info("tutor assigned",
		zap.String("classID", class.ID),
		zap.String("tutorID", tutor.ID),
		zap.Bool("forced", req.Force && !report.Empty()))

	if s.Notifier != nil {
		s.Notifier.NotifyAssignment(models.AssignmentNoticePayload{
			TutorID:   tutor.ID,
			TutorName: tutor.FullName,
			ClassID:   class.ID,
			ClassName: class.Name,
			StartTime: class.StartTime,
			Branch:    class.BranchName,
		})
	}
	return class, nil
}

// UnassignTutor clears the tutor from a class.
func (s *DefaultClassService) UnassignTutor(ctx context.Context, classID string) (*models.Class, error) {
	class, err := s.Repo.GetByID(classID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SetTutor(class.ID, "", ""); err != nil {
		return nil, err
	}
	class.TutorID = ""
	class.TutorName = ""
	return class, nil
}

func (s *DefaultClassService) loadAssignmentTargets(classID, tutorID string) (*models.Class, *models.Staff, error) {
	class, err := s.Repo.GetByID(classID)
	if err != nil {
		return nil, nil, err
	}
	tutor, err := s.StaffRepo.GetByID(tutorID)
	if err != nil {
		return nil, nil, err
	}
	if tutor.Role != models.RoleTutor {
		return nil, nil, ErrTutorRequired
	}
	return class, tutor, nil
}

func candidateFor(class *models.Class, tutorID string) models.CandidateAssignment {
	return models.CandidateAssignment{
		ClassID:         class.ID,
		TutorID:         tutorID,
		StartTime:       class.StartTime,
		DurationMinutes: class.DurationMinutes,
		BranchID:        class.BranchID,
	}
}

// previewKey falls back to the class ID when the dialog did not send its own
// session key, so repeated selections for the same class still supersede one
// another.
func previewKey(sessionKey, classID string) string {
	if sessionKey != "" {
		return sessionKey
	}
	return classID
}
