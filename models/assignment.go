package models

import "time"

// CandidateAssignment is the tutor-to-class pairing being validated before commit.
type CandidateAssignment struct {
	ClassID         string    `json:"classId"`
	TutorID         string    `json:"tutorId"`
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	BranchID        string    `json:"branchId"`
}

// Window returns the candidate's half-open time window [start, end).
func (c CandidateAssignment) Window() (time.Time, time.Time) {
	return c.StartTime, c.StartTime.Add(time.Duration(c.DurationMinutes) * time.Minute)
}

// BookedClass is one class already on the candidate tutor's calendar for the day
// under consideration. EndTime may be absent; EndAt derives it from the duration.
type BookedClass struct {
	ClassID         string     `json:"classId"`
	Subject         string     `json:"subject"`
	Level           string     `json:"level,omitempty"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationMinutes int        `json:"durationMinutes"`
	BranchID        string     `json:"branchId,omitempty"`
	BranchName      string     `json:"branchName,omitempty"`
}

// EndAt returns the booking's end instant, preferring the explicit end time.
func (b BookedClass) EndAt() time.Time {
	if b.EndTime != nil {
		return *b.EndTime
	}
	return b.StartTime.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// ConflictReport categorizes a candidate assignment's clashes with existing
// bookings. Direct holds time overlaps; Travel holds cross-branch bookings
// within the travel buffer. A booking appears in at most one of the two, and
// input order is preserved within each.
type ConflictReport struct {
	Direct []BookedClass `json:"direct"`
	Travel []BookedClass `json:"travel"`
}

// Empty reports whether no conflicts were found.
func (r ConflictReport) Empty() bool {
	return len(r.Direct) == 0 && len(r.Travel) == 0
}

// Total returns the number of conflicting bookings across both categories.
func (r ConflictReport) Total() int {
	return len(r.Direct) + len(r.Travel)
}

// ReassignRequest is the payload for committing a tutor assignment.
type ReassignRequest struct {
	TutorID    string `json:"tutorId" binding:"required"`
	SessionKey string `json:"sessionKey,omitempty"`
	Force      bool   `json:"force,omitempty"`
}

// AssignmentPreviewRequest is the payload for a conflict preview.
type AssignmentPreviewRequest struct {
	TutorID    string `json:"tutorId" binding:"required"`
	SessionKey string `json:"sessionKey,omitempty"`
}

// AssignmentPreview is returned to the assignment dialog on tutor selection.
type AssignmentPreview struct {
	TutorID   string         `json:"tutorId"`
	TutorName string         `json:"tutorName"`
	Report    ConflictReport `json:"report"`
	Message   string         `json:"message,omitempty"`
}
