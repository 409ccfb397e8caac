package scheduling

import (
	"testing"
	"time"

	"tutoria/models"

	"github.com/stretchr/testify/assert"
)

var day = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func candidate(hour, min, duration int, branch string) models.CandidateAssignment {
	return models.CandidateAssignment{
		ClassID:         "class-under-assignment",
		TutorID:         "tutor-1",
		StartTime:       at(hour, min),
		DurationMinutes: duration,
		BranchID:        branch,
	}
}

func booking(id string, start, end time.Time, branch string) models.BookedClass {
	return models.BookedClass{
		ClassID:   id,
		Subject:   "Mathematics",
		StartTime: start,
		EndTime:   &end,
		BranchID:  branch,
	}
}

func TestCheckSchedule_EmptyBookings(t *testing.T) {
	report := CheckSchedule(candidate(14, 0, 60, "A"), nil)

	assert.True(t, report.Empty())
	assert.Empty(t, report.Direct)
	assert.Empty(t, report.Travel)
}

func TestCheckSchedule_NoConflictWhenFarApartSameBranch(t *testing.T) {
	b := booking("b1", at(9, 0), at(10, 0), "A")

	report := CheckSchedule(candidate(14, 0, 60, "A"), []models.BookedClass{b})

	assert.True(t, report.Empty())
}

func TestCheckSchedule_OverlapIsDirectRegardlessOfBranch(t *testing.T) {
	sameBranch := booking("b1", at(13, 30), at(14, 30), "A")
	otherBranch := booking("b2", at(14, 30), at(15, 30), "B")

	report := CheckSchedule(candidate(14, 0, 60, "A"), []models.BookedClass{sameBranch, otherBranch})

	assert.Len(t, report.Direct, 2)
	assert.Empty(t, report.Travel, "a direct conflict must never also be a travel conflict")
}

func TestCheckSchedule_ContainedBookingIsDirect(t *testing.T) {
	b := booking("b1", at(14, 15), at(14, 45), "A")

	report := CheckSchedule(candidate(14, 0, 60, "A"), []models.BookedClass{b})

	assert.Len(t, report.Direct, 1)
}

func TestCheckSchedule_BackToBackSameBranchIsAllowed(t *testing.T) {
	before := booking("b1", at(13, 0), at(14, 0), "A") // ends exactly at candidate start
	after := booking("b2", at(15, 0), at(16, 0), "A")  // starts exactly at candidate end

	report := CheckSchedule(candidate(14, 0, 60, "A"), []models.BookedClass{before, after})

	assert.True(t, report.Empty(), "boundary-touching windows are not overlaps")
}

func TestCheckSchedule_BackToBackOtherBranchIsTravelConflict(t *testing.T) {
	before := booking("b1", at(13, 30), at(14, 0), "B")
	after := booking("b2", at(15, 0), at(15, 30), "B")

	report := CheckSchedule(candidate(14, 0, 60, "A"), []models.BookedClass{before, after})

	assert.Empty(t, report.Direct)
	assert.Len(t, report.Travel, 2)
}

func TestCheckSchedule_ExactlyOneHourGapIsEnough(t *testing.T) {
	// Ends at 13:00, candidate starts 14:00: exactly the full buffer.
	before := booking("b1", at(12, 0), at(13, 0), "B")
	// Starts at 16:00, candidate ends 15:00: exactly the full buffer.
	after := booking("b2", at(16, 0), at(17, 0), "B")

	report := CheckSchedule(candidate(14, 0, 60, "A"), []models.BookedClass{before, after})

	assert.True(t, report.Empty(), "a gap of exactly one hour leaves enough travel time")
}

func TestCheckSchedule_FiftyNineMinuteGapIsTravelConflict(t *testing.T) {
	b := booking("b1", at(12, 1), at(13, 1), "B") // ends 59 minutes before start

	report := CheckSchedule(candidate(14, 0, 60, "A"), []models.BookedClass{b})

	assert.Empty(t, report.Direct)
	assert.Len(t, report.Travel, 1)
}

func TestCheckSchedule_SameBranchNeverTravelConflict(t *testing.T) {
	before := booking("b1", at(13, 30), at(14, 0), "A")
	after := booking("b2", at(15, 10), at(16, 0), "A")

	report := CheckSchedule(candidate(14, 0, 60, "A"), []models.BookedClass{before, after})

	assert.True(t, report.Empty())
}

func TestCheckSchedule_EndDerivedFromDurationWhenEndTimeAbsent(t *testing.T) {
	b := models.BookedClass{
		ClassID:         "b1",
		Subject:         "Science",
		StartTime:       at(13, 30),
		DurationMinutes: 45, // derived end 14:15 overlaps candidate
		BranchID:        "A",
	}

	report := CheckSchedule(candidate(14, 0, 60, "A"), []models.BookedClass{b})

	assert.Len(t, report.Direct, 1)
}

func TestCheckSchedule_PreservesInputOrder(t *testing.T) {
	d1 := booking("d1", at(14, 0), at(14, 30), "A")
	t1 := booking("t1", at(13, 30), at(14, 0), "B")
	d2 := booking("d2", at(14, 30), at(15, 0), "B")
	t2 := booking("t2", at(15, 0), at(15, 30), "C")

	report := CheckSchedule(candidate(14, 0, 60, "A"), []models.BookedClass{d1, t1, d2, t2})

	assert.Equal(t, []string{"d1", "d2"}, []string{report.Direct[0].ClassID, report.Direct[1].ClassID})
	assert.Equal(t, []string{"t1", "t2"}, []string{report.Travel[0].ClassID, report.Travel[1].ClassID})
}

func TestCheckSchedule_ZeroDurationCandidate(t *testing.T) {
	b := booking("b1", at(13, 30), at(14, 30), "A")

	// An instantaneous window strictly inside a booking still overlaps it.
	inside := CheckSchedule(candidate(14, 0, 0, "A"), []models.BookedClass{b})
	assert.Len(t, inside.Direct, 1)

	// At the booking's end boundary it does not.
	boundary := CheckSchedule(candidate(14, 30, 0, "A"), []models.BookedClass{b})
	assert.Empty(t, boundary.Direct)
}
