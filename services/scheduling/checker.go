// Package scheduling holds the tutor schedule-conflict core: a pure checker
// over a day's bookings, a message formatter, and a preview service that
// feeds the assignment dialog.
package scheduling

import (
	"time"

	"tutoria/models"
)

// TravelBuffer is the minimum gap required between classes at different
// branches. A booking at another branch ending within this window before the
// candidate starts (or starting within it after the candidate ends) leaves
// the tutor no time to travel.
const TravelBuffer = time.Hour

// CheckSchedule classifies a candidate assignment's conflicts against the
// tutor's existing bookings for the same day. Bookings must already be
// filtered to the tutor, exclude the candidate's own class, and exclude
// unassigned classes.
//
// A booking whose window overlaps the candidate's is a direct conflict
// regardless of branch; direct conflicts take precedence, so such a booking
// is never also reported as a travel conflict. Windows are half-open
// [start, end), so back-to-back classes touching at a boundary do not
// overlap. Cross-branch bookings that end within TravelBuffer before the
// candidate starts, or start within TravelBuffer after it ends, are travel
// conflicts; a gap of exactly TravelBuffer is sufficient. Same-branch
// bookings never produce travel conflicts.
//
// Input order is preserved within each category.
func CheckSchedule(candidate models.CandidateAssignment, booked []models.BookedClass) models.ConflictReport {
	cs, ce := candidate.Window()
	earliest := cs.Add(-TravelBuffer)
	latest := ce.Add(TravelBuffer)

	var report models.ConflictReport
	for _, b := range booked {
		es := b.StartTime
		ee := b.EndAt()

		if cs.Before(ee) && ce.After(es) {
			report.Direct = append(report.Direct, b)
			continue
		}

		if b.BranchID == candidate.BranchID {
			continue
		}

		// ends in (cs-buffer, cs], i.e. less than a full buffer before start
		endsTooClose := ee.After(earliest) && !ee.After(cs)
		// starts in [ce, ce+buffer), i.e. less than a full buffer after end
		startsTooClose := !es.Before(ce) && es.Before(latest)
		if endsTooClose || startsTooClose {
			report.Travel = append(report.Travel, b)
		}
	}
	return report
}
