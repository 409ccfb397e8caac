package scheduling

import (
	"testing"
	"time"

	"tutoria/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatConflicts_SingleDirect(t *testing.T) {
	end := time.Date(2026, 3, 9, 15, 30, 0, 0, time.UTC)
	report := models.ConflictReport{
		Direct: []models.BookedClass{{
			Subject:    "Mathematics",
			Level:      "P5",
			StartTime:  time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC),
			EndTime:    &end,
			BranchName: "Tampines",
		}},
	}

	msg := FormatConflicts("Mr. Tan", report)

	assert.Contains(t, msg, "Mr. Tan has 1 scheduling conflict on this day.")
	assert.Contains(t, msg, "Overlapping 1 class:")
	assert.Contains(t, msg, "Mathematics (P5), 14:00-15:30 at Tampines")
	assert.NotContains(t, msg, "travel")
}

func TestFormatConflicts_PluralAndBothSections(t *testing.T) {
	report := models.ConflictReport{
		Direct: []models.BookedClass{
			{Subject: "English", StartTime: time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC), DurationMinutes: 60},
			{Subject: "Science", StartTime: time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC), DurationMinutes: 60},
		},
		Travel: []models.BookedClass{
			{Subject: "Physics", StartTime: time.Date(2026, 3, 9, 16, 0, 0, 0, time.UTC), DurationMinutes: 90, BranchName: "Jurong"},
		},
	}

	msg := FormatConflicts("Ms. Lim", report)

	assert.Contains(t, msg, "Ms. Lim has 3 scheduling conflicts on this day.")
	assert.Contains(t, msg, "Overlapping 2 classes:")
	assert.Contains(t, msg, "Too close for travel, 1 class at another branch:")
	assert.Contains(t, msg, "Physics, 16:00-17:30 at Jurong")
}

func TestFormatConflicts_OmitsMissingLevelAndBranch(t *testing.T) {
	report := models.ConflictReport{
		Direct: []models.BookedClass{
			{Subject: "Chinese", StartTime: time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC), DurationMinutes: 60},
		},
	}

	msg := FormatConflicts("Mr. Ho", report)

	assert.Contains(t, msg, "Chinese, 10:00-11:00")
	assert.NotContains(t, msg, "()")
	assert.NotContains(t, msg, " at ")
}
