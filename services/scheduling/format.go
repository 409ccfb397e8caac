package scheduling

import (
	"fmt"
	"strings"

	"tutoria/models"
)

// FormatConflicts renders a non-empty conflict report as a human-readable
// explanation for the assignment dialog. Callers should show their own
// success message for empty reports instead of calling this.
func FormatConflicts(tutorName string, report models.ConflictReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s has %s on this day.\n", tutorName, countPhrase(report.Total(), "scheduling conflict"))

	if len(report.Direct) > 0 {
		fmt.Fprintf(&sb, "\nOverlapping %s:\n", countPhrase(len(report.Direct), "class"))
		for _, b := range report.Direct {
			sb.WriteString("  - " + describeClass(b) + "\n")
		}
	}
	if len(report.Travel) > 0 {
		fmt.Fprintf(&sb, "\nToo close for travel, %s at another branch:\n",
			countPhrase(len(report.Travel), "class"))
		for _, b := range report.Travel {
			sb.WriteString("  - " + describeClass(b) + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func countPhrase(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	plural := noun + "s"
	if strings.HasSuffix(noun, "s") {
		plural = noun + "es"
	}
	return fmt.Sprintf("%d %s", n, plural)
}

func describeClass(b models.BookedClass) string {
	name := b.Subject
	if b.Level != "" {
		name = fmt.Sprintf("%s (%s)", b.Subject, b.Level)
	}
	s := fmt.Sprintf("%s, %s-%s", name,
		b.StartTime.Format("15:04"), b.EndAt().Format("15:04"))
	if b.BranchName != "" {
		s += " at " + b.BranchName
	}
	return s
}
