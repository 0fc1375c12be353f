package formatter

import (
	"fmt"
	"strings"

	"github.com/aavinothkumartt/TimeTracker/internal/domain"
	"github.com/aavinothkumartt/TimeTracker/internal/duration"
)

// FormatDailySummary renders a daily summary as a styled text block:
// total, item counts, and the per-task breakdown in descending order.
func FormatDailySummary(d *domain.DailySummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n",
		Bold("Total Work Time:"),
		StyleGreen.Render(duration.Format(d.TotalDuration))))
	b.WriteString(fmt.Sprintf("%s %d (%d sessions, %d manual)\n",
		Bold("Items:"),
		d.TotalItems(), d.SessionCount, d.ManualEntryCount))

	breakdown := d.Breakdown()
	if len(breakdown) > 0 {
		b.WriteString("\n")
		b.WriteString(Bold("Breakdown by Task:"))
		b.WriteString("\n")
		for _, task := range breakdown {
			b.WriteString(fmt.Sprintf("  %s %s: %s\n",
				StyleBlue.Render("•"),
				StyleFg.Render(task.Name),
				StyleGreen.Render(duration.Format(task.Duration))))
		}
	}

	return b.String()
}
