package formatter

import (
	"fmt"
	"strings"

	"github.com/avdanilov/tender/internal/scheduler"
)

// FormatSchedule renders the phase breakdown as a table with a total footer.
func FormatSchedule(phases []scheduler.Phase) string {
	if len(phases) == 0 {
		return Dim("No schedule.") + "\n"
	}

	headers := []string{"PHASE", "DAYS", "START", "END"}
	rows := make([][]string, 0, len(phases))
	for _, p := range phases {
		rows = append(rows, []string{
			p.Name,
			fmt.Sprintf("%d", p.Days),
			Date(p.Start),
			Date(p.End),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Work Schedule"))
	b.WriteString("\n")
	b.WriteString(RenderTable(headers, rows, 1))
	b.WriteString(Dim(fmt.Sprintf("%d day(s) total, %s through %s",
		scheduler.TotalDays(phases),
		Date(phases[0].Start),
		Date(phases[len(phases)-1].End))))
	b.WriteString("\n")
	return b.String()
}
