package formatter

import (
	"fmt"
	"strings"

	"github.com/avdanilov/tender/internal/domain"
)

// FormatFindings renders review findings grouped under a header, one block
// per finding with an optional suggestion line.
func FormatFindings(findings []domain.ValidationFinding) string {
	var b strings.Builder
	b.WriteString(Header("Review Findings"))
	b.WriteString("\n")

	if len(findings) == 0 {
		b.WriteString(Dim("No findings.") + "\n")
		return b.String()
	}

	for _, f := range findings {
		b.WriteString(fmt.Sprintf("%s  %s\n", FindingIndicator(f.Kind), f.Message))
		if f.Suggestion != "" {
			b.WriteString(Dim("   ↳ " + f.Suggestion))
			b.WriteString("\n")
		}
	}

	errs, warns := 0, 0
	for _, f := range findings {
		switch f.Kind {
		case domain.FindingError:
			errs++
		case domain.FindingWarning:
			warns++
		}
	}
	b.WriteString(Dim(fmt.Sprintf("%d finding(s): %d error(s), %d warning(s)", len(findings), errs, warns)))
	b.WriteString("\n")
	return b.String()
}
