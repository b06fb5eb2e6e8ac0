package formatter

import (
	"fmt"
	"strings"

	"github.com/avdanilov/tender/internal/domain"
	"github.com/avdanilov/tender/internal/finance"
)

// FormatTotals renders the financial breakdown line by line, ending with
// the base and premium scenario totals.
func FormatTotals(b finance.Breakdown, c domain.Coefficients) string {
	var out strings.Builder
	out.WriteString(Header("Estimate Totals"))
	out.WriteString("\n")

	line := func(label, value string) {
		out.WriteString(fmt.Sprintf("%-28s %s\n", label, value))
	}

	line("Equipment total", Money(b.EquipmentTotal))
	line("Labor total", Money(b.LaborTotal))
	line(fmt.Sprintf("PNR (%.1f%%)", c.PNRPct), Money(b.Commissioning))
	line("Subtotal", Money(b.Subtotal))
	line(fmt.Sprintf("Contingency (%.1f%%)", c.ContingencyPct), Money(b.Contingency))
	line(fmt.Sprintf("VAT (%.1f%%)", c.VATPct), Money(b.VAT))
	out.WriteString(StyleDim.Render(strings.Repeat("─", 44)))
	out.WriteString("\n")
	line("Grand total", Bold(Money(b.GrandTotal)))
	out.WriteString("\n")
	line("Base scenario", StyleGreen.Render(Money(b.BaseTotal)))
	line("Premium scenario (×1.12)", StyleBlue.Render(Money(b.PremiumTotal)))
	return out.String()
}
