package formatter

import (
	"fmt"
	"strings"

	"github.com/avdanilov/tender/internal/domain"
)

// FormatItems renders extracted line items as an aligned table with a
// per-row total column and a count footer.
func FormatItems(items []domain.LineItem) string {
	if len(items) == 0 {
		return Dim("No line items.") + "\n"
	}

	headers := []string{"ID", "NAME", "MODEL", "QTY", "UNIT", "EQUIP ₽", "WORK ₽", "ROW TOTAL ₽", "CATEGORY"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			Dim(TruncID(it.ID)),
			Truncate(it.Name, 40),
			Truncate(it.DisplayModel(), 24),
			Qty(it.Qty),
			it.Unit,
			Money(it.EquipPrice),
			Money(it.WorkPrice),
			Bold(Money(it.RowTotal())),
			CategoryBadge(it.Category),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Line Items"))
	b.WriteString("\n")
	b.WriteString(RenderTable(headers, rows, 3, 5, 6, 7))
	b.WriteString(Dim(fmt.Sprintf("%d item(s)", len(items))))
	b.WriteString("\n")
	return b.String()
}
