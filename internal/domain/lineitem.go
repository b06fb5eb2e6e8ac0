package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one priced row of equipment/material/cable plus its linked
// installation work. Items are created in batches by the extraction
// orchestrator, edited field-by-field by the user, and removed explicitly.
// The owning slice is display-ordered; the order carries no other meaning.
type LineItem struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Model      string          `json:"model"`
	Qty        decimal.Decimal `json:"qty"`
	Unit       string          `json:"unit"`
	EquipPrice decimal.Decimal `json:"equipPrice"`
	WorkName   string          `json:"workName"`
	WorkPrice  decimal.Decimal `json:"workPrice"`
	Category   Category        `json:"category"`
}

// NewItemID generates a fresh unique line item identifier.
// IDs are never taken from external payloads and never reused.
func NewItemID() string {
	return uuid.New().String()
}

// DisplayModel returns the model designator, falling back to the item
// name when no model was identified.
func (li *LineItem) DisplayModel() string {
	if li.Model != "" {
		return li.Model
	}
	return li.Name
}

// RowTotal returns qty × (equipment price + work price).
func (li *LineItem) RowTotal() decimal.Decimal {
	return li.Qty.Mul(li.EquipPrice.Add(li.WorkPrice))
}

// CloneItems returns a shallow copy of the item slice. Callers that hand
// items to a concurrent reader use this to keep wholesale-replacement
// semantics intact.
func CloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
