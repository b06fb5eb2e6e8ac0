// Package finance computes the cascading cost breakdown for a priced
// line item set. Everything here is a pure function of its arguments:
// the engine keeps no state and is recomputed wholesale on every edit.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/avdanilov/tender/internal/domain"
)

var (
	hundred = decimal.NewFromInt(100)

	// premiumUplift is the fixed extended warranty/support tier factor.
	premiumUplift = decimal.RequireFromString("1.12")
)

// Breakdown is the full cascading cost summary plus both commercial
// scenarios. All amounts are unrounded; rounding to whole currency
// units is a presentation concern.
type Breakdown struct {
	EquipmentTotal decimal.Decimal `json:"equipmentTotal"`
	LaborTotal     decimal.Decimal `json:"laborTotal"`
	Commissioning  decimal.Decimal `json:"commissioning"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Contingency    decimal.Decimal `json:"contingency"`
	VAT            decimal.Decimal `json:"vat"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`

	// BaseTotal equals GrandTotal; PremiumTotal is GrandTotal × 1.12.
	// Every other field is shared between the two scenarios.
	BaseTotal    decimal.Decimal `json:"baseTotal"`
	PremiumTotal decimal.Decimal `json:"premiumTotal"`
}

// Compute derives the breakdown from the current items and coefficients:
//
//	commissioning = laborTotal × pnr%
//	subtotal      = equipment + labor + commissioning
//	contingency   = subtotal × contingency%
//	vat           = (subtotal + contingency) × vat%
//	grandTotal    = subtotal + contingency + vat
func Compute(items []domain.LineItem, c domain.Coefficients) Breakdown {
	equipment := decimal.Zero
	labor := decimal.Zero
	for i := range items {
		equipment = equipment.Add(items[i].EquipPrice.Mul(items[i].Qty))
		labor = labor.Add(items[i].WorkPrice.Mul(items[i].Qty))
	}

	commissioning := labor.Mul(pctFactor(c.PNRPct))
	subtotal := equipment.Add(labor).Add(commissioning)
	contingency := subtotal.Mul(pctFactor(c.ContingencyPct))
	vat := subtotal.Add(contingency).Mul(pctFactor(c.VATPct))
	grand := subtotal.Add(contingency).Add(vat)

	return Breakdown{
		EquipmentTotal: equipment,
		LaborTotal:     labor,
		Commissioning:  commissioning,
		Subtotal:       subtotal,
		Contingency:    contingency,
		VAT:            vat,
		GrandTotal:     grand,
		BaseTotal:      grand,
		PremiumTotal:   grand.Mul(premiumUplift),
	}
}

func pctFactor(pct float64) decimal.Decimal {
	return decimal.NewFromFloat(pct).Div(hundred)
}
