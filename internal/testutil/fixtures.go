package testutil

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avdanilov/tender/internal/domain"
)

// LineItem options
type ItemOption func(*domain.LineItem)

func WithModel(model string) ItemOption {
	return func(it *domain.LineItem) {
		it.Model = model
	}
}

func WithQty(qty string) ItemOption {
	return func(it *domain.LineItem) {
		it.Qty = decimal.RequireFromString(qty)
	}
}

func WithPrices(equip, work string) ItemOption {
	return func(it *domain.LineItem) {
		it.EquipPrice = decimal.RequireFromString(equip)
		it.WorkPrice = decimal.RequireFromString(work)
	}
}

func WithWorkName(name string) ItemOption {
	return func(it *domain.LineItem) {
		it.WorkName = name
	}
}

func WithCategory(c domain.Category) ItemOption {
	return func(it *domain.LineItem) {
		it.Category = c
	}
}

// NewTestItem builds a plausible equipment line item. Defaults: one
// piece, equipment price 1000, work price 200.
func NewTestItem(name string, opts ...ItemOption) domain.LineItem {
	it := domain.LineItem{
		ID:         domain.NewItemID(),
		Name:       name,
		Qty:        decimal.NewFromInt(1),
		Unit:       "шт",
		EquipPrice: decimal.NewFromInt(1000),
		WorkName:   "Монтаж",
		WorkPrice:  decimal.NewFromInt(200),
		Category:   domain.CategoryEquipment,
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

// NewTestItems builds n distinct items named item-1..item-n.
func NewTestItems(n int) []domain.LineItem {
	items := make([]domain.LineItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, NewTestItem(fmt.Sprintf("item-%d", i+1)))
	}
	return items
}
