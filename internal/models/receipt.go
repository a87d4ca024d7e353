package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receipt is the structured result of parsing one receipt text.
type Receipt struct {
	ID       string          `json:"id" yaml:"id"`
	Source   string          `json:"source,omitempty" yaml:"source,omitempty"`
	Items    []LineItem      `json:"items" yaml:"items"`
	Total    decimal.Decimal `json:"total" yaml:"total"`
	HasTotal bool            `json:"has_total" yaml:"has_total"`
}

// NewReceipt creates a Receipt with a generated ID.
func NewReceipt(source string, items []LineItem) *Receipt {
	if items == nil {
		items = []LineItem{}
	}
	return &Receipt{
		ID:     uuid.New().String(),
		Source: source,
		Items:  items,
	}
}

// SetTotal records the final amount found on the receipt
func (r *Receipt) SetTotal(total decimal.Decimal) {
	r.Total = total
	r.HasTotal = true
}

// ItemsSum returns the sum of all item prices.
func (r *Receipt) ItemsSum() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range r.Items {
		sum = sum.Add(item.Price)
	}
	return sum
}

// TotalPointer returns the total, or nil when the receipt has none.
func (r *Receipt) TotalPointer() *decimal.Decimal {
	if !r.HasTotal {
		return nil
	}
	total := r.Total
	return &total
}
