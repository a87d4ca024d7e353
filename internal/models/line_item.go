package models

import (
	"github.com/shopspring/decimal"
)

// LineItem is a single product line detected on a receipt.
type LineItem struct {
	Name     string          `json:"name" yaml:"name" csv:"Name"`
	Price    decimal.Decimal `json:"price" yaml:"price" csv:"Price"`
	Category string          `json:"category" yaml:"category" csv:"Category"`
}

// NewLineItem creates a LineItem.
func NewLineItem(name string, price decimal.Decimal, category string) LineItem {
	return LineItem{
		Name:     name,
		Price:    price,
		Category: category,
	}
}

// IsCategorized returns true if a taxonomy category matched the item name
func (i LineItem) IsCategorized() bool {
	return i.Category != "" && i.Category != CategoryOthers
}
