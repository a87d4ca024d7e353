package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// amountReplacer removes the currency symbol and thousands separators
// that OCR output keeps attached to amounts.
var amountReplacer = strings.NewReplacer("$", "", ",", "")

// CleanAmount strips '$' and ',' from an amount token.
func CleanAmount(token string) string {
	return amountReplacer.Replace(token)
}

// ParseAmount parses an amount token after removing '$' and ','.
// Returns an error if the remaining text is not a decimal number.
func ParseAmount(token string) (decimal.Decimal, error) {
	cleaned := CleanAmount(token)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': empty after cleaning", token)
	}
	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", token, err)
	}
	return dec, nil
}
