// Package parser provides the base parser functionality and common interfaces.
package parser

import (
	"io"

	"fjacquet/finvision/internal/models"
)

// Parser turns raw receipt text into a structured Receipt.
type Parser interface {
	// Parse reads receipt text from r. Lines that do not look like items are
	// skipped; only I/O failures are returned as errors.
	Parse(r io.Reader) (*models.Receipt, error)

	// ParseString parses receipt text already held in memory. source is
	// recorded on the receipt and may be empty.
	ParseString(source, text string) *models.Receipt
}
