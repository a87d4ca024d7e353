package receiptparser

import (
	"testing"

	"fjacquet/finvision/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExtractTotal(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		expected    string
		expectFound bool
	}{
		{
			name:        "sample receipt",
			text:        sampleReceipt,
			expected:    "25.97",
			expectFound: true,
		},
		{
			name:        "bottom-most keyword line wins",
			text:        "SUBTOTAL PAYMENT $10.00\nBread 2\nTOTAL $25.97",
			expected:    "25.97",
			expectFound: true,
		},
		{
			name:        "bottom-most keyword line without dollar token gives no total",
			text:        "TOTAL $25.97\nPAYMENT BY CARD",
			expectFound: false,
		},
		{
			name:        "no keyword",
			text:        "Bread 2.50\nMilk $1.00",
			expectFound: false,
		},
		{
			name:        "empty text",
			text:        "",
			expectFound: false,
		},
		{
			name:        "keyword match is case insensitive",
			text:        "Total: $12.00",
			expected:    "12.00",
			expectFound: true,
		},
		{
			name:        "thousands separator is removed",
			text:        "BALANCE DUE $1,234.56",
			expected:    "1234.56",
			expectFound: true,
		},
		{
			name:        "first dollar token on the line is used",
			text:        "TOTAL USD $5.00 $6.00",
			expected:    "5.00",
			expectFound: true,
		},
		{
			name:        "dollar sign after the digits",
			text:        "AMOUNT DUE 7.25$",
			expected:    "7.25",
			expectFound: true,
		},
		{
			name:        "debit keyword",
			text:        "VISA DEBIT $7.50\nTHANK YOU",
			expected:    "7.50",
			expectFound: true,
		},
		{
			name:        "final amount keyword",
			text:        "Final Amount $3",
			expected:    "3",
			expectFound: true,
		},
		{
			name:        "malformed amount gives no total",
			text:        "SUBTOTAL $10.00\nTOTAL $12..4",
			expectFound: false,
		},
		{
			name:        "lone dollar sign gives no total",
			text:        "TOTAL $",
			expectFound: false,
		},
		{
			name:        "negative amount gives no total",
			text:        "TOTAL -$5.00",
			expectFound: false,
		},
		{
			name:        "trailing blank lines are ignored",
			text:        "TOTAL $9.99\n\n   \n",
			expected:    "9.99",
			expectFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, found := ExtractTotal(tt.text)
			assert.Equal(t, tt.expectFound, found)
			if tt.expectFound {
				assert.True(t, decimal.RequireFromString(tt.expected).Equal(total),
					"expected %s, got %s", tt.expected, total)
			} else {
				assert.True(t, total.IsZero())
			}
		})
	}
}

func TestExtractTotal_Idempotent(t *testing.T) {
	first, firstFound := ExtractTotal(sampleReceipt)
	second, secondFound := ExtractTotal(sampleReceipt)
	assert.Equal(t, firstFound, secondFound)
	assert.True(t, first.Equal(second))
}

func TestFindTotal_ReportsDecisiveLine(t *testing.T) {
	result := findTotal("TOTAL $25.97\nPAYMENT BY CARD\nTHANKS")
	assert.False(t, result.found)
	assert.Equal(t, 2, result.lineNo)
	assert.Equal(t, "PAYMENT BY CARD", result.line)
	assert.ErrorIs(t, result.err, errNoDollarToken)

	result = findTotal("TOTAL $1.2.3")
	assert.False(t, result.found)
	assert.ErrorIs(t, result.err, parsererror.ErrMalformedNumeric)

	result = findTotal("nothing here")
	assert.Zero(t, result.lineNo)
	assert.NoError(t, result.err)
}
