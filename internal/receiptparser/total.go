package receiptparser

import (
	"errors"
	"strings"

	"fjacquet/finvision/internal/models"
	"fjacquet/finvision/internal/parsererror"

	"github.com/shopspring/decimal"
)

// totalKeywords mark a line as carrying the bill total.
var totalKeywords = []string{"AMOUNT DUE", "BALANCE DUE", "PAYMENT", "FINAL AMOUNT", "TOTAL", "DEBIT"}

var errNoDollarToken = errors.New("no token containing '$'")
var errNegativeTotal = errors.New("total is negative")

// totalResult describes how the total scan ended.
type totalResult struct {
	found  bool
	value  decimal.Decimal
	lineNo int    // 1-based line of the decisive keyword line, 0 when none matched
	line   string // decisive keyword line
	err    error  // why the decisive line gave no value
}

// ExtractTotal returns the bill's final amount. Lines are scanned from the
// bottom; the first line containing a total keyword decides the result: its
// first token containing '$' is parsed after removing '$' and ','. When that
// line has no such token, or the amount does not parse or is negative, no total
// is returned. Earlier keyword lines are never consulted.
func ExtractTotal(text string) (decimal.Decimal, bool) {
	result := findTotal(text)
	return result.value, result.found
}

func findTotal(text string) totalResult {
	lines := splitLines(text)
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if !hasTotalKeyword(line) {
			continue
		}

		result := totalResult{lineNo: i + 1, line: line}
		token, ok := firstDollarToken(line)
		if !ok {
			result.err = errNoDollarToken
			return result
		}

		value, err := models.ParseAmount(token)
		if err != nil {
			result.err = parsererror.NewMalformedNumeric(parserName, "total", token, err)
			return result
		}
		if value.IsNegative() {
			result.err = errNegativeTotal
			return result
		}

		result.found = true
		result.value = value
		return result
	}
	return totalResult{}
}

func hasTotalKeyword(line string) bool {
	upper := strings.ToUpper(line)
	for _, keyword := range totalKeywords {
		if strings.Contains(upper, keyword) {
			return true
		}
	}
	return false
}

func firstDollarToken(line string) (string, bool) {
	for _, token := range strings.Fields(line) {
		if strings.Contains(token, "$") {
			return token, true
		}
	}
	return "", false
}
