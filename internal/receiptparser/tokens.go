package receiptparser

import (
	"strings"
)

// isPriceToken reports whether token reads as an amount: after removing at
// most one '.', what remains is a non-empty run of ASCII digits.
//
// The check runs on the raw token, so "$12.40" and "1,200" are not price
// tokens even though the price parser would accept them. Total lines such as
// "TOTAL $25.97" rely on this to stay out of the item list.
func isPriceToken(token string) bool {
	digits := strings.Replace(token, ".", "", 1)
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// splitLines splits text on '\n'. Carriage returns are left to the
// whitespace tokenizer.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
