// Package receiptparser extracts line items and the final total from OCR receipt text.
package receiptparser

import (
	"strings"

	"fjacquet/finvision/internal/categorizer"
	"fjacquet/finvision/internal/models"
	"fjacquet/finvision/internal/parsererror"
)

const parserName = "receipt"

// skipFunc is called for every line that yields no item. err is nil for an
// ordinary skip and a *parsererror.ParseError for a malformed amount.
type skipFunc func(lineNo int, line string, err error)

// ExtractLineItems returns one LineItem per line holding a price token, in
// input order. The first price token of a line is the price and the tokens
// before it, joined by single spaces, are the name. Lines without a price
// token, or whose price does not parse, are skipped.
//
// A nil taxonomy uses categorizer.DefaultTaxonomy.
func ExtractLineItems(taxonomy *categorizer.Taxonomy, text string) []models.LineItem {
	return extractLineItems(taxonomy, text, nil)
}

func extractLineItems(taxonomy *categorizer.Taxonomy, text string, onSkip skipFunc) []models.LineItem {
	if taxonomy == nil {
		taxonomy = categorizer.DefaultTaxonomy()
	}

	items := []models.LineItem{}
	for i, line := range splitLines(text) {
		item, ok, err := extractLine(taxonomy, line)
		if !ok {
			if onSkip != nil {
				onSkip(i+1, line, err)
			}
			continue
		}
		items = append(items, item)
	}
	return items
}

// extractLine handles a single line. ok is false when the line carries no item.
func extractLine(taxonomy *categorizer.Taxonomy, line string) (models.LineItem, bool, error) {
	tokens := strings.Fields(line)
	for i, token := range tokens {
		if !isPriceToken(token) {
			continue
		}

		price, err := models.ParseAmount(token)
		if err != nil {
			return models.LineItem{}, false, parsererror.NewMalformedNumeric(parserName, "price", token, err)
		}

		name := strings.Join(tokens[:i], " ")
		return models.NewLineItem(name, price, taxonomy.Categorize(name)), true, nil
	}
	return models.LineItem{}, false, nil
}
