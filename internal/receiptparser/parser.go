package receiptparser

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/finvision/internal/categorizer"
	"fjacquet/finvision/internal/fileutils"
	"fjacquet/finvision/internal/logging"
	"fjacquet/finvision/internal/models"
	"fjacquet/finvision/internal/parser"
)

// Parser runs both extractors over a receipt and logs what it skipped.
type Parser struct {
	parser.BaseParser
	taxonomy *categorizer.Taxonomy
}

// NewParser creates a Parser. A nil taxonomy uses categorizer.DefaultTaxonomy.
func NewParser(taxonomy *categorizer.Taxonomy, logger logging.Logger) *Parser {
	if taxonomy == nil {
		taxonomy = categorizer.DefaultTaxonomy()
	}
	return &Parser{
		BaseParser: parser.NewBaseParser(logger),
		taxonomy:   taxonomy,
	}
}

// Taxonomy returns the taxonomy used to categorize items.
func (p *Parser) Taxonomy() *categorizer.Taxonomy {
	return p.taxonomy
}

// Parse reads all of r and parses it as receipt text.
func (p *Parser) Parse(r io.Reader) (*models.Receipt, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading receipt text: %w", err)
	}
	return p.ParseString("", string(data)), nil
}

// ParseFile parses the receipt text stored at path.
func (p *Parser) ParseFile(path string) (*models.Receipt, error) {
	file, err := fileutils.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading receipt file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.GetLogger().WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: path})
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("error reading receipt file: %w", err)
	}
	return p.ParseString(path, string(data)), nil
}

// ParseString extracts items and total from text.
func (p *Parser) ParseString(source, text string) *models.Receipt {
	logger := p.GetLogger()
	if source != "" {
		logger = logger.WithField(logging.FieldFile, source)
	}

	items := extractLineItems(p.taxonomy, text, func(lineNo int, line string, err error) {
		if err != nil {
			logger.WithError(err).Debug("Skipping line with malformed amount",
				logging.Field{Key: logging.FieldLine, Value: lineNo})
			return
		}
		if strings.TrimSpace(line) != "" {
			logger.Debug("Skipping line without price",
				logging.Field{Key: logging.FieldLine, Value: lineNo})
		}
	})

	receipt := models.NewReceipt(source, items)

	total := findTotal(text)
	switch {
	case total.found:
		receipt.SetTotal(total.value)
	case total.lineNo > 0:
		logger.WithError(total.err).Debug("Total line has no usable amount",
			logging.Field{Key: logging.FieldLine, Value: total.lineNo})
	default:
		logger.Debug("No total line found")
	}

	uncategorized := 0
	for _, item := range receipt.Items {
		if !item.IsCategorized() {
			uncategorized++
		}
	}

	logger.Info("Parsed receipt",
		logging.Field{Key: logging.FieldReceiptID, Value: receipt.ID},
		logging.Field{Key: logging.FieldCount, Value: len(receipt.Items)},
		logging.Field{Key: "uncategorized", Value: uncategorized},
		logging.Field{Key: "has_total", Value: receipt.HasTotal})

	return receipt
}
