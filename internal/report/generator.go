// Package report renders parsed receipts as JSON, YAML or CSV documents.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/finvision/internal/categorizer"
	"fjacquet/finvision/internal/common"
	"fjacquet/finvision/internal/logging"
	"fjacquet/finvision/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Product is the rendered form of a line item.
type Product struct {
	Name     string  `json:"name" yaml:"name"`
	Price    float64 `json:"price" yaml:"price"`
	Category string  `json:"category" yaml:"category"`
}

// CategorySummary is the spend of one category on a receipt.
type CategorySummary struct {
	Category string  `json:"category" yaml:"category"`
	Count    int     `json:"count" yaml:"count"`
	Spend    float64 `json:"spend" yaml:"spend"`
}

// Summary aggregates a receipt per category. Difference is the final amount
// minus the items sum and is nil when the receipt has no total.
type Summary struct {
	Categories []CategorySummary `json:"categories" yaml:"categories"`
	ItemsTotal float64           `json:"items_total" yaml:"items_total"`
	Difference *float64          `json:"difference" yaml:"difference"`
}

// Document is the full report of one receipt.
type Document struct {
	ID          string    `json:"id" yaml:"id"`
	Source      string    `json:"source,omitempty" yaml:"source,omitempty"`
	Products    []Product `json:"products" yaml:"products"`
	FinalAmount *float64  `json:"final_amount" yaml:"final_amount"`
	Summary     Summary   `json:"summary" yaml:"summary"`
}

// Products converts line items to their rendered form. The result is never nil.
func Products(items []models.LineItem) []Product {
	products := make([]Product, len(items))
	for i, item := range items {
		products[i] = Product{
			Name:     item.Name,
			Price:    item.Price.InexactFloat64(),
			Category: item.Category,
		}
	}
	return products
}

// FinalAmount returns the receipt total as a float, or nil when absent.
func FinalAmount(receipt *models.Receipt) *float64 {
	total := receipt.TotalPointer()
	if total == nil {
		return nil
	}
	value := total.InexactFloat64()
	return &value
}

// Generator renders receipts in the supported output formats.
type Generator struct {
	taxonomy *categorizer.Taxonomy
	csv      common.CSVOptions
	logger   logging.Logger
}

// NewGenerator creates a Generator. A nil taxonomy selects the default one and
// a nil logger a logrus logger at info level.
func NewGenerator(taxonomy *categorizer.Taxonomy, csvOptions common.CSVOptions, logger logging.Logger) *Generator {
	if taxonomy == nil {
		taxonomy = categorizer.DefaultTaxonomy()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{
		taxonomy: taxonomy,
		csv:      csvOptions,
		logger:   logger.WithField(logging.FieldComponent, "report"),
	}
}

// CSVOptions returns the CSV dialect used for csv reports.
func (g *Generator) CSVOptions() common.CSVOptions {
	return g.csv
}

// SupportedFormats lists the formats accepted by Generate.
func SupportedFormats() []string {
	return []string{models.FormatJSON, models.FormatYAML, models.FormatCSV}
}

// IsSupportedFormat reports whether format can be rendered.
func IsSupportedFormat(format string) bool {
	for _, f := range SupportedFormats() {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// FileExtension returns the file extension for a format, including the dot.
func FileExtension(format string) string {
	return "." + strings.ToLower(format)
}

// Generate renders a receipt in the given format. CSV output contains the line
// items only.
func (g *Generator) Generate(receipt *models.Receipt, format string) ([]byte, error) {
	if receipt == nil {
		return nil, fmt.Errorf("cannot render nil receipt")
	}

	switch strings.ToLower(format) {
	case models.FormatJSON:
		return g.generateJSON(g.Document(receipt))
	case models.FormatYAML:
		return g.generateYAML(g.Document(receipt))
	case models.FormatCSV:
		return common.MarshalLineItems(receipt.Items, g.csv)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Document builds the report document of a receipt.
func (g *Generator) Document(receipt *models.Receipt) Document {
	return Document{
		ID:          receipt.ID,
		Source:      receipt.Source,
		Products:    Products(receipt.Items),
		FinalAmount: FinalAmount(receipt),
		Summary:     g.Summarize(receipt),
	}
}

// Summarize groups the receipt items per category. Categories appear in
// taxonomy order followed by models.CategoryOthers; categories without items
// are omitted.
func (g *Generator) Summarize(receipt *models.Receipt) Summary {
	type bucket struct {
		count int
		spend decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	for _, item := range receipt.Items {
		b, ok := buckets[item.Category]
		if !ok {
			b = &bucket{spend: decimal.Zero}
			buckets[item.Category] = b
		}
		b.count++
		b.spend = b.spend.Add(item.Price)
	}

	order := append(g.taxonomy.Labels(), models.CategoryOthers)
	categories := make([]CategorySummary, 0, len(buckets))
	for _, label := range order {
		b, ok := buckets[label]
		if !ok {
			continue
		}
		categories = append(categories, CategorySummary{
			Category: label,
			Count:    b.count,
			Spend:    b.spend.InexactFloat64(),
		})
		delete(buckets, label)
	}
	if len(buckets) > 0 {
		g.logger.Warn("Items carry categories outside the taxonomy",
			logging.Field{Key: logging.FieldCount, Value: len(buckets)})
	}

	itemsSum := receipt.ItemsSum()
	summary := Summary{
		Categories: categories,
		ItemsTotal: itemsSum.InexactFloat64(),
	}
	if total := receipt.TotalPointer(); total != nil {
		diff := total.Sub(itemsSum).InexactFloat64()
		summary.Difference = &diff
	}
	return summary
}

func (g *Generator) generateJSON(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *Generator) generateYAML(doc Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return data, nil
}
