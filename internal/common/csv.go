// Package common provides the CSV encoding shared by the report generator and
// the commands.
package common

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"fjacquet/finvision/internal/fileutils"
	"fjacquet/finvision/internal/logging"
	"fjacquet/finvision/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// DefaultDelimiter is used when no delimiter is configured.
const DefaultDelimiter = ','

// LineItemRow is the CSV layout of a line item. Prices are written with at
// least two decimals and never rounded.
type LineItemRow struct {
	Name     string `csv:"Name"`
	Price    string `csv:"Price"`
	Category string `csv:"Category"`
}

// CSVOptions controls the CSV dialect.
type CSVOptions struct {
	Delimiter      rune
	IncludeHeaders bool
}

// DefaultCSVOptions returns comma-separated output with a header row.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{Delimiter: DefaultDelimiter, IncludeHeaders: true}
}

// ToRows converts line items to their CSV rows.
func ToRows(items []models.LineItem) []LineItemRow {
	rows := make([]LineItemRow, len(items))
	for i, item := range items {
		rows[i] = LineItemRow{
			Name:     item.Name,
			Price:    FormatPrice(item.Price),
			Category: item.Category,
		}
	}
	return rows
}

// FormatPrice renders a price with at least two decimals, keeping every
// digit of the parsed value.
func FormatPrice(price decimal.Decimal) string {
	places := -price.Exponent()
	if places < 2 {
		places = 2
	}
	return price.StringFixed(places)
}

// WriteLineItems encodes line items as CSV to w.
func WriteLineItems(w io.Writer, items []models.LineItem, opts CSVOptions) error {
	if opts.Delimiter == 0 {
		opts.Delimiter = DefaultDelimiter
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = opts.Delimiter
	safeWriter := gocsv.NewSafeCSVWriter(csvWriter)

	rows := ToRows(items)
	var err error
	if opts.IncludeHeaders {
		err = gocsv.MarshalCSV(rows, safeWriter)
	} else {
		err = gocsv.MarshalCSVWithoutHeaders(rows, safeWriter)
	}
	if err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// MarshalLineItems returns line items encoded as CSV.
func MarshalLineItems(items []models.LineItem, opts CSVOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteLineItems(&buf, items, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteLineItemsToCSV writes line items to a CSV file, creating parent
// directories as needed.
func WriteLineItemsToCSV(items []models.LineItem, csvFile string, opts CSVOptions, logger logging.Logger) error {
	if items == nil {
		return fmt.Errorf("cannot write nil line items to CSV")
	}

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteLineItems(file, items, opts); err != nil {
		logger.WithError(err).Error("Failed to marshal line items to CSV")
		return err
	}

	logger.Info("Wrote line items to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(items)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(opts.Delimiter)})
	return nil
}
