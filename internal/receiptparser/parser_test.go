package receiptparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"fjacquet/finvision/internal/categorizer"
	"fjacquet/finvision/internal/logging"
	"fjacquet/finvision/internal/models"
	"fjacquet/finvision/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ParseString(t *testing.T) {
	logger := logging.NewMockLogger()
	p := NewParser(nil, logger)

	receipt := p.ParseString("bill.txt", sampleReceipt)

	assert.NotEmpty(t, receipt.ID)
	assert.Equal(t, "bill.txt", receipt.Source)
	assert.Len(t, receipt.Items, 11)
	assert.True(t, receipt.HasTotal)
	assert.Equal(t, "25.97", receipt.Total.String())

	assert.True(t, logger.HasEntry("INFO", "Parsed receipt"))
	// Store header and total line are skipped
	assert.Len(t, logger.GetEntriesByLevel("DEBUG"), 2)
}

func TestParser_LogsUnusableTotal(t *testing.T) {
	logger := logging.NewMockLogger()
	p := NewParser(categorizer.DefaultTaxonomy(), logger)

	receipt := p.ParseString("", "Bread 2\nTOTAL $1..2")

	assert.False(t, receipt.HasTotal)
	assert.Nil(t, receipt.TotalPointer())
	assert.True(t, logger.HasEntry("DEBUG", "Total line has no usable amount"))
}

func TestParser_LogsMissingTotal(t *testing.T) {
	logger := logging.NewMockLogger()
	receipt := NewParser(nil, logger).ParseString("", "Bread 2")

	assert.False(t, receipt.HasTotal)
	assert.True(t, logger.HasEntry("DEBUG", "No total line found"))
}

func TestParser_Parse(t *testing.T) {
	p := NewParser(nil, logging.NewMockLogger())

	receipt, err := p.Parse(strings.NewReader("Large Eggs 12.4\nTOTAL $12.40"))
	require.NoError(t, err)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "Food", receipt.Items[0].Category)
	assert.Equal(t, "12.4", receipt.Total.String())
}

func TestParser_ParseReadError(t *testing.T) {
	p := NewParser(nil, logging.NewMockLogger())

	_, err := p.Parse(iotest.ErrReader(os.ErrClosed))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestParser_ParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "receipt.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleReceipt), 0600))

	p := NewParser(nil, logging.NewMockLogger())
	receipt, err := p.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, receipt.Source)
	assert.Len(t, receipt.Items, 11)

	_, err = p.ParseFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParser_UsesGivenTaxonomy(t *testing.T) {
	taxonomy, err := categorizer.NewTaxonomy([]models.CategoryConfig{{Name: "Breakfast", Keywords: []string{"EGGS"}}})
	require.NoError(t, err)

	p := NewParser(taxonomy, logging.NewMockLogger())
	assert.Same(t, taxonomy, p.Taxonomy())

	receipt := p.ParseString("", "Large Eggs 12.4\nCottage Cheese 6.6")
	assert.Equal(t, "Breakfast", receipt.Items[0].Category)
	assert.Equal(t, models.CategoryOthers, receipt.Items[1].Category)
}

func TestParser_ImplementsInterface(t *testing.T) {
	var _ parser.Parser = (*Parser)(nil)

	logger := logging.NewMockLogger()
	p := NewParser(nil, logger)
	p.ParseString("", "Bread 2.50")
	assert.Same(t, logger, p.GetLogger())
	assert.True(t, logger.HasEntry("INFO", "Parsed receipt"))
}
