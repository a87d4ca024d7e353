package categorizer

import (
	"context"
	"strings"

	"fjacquet/finvision/internal/logging"
	"fjacquet/finvision/internal/models"
)

// CategorizationStrategy defines a method for categorizing item names.
type CategorizationStrategy interface {
	// Categorize returns the category for name and whether a match was found.
	// A strategy that finds nothing returns found=false and a nil error.
	Categorize(ctx context.Context, name string) (category string, found bool, err error)

	// Name returns the name of this strategy for logging and debugging purposes.
	Name() string
}

// KeywordStrategy implements categorization using the taxonomy's keyword matching.
type KeywordStrategy struct {
	taxonomy *Taxonomy
	logger   logging.Logger
}

// NewKeywordStrategy creates a new KeywordStrategy instance.
// A nil taxonomy falls back to DefaultTaxonomy.
func NewKeywordStrategy(taxonomy *Taxonomy, logger logging.Logger) *KeywordStrategy {
	if taxonomy == nil {
		taxonomy = DefaultTaxonomy()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &KeywordStrategy{
		taxonomy: taxonomy,
		logger:   logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Categorize attempts to categorize an item name using keyword matching.
func (s *KeywordStrategy) Categorize(ctx context.Context, name string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	if strings.TrimSpace(name) == "" {
		return models.CategoryOthers, false, nil
	}

	label, keyword := s.taxonomy.Match(name)
	if keyword == "" {
		s.logger.WithFields(
			logging.Field{Key: "strategy", Value: s.Name()},
			logging.Field{Key: "name", Value: name},
		).Debug("No keyword matched item name")
		return models.CategoryOthers, false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: "strategy", Value: s.Name()},
		logging.Field{Key: "name", Value: name},
		logging.Field{Key: "keyword", Value: keyword},
		logging.Field{Key: logging.FieldCategory, Value: label},
	).Debug("Item categorized using keyword matching")

	return label, true, nil
}
