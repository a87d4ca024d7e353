// Package categorizer assigns receipt line items to categories by keyword matching
// against an ordered, read-only taxonomy.
package categorizer

import (
	"fmt"
	"strings"

	"fjacquet/finvision/internal/models"
)

// category is one taxonomy entry with its keywords already upper-cased.
type category struct {
	label    string
	keywords []string
}

// Taxonomy maps category labels to keyword sets. Categories are matched in
// declaration order and the first category owning a keyword that occurs in the
// item name wins, so a keyword listed under several categories always resolves
// to the earliest one.
//
// A Taxonomy is immutable after construction and safe for concurrent use.
type Taxonomy struct {
	categories []category
	index      map[string]int
}

// NewTaxonomy builds a Taxonomy from category configurations, keeping their order.
// Keywords are trimmed and upper-cased; blank keywords are dropped.
func NewTaxonomy(configs []models.CategoryConfig) (*Taxonomy, error) {
	t := &Taxonomy{
		categories: make([]category, 0, len(configs)),
		index:      make(map[string]int, len(configs)),
	}

	for i, cfg := range configs {
		label := strings.TrimSpace(cfg.Name)
		if label == "" {
			return nil, fmt.Errorf("category #%d has an empty name", i+1)
		}
		if label == models.CategoryOthers {
			return nil, fmt.Errorf("category name %q is reserved", models.CategoryOthers)
		}
		if _, exists := t.index[label]; exists {
			return nil, fmt.Errorf("duplicate category %q", label)
		}

		keywords := make([]string, 0, len(cfg.Keywords))
		for _, keyword := range cfg.Keywords {
			keyword = strings.ToUpper(strings.TrimSpace(keyword))
			if keyword == "" {
				continue
			}
			keywords = append(keywords, keyword)
		}

		t.index[label] = len(t.categories)
		t.categories = append(t.categories, category{label: label, keywords: keywords})
	}

	return t, nil
}

// Categorize returns the label of the first category with a keyword contained in
// the upper-cased name, or models.CategoryOthers when nothing matches.
func (t *Taxonomy) Categorize(name string) string {
	label, _ := t.match(name)
	return label
}

// Match is like Categorize but also reports the keyword that matched.
// The keyword is empty when the result is models.CategoryOthers.
func (t *Taxonomy) Match(name string) (label, keyword string) {
	return t.match(name)
}

func (t *Taxonomy) match(name string) (string, string) {
	upper := strings.ToUpper(name)
	for _, c := range t.categories {
		for _, keyword := range c.keywords {
			if strings.Contains(upper, keyword) {
				return c.label, keyword
			}
		}
	}
	return models.CategoryOthers, ""
}

// Labels returns the category labels in declaration order.
func (t *Taxonomy) Labels() []string {
	labels := make([]string, len(t.categories))
	for i, c := range t.categories {
		labels[i] = c.label
	}
	return labels
}

// Contains reports whether label is a category of this taxonomy.
func (t *Taxonomy) Contains(label string) bool {
	_, ok := t.index[label]
	return ok
}

// Len returns the number of categories.
func (t *Taxonomy) Len() int {
	return len(t.categories)
}

// Categories returns a copy of the taxonomy as category configurations,
// suitable for writing back to YAML.
func (t *Taxonomy) Categories() []models.CategoryConfig {
	configs := make([]models.CategoryConfig, len(t.categories))
	for i, c := range t.categories {
		keywords := make([]string, len(c.keywords))
		copy(keywords, c.keywords)
		configs[i] = models.CategoryConfig{Name: c.label, Keywords: keywords}
	}
	return configs
}
