// Package store loads and saves category taxonomies as YAML files.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/finvision/internal/categorizer"
	"fjacquet/finvision/internal/fileutils"
	"fjacquet/finvision/internal/logging"
	"fjacquet/finvision/internal/models"
	"fjacquet/finvision/internal/parsererror"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultCategoriesFile is the file name looked up when no path is configured.
	DefaultCategoriesFile = "categories.yaml"

	expectedFormat = "a 'categories:' list or a bare list of {name, keywords}"
)

// Repository is the storage contract for ordered category configurations.
type Repository interface {
	LoadCategories() ([]models.CategoryConfig, error)
	SaveCategories(categories []models.CategoryConfig) error
}

// CategoryStore manages loading and saving of a taxonomy file.
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a store for the given taxonomy file.
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CategoryStore{
		CategoriesFile: categoriesFile,
		logger:         logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join(".finvision", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".finvision", filename))
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

func (s *CategoryStore) filename() string {
	if s.CategoriesFile == "" {
		return DefaultCategoriesFile
	}
	return s.CategoriesFile
}

// LoadCategories reads the taxonomy file. Both the documented layout
// ("categories:" holding a list) and a bare list are accepted; category order
// is preserved.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	filePath, err := s.FindConfigFile(s.filename())
	if err != nil {
		return nil, fmt.Errorf("categories file %s not found: %w", s.filename(), err)
	}

	data, err := fileutils.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	categories, err := decodeCategories(data)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: expectedFormat,
			Msg:            err.Error(),
		}
	}

	s.logger.Debug("Loaded categories",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(categories)})
	return categories, nil
}

func decodeCategories(data []byte) ([]models.CategoryConfig, error) {
	var categoriesConfig models.CategoriesConfig
	wrappedErr := yaml.Unmarshal(data, &categoriesConfig)
	if wrappedErr == nil && len(categoriesConfig.Categories) > 0 {
		return categoriesConfig.Categories, nil
	}

	var categories []models.CategoryConfig
	listErr := yaml.Unmarshal(data, &categories)
	if listErr == nil && len(categories) > 0 {
		return categories, nil
	}

	if wrappedErr != nil && listErr != nil {
		return nil, listErr
	}
	return nil, errors.New("no categories defined")
}

// SaveCategories writes the categories under a top-level "categories:" key,
// creating parent directories when needed.
func (s *CategoryStore) SaveCategories(categories []models.CategoryConfig) error {
	filePath := s.filename()

	data, err := yaml.Marshal(models.CategoriesConfig{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if err := fileutils.WriteFile(filePath, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing categories: %w", err)
	}

	s.logger.Debug("Saved categories",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(categories)})
	return nil
}

// LoadTaxonomy loads categories from the repository and builds a taxonomy.
func LoadTaxonomy(repo Repository) (*categorizer.Taxonomy, error) {
	categories, err := repo.LoadCategories()
	if err != nil {
		return nil, err
	}

	taxonomy, err := categorizer.NewTaxonomy(categories)
	if err != nil {
		return nil, &parsererror.ValidationError{Reason: err.Error()}
	}
	return taxonomy, nil
}

// ExportTaxonomy saves the categories of a taxonomy through the repository.
func ExportTaxonomy(repo Repository, taxonomy *categorizer.Taxonomy) error {
	return repo.SaveCategories(taxonomy.Categories())
}
