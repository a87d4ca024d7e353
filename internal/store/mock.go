package store

import (
	"fjacquet/finvision/internal/models"
)

// MockCategoryStore is a mock implementation of Repository for testing.
type MockCategoryStore struct {
	Categories []models.CategoryConfig

	// Error flags for testing error conditions
	LoadCategoriesError error
	SaveCategoriesError error

	SaveCalls int
}

// LoadCategories returns a copy of the mock categories.
func (m *MockCategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	if m.LoadCategoriesError != nil {
		return nil, m.LoadCategoriesError
	}
	result := make([]models.CategoryConfig, len(m.Categories))
	copy(result, m.Categories)
	return result, nil
}

// SaveCategories replaces the mock categories.
func (m *MockCategoryStore) SaveCategories(categories []models.CategoryConfig) error {
	m.SaveCalls++
	if m.SaveCategoriesError != nil {
		return m.SaveCategoriesError
	}
	m.Categories = append([]models.CategoryConfig(nil), categories...)
	return nil
}
