// Package models provides the data structures used throughout the application.
package models

// CategoryConfig represents a category configuration in the YAML file
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig represents the structure of the categories YAML file.
// Categories are kept as a list because their order decides which category
// wins when a keyword is shared.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
