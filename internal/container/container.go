// Package container provides dependency injection for the finvision application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/finvision/internal/batch"
	"fjacquet/finvision/internal/categorizer"
	"fjacquet/finvision/internal/common"
	"fjacquet/finvision/internal/config"
	"fjacquet/finvision/internal/logging"
	"fjacquet/finvision/internal/receiptparser"
	"fjacquet/finvision/internal/report"
	"fjacquet/finvision/internal/server"
	"fjacquet/finvision/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation. The taxonomy it holds is shared
// read-only by every component.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     *store.CategoryStore
	taxonomy  *categorizer.Taxonomy
	strategy  categorizer.CategorizationStrategy
	parser    *receiptparser.Parser
	generator *report.Generator
	batch     *batch.Processor
	server    *server.Server
}

// NewContainer creates and wires all application dependencies, with a logger
// built from the configuration.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger is like NewContainer but uses the given logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	// Taxonomy: a configured file replaces the built-in categories
	var categoryStore *store.CategoryStore
	taxonomy := categorizer.DefaultTaxonomy()
	if cfg.Categories.File != "" {
		categoryStore = store.NewCategoryStore(cfg.Categories.File, logger)
		loaded, err := store.LoadTaxonomy(categoryStore)
		if err != nil {
			return nil, fmt.Errorf("failed to load categories: %w", err)
		}
		taxonomy = loaded
	}

	csvOptions := common.CSVOptions{
		Delimiter:      cfg.DelimiterRune(),
		IncludeHeaders: cfg.CSV.IncludeHeaders,
	}

	receiptParser := receiptparser.NewParser(taxonomy, logger)
	generator := report.NewGenerator(taxonomy, csvOptions, logger)
	processor := batch.NewProcessor(receiptParser, generator, batch.Options{
		Format:    cfg.Output.Format,
		Extension: cfg.Batch.Extension,
		Workers:   cfg.Batch.Workers,
	}, logger)
	httpServer := server.NewServer(receiptParser, server.Options{
		Addr: cfg.Server.Addr,
		Mode: cfg.Server.Mode,
	}, logger)

	logger.Debug("Container initialized",
		logging.Field{Key: "categories_count", Value: taxonomy.Len()},
		logging.Field{Key: "custom_categories", Value: categoryStore != nil})

	return &Container{
		logger:    logger,
		config:    cfg,
		store:     categoryStore,
		taxonomy:  taxonomy,
		strategy:  categorizer.NewKeywordStrategy(taxonomy, logger),
		parser:    receiptParser,
		generator: generator,
		batch:     processor,
		server:    httpServer,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the category store, or nil when the built-in taxonomy is used.
func (c *Container) GetStore() *store.CategoryStore {
	return c.store
}

// GetTaxonomy returns the taxonomy shared by all components.
func (c *Container) GetTaxonomy() *categorizer.Taxonomy {
	return c.taxonomy
}

// GetCategorizer returns the categorization strategy used by the categorize command.
func (c *Container) GetCategorizer() categorizer.CategorizationStrategy {
	return c.strategy
}

// GetParser returns the receipt parser.
func (c *Container) GetParser() *receiptparser.Parser {
	return c.parser
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.generator
}

// GetBatchProcessor returns the batch processor.
func (c *Container) GetBatchProcessor() *batch.Processor {
	return c.batch
}

// GetServer returns the HTTP server.
func (c *Container) GetServer() *server.Server {
	return c.server
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
