// Package batch converts every receipt text file in a directory into a report
// file.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"fjacquet/finvision/internal/fileutils"
	"fjacquet/finvision/internal/logging"
	"fjacquet/finvision/internal/models"
	"fjacquet/finvision/internal/receiptparser"
	"fjacquet/finvision/internal/report"
)

// sequentialThreshold is the file count below which no workers are started.
const sequentialThreshold = 8

// Options configures a Processor.
type Options struct {
	// Format is the report format written for each receipt.
	Format string
	// Extension selects the input files, including the leading dot.
	Extension string
	// Workers bounds concurrent conversions. Zero means runtime.NumCPU().
	Workers int
}

// Result describes the conversion of one receipt file.
type Result struct {
	InputFile  string
	OutputFile string
	ItemCount  int
	HasTotal   bool
	Err        error
}

// Processor converts receipt files in bulk.
type Processor struct {
	parser    *receiptparser.Parser
	generator *report.Generator
	opts      Options
	logger    logging.Logger
}

// NewProcessor creates a Processor. Empty options default to JSON output for
// ".txt" files.
func NewProcessor(parser *receiptparser.Parser, generator *report.Generator, opts Options, logger logging.Logger) *Processor {
	if opts.Format == "" {
		opts.Format = models.FormatJSON
	}
	if opts.Extension == "" {
		opts.Extension = ".txt"
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Processor{
		parser:    parser,
		generator: generator,
		opts:      opts,
		logger:    logger,
	}
}

// ProcessDirectory converts every matching file directly inside inputDir and
// writes one report per receipt into outputDir. It returns the number of
// receipts converted. A file that fails is logged and skipped.
func (p *Processor) ProcessDirectory(ctx context.Context, inputDir, outputDir string) (int, error) {
	if !report.IsSupportedFormat(p.opts.Format) {
		return 0, fmt.Errorf("unsupported output format: %s", p.opts.Format)
	}

	files, err := fileutils.ListFilesWithExtension(inputDir, p.opts.Extension)
	if err != nil {
		return 0, fmt.Errorf("failed to list receipt files: %w", err)
	}

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	p.logger.Info("Processing receipt directory",
		logging.Field{Key: "input_dir", Value: inputDir},
		logging.Field{Key: "output_dir", Value: outputDir},
		logging.Field{Key: logging.FieldCount, Value: len(files)})

	results := p.ProcessFiles(ctx, files, outputDir)

	count := 0
	for _, result := range results {
		if result.Err != nil {
			p.logger.WithError(result.Err).Error("Failed to process receipt",
				logging.Field{Key: logging.FieldInputFile, Value: result.InputFile})
			continue
		}
		count++
	}

	if err := ctx.Err(); err != nil {
		return count, fmt.Errorf("batch processing interrupted: %w", err)
	}

	p.logger.Info("Batch processing completed",
		logging.Field{Key: logging.FieldCount, Value: count},
		logging.Field{Key: "failed", Value: len(results) - count})
	return count, nil
}

// ProcessFiles converts the given files and returns one result per file, in
// input order. Files not started before ctx is cancelled carry ctx.Err().
func (p *Processor) ProcessFiles(ctx context.Context, files []string, outputDir string) []Result {
	if len(files) < sequentialThreshold || p.opts.Workers == 1 {
		return p.processSequential(ctx, files, outputDir)
	}
	return p.processConcurrent(ctx, files, outputDir)
}

func (p *Processor) processSequential(ctx context.Context, files []string, outputDir string) []Result {
	results := make([]Result, len(files))
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			results[i] = Result{InputFile: file, Err: err}
			continue
		}
		results[i] = p.processFile(file, outputDir)
	}
	return results
}

type job struct {
	index int
	file  string
}

func (p *Processor) processConcurrent(ctx context.Context, files []string, outputDir string) []Result {
	results := make([]Result, len(files))
	jobs := make(chan job)

	var wg sync.WaitGroup
	for i := 0; i < p.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = p.processFile(j.file, outputDir)
			}
		}()
	}

	next := 0
feed:
	for ; next < len(files); next++ {
		select {
		case jobs <- job{index: next, file: files[next]}:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for i := next; i < len(files); i++ {
		results[i] = Result{InputFile: files[i], Err: ctx.Err()}
	}

	p.logger.Debug("Concurrent processing completed",
		logging.Field{Key: logging.FieldCount, Value: len(files)},
		logging.Field{Key: "workers", Value: p.opts.Workers})
	return results
}

func (p *Processor) processFile(file, outputDir string) Result {
	result := Result{InputFile: file}

	receipt, err := p.parser.ParseFile(file)
	if err != nil {
		result.Err = err
		return result
	}

	data, err := p.generator.Generate(receipt, p.opts.Format)
	if err != nil {
		result.Err = fmt.Errorf("failed to render %s: %w", file, err)
		return result
	}

	result.OutputFile = fileutils.OutputPath(file, outputDir, report.FileExtension(p.opts.Format))
	if err := fileutils.WriteFile(result.OutputFile, data, models.PermissionReportFile); err != nil {
		result.Err = err
		return result
	}

	result.ItemCount = len(receipt.Items)
	result.HasTotal = receipt.HasTotal
	p.logger.Debug("Converted receipt",
		logging.Field{Key: logging.FieldInputFile, Value: file},
		logging.Field{Key: logging.FieldOutputFile, Value: result.OutputFile},
		logging.Field{Key: logging.FieldReceiptID, Value: receipt.ID})
	return result
}
