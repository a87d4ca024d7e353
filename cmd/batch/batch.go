// Package batch handles batch processing of receipt files
package batch

import (
	"context"
	"fmt"

	"fjacquet/finvision/cmd/root"
	"fjacquet/finvision/internal/container"

	"github.com/spf13/cobra"
)

// Flags of the batch command
var (
	InputDir  string
	OutputDir string
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process receipt files from a directory",
	Long: `Batch process every receipt text file of an input directory and write one
report per receipt to an output directory.

Files are selected by the configured extension (batch.extension, default .txt)
and rendered in the configured output format. A receipt that cannot be
converted is logged and skipped.

Example:
  finvision batch --input-dir receipts/ --output-dir reports/ -f yaml`,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().StringVar(&InputDir, "input-dir", "", "Directory containing receipt text files")
	Cmd.Flags().StringVar(&OutputDir, "output-dir", "", "Directory receiving the reports")
	_ = Cmd.MarkFlagRequired("input-dir")
	_ = Cmd.MarkFlagRequired("output-dir")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	app, err := root.GetContainer()
	if err != nil {
		return err
	}
	return run(cmd.Context(), cmd, app, InputDir, OutputDir)
}

func run(ctx context.Context, cmd *cobra.Command, app *container.Container, inputDir, outputDir string) error {
	count, err := app.GetBatchProcessor().ProcessDirectory(ctx, inputDir, outputDir)
	if err != nil {
		return fmt.Errorf("error during batch processing: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Processed %d receipt(s)\n", count)
	return err
}
