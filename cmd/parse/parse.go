// Package parse implements the command that converts one receipt into a report.
package parse

import (
	"fjacquet/finvision/cmd/root"
	"fjacquet/finvision/internal/common"
	"fjacquet/finvision/internal/container"
	"fjacquet/finvision/internal/logging"
	"fjacquet/finvision/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract line items and the total from a receipt",
	Long: `Extract the purchased items, their categories and the final amount from
OCR receipt text and render them as JSON, YAML or CSV.

The receipt is read from --input or standard input and the report is written to
--output or standard output.

Example:
  finvision parse -i receipt.txt -f yaml
  cat receipt.txt | finvision parse -f csv -o items.csv`,
	RunE: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) error {
	app, err := root.GetContainer()
	if err != nil {
		return err
	}
	return run(cmd, app, root.SharedFlags.Input, root.SharedFlags.Output)
}

func run(cmd *cobra.Command, app *container.Container, input, output string) error {
	format := app.GetConfig().Output.Format
	if err := root.ValidateFormat(format); err != nil {
		return err
	}

	source, text, err := root.ReadInput(cmd, input)
	if err != nil {
		return err
	}

	receipt := app.GetParser().ParseString(source, text)

	if output != "" && format == models.FormatCSV {
		return common.WriteLineItemsToCSV(receipt.Items, output, app.GetReportGenerator().CSVOptions(), app.GetLogger())
	}

	data, err := app.GetReportGenerator().Generate(receipt, format)
	if err != nil {
		return err
	}

	if err := root.WriteOutput(cmd, output, data); err != nil {
		return err
	}

	if output != "" {
		app.GetLogger().Info("Report written",
			logging.Field{Key: logging.FieldOutputFile, Value: output},
			logging.Field{Key: logging.FieldFormat, Value: format},
			logging.Field{Key: logging.FieldCount, Value: len(receipt.Items)})
	}
	return nil
}
