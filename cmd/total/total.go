// Package total implements the command that prints the final amount of a receipt.
package total

import (
	"fmt"

	"fjacquet/finvision/cmd/root"
	"fjacquet/finvision/internal/common"
	"fjacquet/finvision/internal/receiptparser"

	"github.com/spf13/cobra"
)

// Cmd represents the total command
var Cmd = &cobra.Command{
	Use:   "total",
	Short: "Print the final amount of a receipt",
	Long: `Print the final amount of a receipt with at least two decimals.

The receipt is scanned from the bottom up and the first line mentioning a total
keyword (TOTAL, AMOUNT DUE, BALANCE DUE, PAYMENT, FINAL AMOUNT, DEBIT) decides
the result. Nothing is printed on standard output when that line carries no
dollar amount.

Example:
  finvision total -i receipt.txt`,
	RunE: totalFunc,
}

func totalFunc(cmd *cobra.Command, args []string) error {
	return run(cmd, root.SharedFlags.Input)
}

func run(cmd *cobra.Command, input string) error {
	_, text, err := root.ReadInput(cmd, input)
	if err != nil {
		return err
	}

	amount, ok := receiptparser.ExtractTotal(text)
	if !ok {
		_, err := fmt.Fprintln(cmd.ErrOrStderr(), "no total found")
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), common.FormatPrice(amount))
	return err
}
