// Package categorize handles item categorization commands
package categorize

import (
	"fmt"

	"fjacquet/finvision/cmd/root"
	"fjacquet/finvision/internal/categorizer"

	"github.com/spf13/cobra"
)

// ItemName is the item name given with --name
var ItemName string

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize an item name using keyword matching",
	Long: `Categorize an item name against the category taxonomy. The first category
with a keyword contained in the upper-cased name wins; names matching no keyword
are reported as "Others".

Example:
  finvision categorize --name "Cottage Cheese"`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&ItemName, "name", "n", "", "Item name to categorize")
	_ = Cmd.MarkFlagRequired("name")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	app, err := root.GetContainer()
	if err != nil {
		return err
	}
	return run(cmd, app.GetCategorizer(), ItemName)
}

func run(cmd *cobra.Command, strategy categorizer.CategorizationStrategy, name string) error {
	label, _, err := strategy.Categorize(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("error categorizing %q: %w", name, err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), label)
	return err
}
