// Package taxonomy implements the command printing or exporting the category taxonomy.
package taxonomy

import (
	"fmt"

	"fjacquet/finvision/cmd/root"
	"fjacquet/finvision/internal/categorizer"
	"fjacquet/finvision/internal/logging"
	"fjacquet/finvision/internal/models"
	"fjacquet/finvision/internal/store"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// UseDefault selects the built-in taxonomy instead of the configured one
var UseDefault bool

// Cmd represents the taxonomy command
var Cmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Print or export the category taxonomy",
	Long: `Print the category taxonomy as YAML, in matching order.

With --output the taxonomy is written to a file that can be edited and used as
categories.file.

Example:
  finvision taxonomy --default -o categories.yaml`,
	RunE: taxonomyFunc,
}

func init() {
	Cmd.Flags().BoolVar(&UseDefault, "default", false, "Use the built-in taxonomy instead of the configured one")
}

func taxonomyFunc(cmd *cobra.Command, args []string) error {
	app, err := root.GetContainer()
	if err != nil {
		return err
	}

	taxonomy := app.GetTaxonomy()
	if UseDefault {
		taxonomy = categorizer.DefaultTaxonomy()
	}
	return run(cmd, taxonomy, root.SharedFlags.Output, app.GetLogger())
}

func run(cmd *cobra.Command, taxonomy *categorizer.Taxonomy, output string, logger logging.Logger) error {
	if output != "" {
		if err := store.ExportTaxonomy(store.NewCategoryStore(output, logger), taxonomy); err != nil {
			return err
		}
		logger.Info("Taxonomy exported",
			logging.Field{Key: logging.FieldOutputFile, Value: output},
			logging.Field{Key: logging.FieldCount, Value: taxonomy.Len()})
		return nil
	}

	data, err := yaml.Marshal(models.CategoriesConfig{Categories: taxonomy.Categories()})
	if err != nil {
		return fmt.Errorf("error marshaling taxonomy: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
