package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aequery/aequery/internal/schema"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the dataset schema as sent to the LLM",
	Long: `Schema prints the textual rendering of the column registry — the exact
text embedded in every interpretation prompt. Useful for checking what
the model knows about the dataset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := schema.Default()
		if schemaPath != "" {
			var err error
			reg, err = schema.LoadYAML(schemaPath)
			if err != nil {
				return err
			}
		}
		fmt.Print(reg.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVar(&schemaPath, "schema", "", "YAML schema override (default: built-in AE schema)")
}
