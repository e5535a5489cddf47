// =============================================================================
// POS to XLSX Export - Import Products Command
// =============================================================================
//
// This file defines the 'import-products' command. One fetch of the product
// catalog rewrites both product sheets (summary and detailed).
//
// COMMAND USAGE:
//   posexport import-products
//
// PIPELINE:
//   1. Load configuration and set up logging
//   2. Archive the previous workbook
//   3. Reset the Products and Products Detailed sheets, write headers
//   4. Fetch the catalog (a failure here leaves header-only sheets)
//   5. Flatten each product into both sheets, auto-size, save
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// importProductsCmd represents the 'import-products' command.
var importProductsCmd = &cobra.Command{
	Use:   "import-products",
	Short: "Fetch the product catalog and rewrite both product sheets",
	Long: `The import-products command fetches the full product catalog from the POS
API and rewrites the Products sheet (17 columns) and the Products Detailed
sheet (19 columns, with standalone Image URL and Calories columns).

Re-running on an unchanged catalog produces identical sheet contents.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		imp, _, err := newImporter()
		if err != nil {
			return err
		}

		result := imp.RunProducts(context.Background())
		fmt.Println(result.Describe())
		return result.Err
	},
}

// init registers the import-products command with the root command.
func init() {
	rootCmd.AddCommand(importProductsCmd)
}
