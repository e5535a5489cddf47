// =============================================================================
// POS to XLSX Export - Import Orders Commands
// =============================================================================
//
// This file defines the two order import commands:
//
//   import-orders          : one aggregated row per order (21 columns)
//   import-orders-detailed : one row per check selection, with a fallback
//                            row for checks that have no selections
//                            (20 columns)
//
// Both take --date in yyyyMMdd form, defaulting to today's business date.
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// businessDate filters the order fetch, in yyyyMMdd form.
var businessDate string

// importOrdersCmd represents the 'import-orders' command.
var importOrdersCmd = &cobra.Command{
	Use:   "import-orders",
	Short: "Fetch one business date of orders and rewrite the order summary sheet",
	Long: `The import-orders command fetches every order filed under the given
business date and rewrites the Orders sheet with one aggregated row per
order: summed check amounts, the first captured payment, the total item
count, and a human-readable order summary.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		imp, _, err := newImporter()
		if err != nil {
			return err
		}

		result := imp.RunOrders(context.Background(), resolveBusinessDate())
		fmt.Println(result.Describe())
		return result.Err
	},
}

// importOrdersDetailedCmd represents the 'import-orders-detailed' command.
var importOrdersDetailedCmd = &cobra.Command{
	Use:   "import-orders-detailed",
	Short: "Fetch one business date of orders and rewrite the per-line-item sheet",
	Long: `The import-orders-detailed command fetches every order filed under the
given business date and rewrites the Orders Detailed sheet with one row per
line item. Checks in array order, selections within a check in array order;
a check with no selections still yields one "No items" row. Row numbers run
across the whole import and never reset.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		imp, _, err := newImporter()
		if err != nil {
			return err
		}

		result := imp.RunOrdersDetailed(context.Background(), resolveBusinessDate())
		fmt.Println(result.Describe())
		return result.Err
	},
}

// resolveBusinessDate returns the --date value, defaulting to today.
func resolveBusinessDate() string {
	if businessDate != "" {
		return businessDate
	}
	return time.Now().Format("20060102")
}

// init registers the order commands and their shared flag.
func init() {
	for _, c := range []*cobra.Command{importOrdersCmd, importOrdersDetailedCmd} {
		c.Flags().StringVar(
			&businessDate,
			"date",
			"",
			"Business date to import, in yyyyMMdd form (default: today)",
		)
		rootCmd.AddCommand(c)
	}
}
