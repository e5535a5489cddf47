// =============================================================================
// POS to XLSX Export - Main Entry Point
// =============================================================================
//
// This is the main entry point for the POS to XLSX export CLI. It initializes
// the Cobra CLI framework and delegates command execution to the cmd package.
//
// USAGE:
//   posexport import-products           - Rewrite the product sheets
//   posexport import-orders             - Rewrite the order summary sheet
//   posexport import-orders-detailed    - Rewrite the per-line-item sheet
//   posexport version                   - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/pos-xlsx-export/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
