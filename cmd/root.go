// =============================================================================
// POS to XLSX Export - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI and the setup shared
// by every import command: loading .env, loading the YAML configuration, and
// configuring the logger.
//
// COBRA CLI STRUCTURE:
//   rootCmd (posexport)
//   ├── importProductsCmd        (posexport import-products)
//   ├── importOrdersCmd          (posexport import-orders)
//   ├── importOrdersDetailedCmd  (posexport import-orders-detailed)
//   └── versionCmd               (posexport version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/pos-xlsx-export/internal/config"
	"github.com/ginjaninja78/pos-xlsx-export/internal/importer"
	"github.com/ginjaninja78/pos-xlsx-export/internal/logger"
	"github.com/ginjaninja78/pos-xlsx-export/internal/ordersapi"
	"github.com/ginjaninja78/pos-xlsx-export/internal/posapi"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "posexport",
	Short: "POS to XLSX Export - Flatten POS catalog and order data into spreadsheets",
	Long: `POS to XLSX Export fetches the product catalog from the POS API and the
day's orders from the order-management API, flattens the nested JSON into
fixed-schema rows, and rewrites the matching sheets of an XLSX workbook.

Each import command is idempotent: it clears and fully rewrites its target
sheet(s), archiving the previous workbook first. A failed fetch leaves the
target sheet header-only; partial data rows are never written.

Example Usage:
  posexport import-products                     # Rewrite both product sheets
  posexport import-orders --date 20260822       # One summary row per order
  posexport import-orders-detailed              # One row per line item (today)`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the global flags.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug output",
	)
}

// =============================================================================
// SHARED COMMAND SETUP
// =============================================================================

// newImporter performs the setup shared by all import commands: .env, config,
// logger, API clients, importer.
func newImporter() (*importer.Importer, *logrus.Logger, error) {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFile, verbose)
	if err != nil {
		return nil, nil, err
	}

	products := posapi.NewClient(
		cfg.PosAPI.BaseURL,
		cfg.PosAPI.APIKey(),
		time.Duration(cfg.PosAPI.TimeoutSeconds)*time.Second,
		cfg.PosAPI.RequestsPerSecond,
		log,
	)
	orders := ordersapi.NewClient(
		cfg.OrdersAPI.BaseURL,
		cfg.OrdersAPI.APIKey(),
		time.Duration(cfg.OrdersAPI.TimeoutSeconds)*time.Second,
		cfg.OrdersAPI.RequestsPerSecond,
		log,
	)

	return importer.New(cfg, log, products, orders), log, nil
}
