// =============================================================================
// POS to XLSX Export - Configuration Module
// =============================================================================
//
// This module loads and manages the application configuration. A single YAML
// file (config.yaml by default) describes the two upstream APIs, the output
// workbook, and logging. API keys are NOT stored in the YAML: each API
// section names an environment variable, and the key is read from the
// environment (a .env file is loaded at startup if present).
//
// LOADING PIPELINE:
//   read file -> parse YAML -> apply defaults -> validate
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the full application configuration.
type Config struct {
	// PosAPI describes the product catalog endpoint.
	PosAPI APIConfig `yaml:"pos_api"`

	// OrdersAPI describes the order-management endpoint.
	OrdersAPI APIConfig `yaml:"orders_api"`

	// Output describes the workbook and its archive directory.
	Output OutputConfig `yaml:"output"`

	// Sheets names the four target sheets inside the workbook.
	Sheets SheetNames `yaml:"sheets"`

	// LogFile is the path of the log file. Empty disables file logging;
	// console logging is always on.
	LogFile string `yaml:"log_file"`

	// LogLevel controls verbosity: "debug", "info", "warn", "error".
	// Default: "info". The --verbose flag overrides this to "debug".
	LogLevel string `yaml:"log_level"`
}

// APIConfig describes one upstream REST API.
type APIConfig struct {
	// BaseURL is the API base URL without a trailing slash.
	BaseURL string `yaml:"base_url"`

	// APIKeyEnv is the name of the environment variable holding the
	// bearer token for this API. Empty means unauthenticated.
	APIKeyEnv string `yaml:"api_key_env"`

	// TimeoutSeconds is the per-request timeout. Default: 30.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// RequestsPerSecond paces outgoing requests. Default: 2.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// OutputConfig describes where the workbook lives.
type OutputConfig struct {
	// Workbook is the path of the output XLSX file.
	// Default: "./output/pos-export.xlsx"
	Workbook string `yaml:"workbook"`

	// ArchiveDir receives a copy of the previous workbook before each
	// rewrite. Default: "./output_archive"
	ArchiveDir string `yaml:"archive_dir"`

	// ArchiveNameFormat names archived copies. Placeholders:
	//   {timestamp} - YYYYMMDD_HHMMSS
	//   {uuid}      - a random UUID
	//   {name}      - base name of the workbook without extension
	// Default: "{name}_{timestamp}_{uuid}.xlsx"
	ArchiveNameFormat string `yaml:"archive_name_format"`
}

// SheetNames holds the four sheet names. They double as the import run
// labels in logs and summary output.
type SheetNames struct {
	// Products is the 17-column product summary sheet.
	// Default: "Products"
	Products string `yaml:"products"`

	// ProductsDetailed is the 19-column product sheet.
	// Default: "Products Detailed"
	ProductsDetailed string `yaml:"products_detailed"`

	// Orders is the 21-column order summary sheet.
	// Default: "Orders"
	Orders string `yaml:"orders"`

	// OrdersDetailed is the 20-column per-line-item sheet.
	// Default: "Orders Detailed"
	OrdersDetailed string `yaml:"orders_detailed"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: the path to the configuration file.
//
// RETURNS:
//   - The parsed configuration with defaults applied.
//   - An error if the file cannot be read, parsed, or validated.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	applyAPIDefaults(&cfg.PosAPI)
	applyAPIDefaults(&cfg.OrdersAPI)

	if cfg.Output.Workbook == "" {
		cfg.Output.Workbook = "./output/pos-export.xlsx"
	}
	if cfg.Output.ArchiveDir == "" {
		cfg.Output.ArchiveDir = "./output_archive"
	}
	if cfg.Output.ArchiveNameFormat == "" {
		cfg.Output.ArchiveNameFormat = "{name}_{timestamp}_{uuid}.xlsx"
	}

	if cfg.Sheets.Products == "" {
		cfg.Sheets.Products = "Products"
	}
	if cfg.Sheets.ProductsDetailed == "" {
		cfg.Sheets.ProductsDetailed = "Products Detailed"
	}
	if cfg.Sheets.Orders == "" {
		cfg.Sheets.Orders = "Orders"
	}
	if cfg.Sheets.OrdersDetailed == "" {
		cfg.Sheets.OrdersDetailed = "Orders Detailed"
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// applyAPIDefaults sets the per-API defaults.
func applyAPIDefaults(api *APIConfig) {
	if api.TimeoutSeconds == 0 {
		api.TimeoutSeconds = 30
	}
	if api.RequestsPerSecond == 0 {
		api.RequestsPerSecond = 2
	}
}

// validate checks the configuration and creates the output directories.
func validate(cfg *Config) error {
	if cfg.PosAPI.BaseURL == "" {
		return fmt.Errorf("pos_api.base_url is required")
	}
	if cfg.OrdersAPI.BaseURL == "" {
		return fmt.Errorf("orders_api.base_url is required")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", cfg.LogLevel)
	}

	dirs := []string{
		filepath.Dir(cfg.Output.Workbook),
		cfg.Output.ArchiveDir,
	}
	if cfg.LogFile != "" {
		dirs = append(dirs, filepath.Dir(cfg.LogFile))
	}

	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}

	return nil
}

// APIKey resolves the bearer token for an API from the environment.
// An unset APIKeyEnv means the API is unauthenticated and returns "".
func (a APIConfig) APIKey() string {
	if a.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(a.APIKeyEnv)
}
