package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	path := writeConfig(t, `
pos_api:
  base_url: "https://pos.example.com/api/v1"
orders_api:
  base_url: "https://orders.example.com/api/v1"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.PosAPI.TimeoutSeconds)
	assert.Equal(t, 2.0, cfg.OrdersAPI.RequestsPerSecond)
	assert.Equal(t, "./output/pos-export.xlsx", cfg.Output.Workbook)
	assert.Equal(t, "{name}_{timestamp}_{uuid}.xlsx", cfg.Output.ArchiveNameFormat)
	assert.Equal(t, "Products", cfg.Sheets.Products)
	assert.Equal(t, "Products Detailed", cfg.Sheets.ProductsDetailed)
	assert.Equal(t, "Orders", cfg.Sheets.Orders)
	assert.Equal(t, "Orders Detailed", cfg.Sheets.OrdersDetailed)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadRequiresBaseURLs(t *testing.T) {
	path := writeConfig(t, `
pos_api:
  base_url: "https://pos.example.com/api/v1"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orders_api.base_url")
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	path := writeConfig(t, `
pos_api:
  base_url: "https://pos.example.com"
orders_api:
  base_url: "https://orders.example.com"
log_level: "loud"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestAPIKeyResolution(t *testing.T) {
	t.Setenv("TEST_POS_KEY", "secret-token")

	withEnv := APIConfig{APIKeyEnv: "TEST_POS_KEY"}
	assert.Equal(t, "secret-token", withEnv.APIKey())

	// No env var name configured means unauthenticated.
	assert.Equal(t, "", APIConfig{}.APIKey())
}
