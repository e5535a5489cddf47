// =============================================================================
// POS to XLSX Export - Import Orchestration
// =============================================================================
//
// This module runs one import end to end:
//
//   1. Ensure output directories exist; archive the previous workbook.
//   2. Open-or-create the workbook, reset the target sheet(s), write the
//      header row(s), and save. From this point the sheet is valid even if
//      the fetch fails: a failed run leaves a header-only sheet, never a
//      partially-written one.
//   3. Fetch from the upstream API. A fetch error ends the run here.
//   4. Flatten every record (flattening cannot fail) and write the data rows
//      in source order, auto-size the columns, save, and append the run
//      summary log.
//
// Each record's flattening is independent, so a malformed record never aborts
// a run; only a failed fetch does.
//
// =============================================================================

package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ginjaninja78/pos-xlsx-export/internal/config"
	"github.com/ginjaninja78/pos-xlsx-export/internal/flatten"
	"github.com/ginjaninja78/pos-xlsx-export/internal/ordersapi"
	"github.com/ginjaninja78/pos-xlsx-export/internal/posapi"
	"github.com/ginjaninja78/pos-xlsx-export/internal/sheets"
	"github.com/ginjaninja78/pos-xlsx-export/pkg/utils"
)

// ProductFetcher fetches the product catalog.
type ProductFetcher interface {
	FetchProducts(ctx context.Context) ([]posapi.Product, error)
}

// OrderFetcher fetches orders for one business date.
type OrderFetcher interface {
	FetchOrders(ctx context.Context, businessDate string) ([]ordersapi.Order, error)
}

// Result describes one completed (or failed) import run.
type Result struct {
	// Command is the import command that ran.
	Command string

	// Fetched is the number of upstream records fetched.
	Fetched int

	// Sheets maps each written sheet to its data row count.
	Sheets map[string]int

	// Duration is the total run time.
	Duration time.Duration

	// Err is non-nil when the run failed and the sheets are header-only.
	Err error
}

// Importer orchestrates import runs against a single workbook.
type Importer struct {
	cfg      *config.Config
	log      *logrus.Logger
	products ProductFetcher
	orders   OrderFetcher
}

// New creates an Importer. Fetchers are injected so tests can run against
// httptest fixtures or stubs.
func New(cfg *config.Config, log *logrus.Logger, products ProductFetcher, orders OrderFetcher) *Importer {
	return &Importer{cfg: cfg, log: log, products: products, orders: orders}
}

// =============================================================================
// IMPORT RUNS
// =============================================================================

// RunProducts imports the product catalog into the Products and Products
// Detailed sheets. Both sheets come from one fetch.
func (imp *Importer) RunProducts(ctx context.Context) Result {
	start := time.Now()
	result := Result{Command: "import-products", Sheets: make(map[string]int)}

	summarySheet := imp.cfg.Sheets.Products
	detailedSheet := imp.cfg.Sheets.ProductsDetailed

	w, err := imp.prepare(result.Command, map[string][]string{
		summarySheet:  flatten.ProductHeaders,
		detailedSheet: flatten.ProductDetailedHeaders,
	})
	if err != nil {
		return imp.finish(result, start, err)
	}
	defer w.Close()

	products, err := imp.products.FetchProducts(ctx)
	if err != nil {
		return imp.finish(result, start, err)
	}
	result.Fetched = len(products)

	for i, p := range products {
		if err := w.WriteRow(summarySheet, i+1, flatten.FlattenProduct(p)); err != nil {
			return imp.finish(result, start, err)
		}
		if err := w.WriteRow(detailedSheet, i+1, flatten.FlattenProductDetailed(p)); err != nil {
			return imp.finish(result, start, err)
		}
	}
	result.Sheets[summarySheet] = len(products)
	result.Sheets[detailedSheet] = len(products)

	if err := imp.seal(w, summarySheet, detailedSheet); err != nil {
		return imp.finish(result, start, err)
	}
	return imp.finish(result, start, nil)
}

// RunOrders imports one business date of orders into the Orders sheet, one
// aggregated row per order.
func (imp *Importer) RunOrders(ctx context.Context, businessDate string) Result {
	start := time.Now()
	result := Result{Command: "import-orders", Sheets: make(map[string]int)}

	sheet := imp.cfg.Sheets.Orders
	w, err := imp.prepare(result.Command, map[string][]string{sheet: flatten.OrderHeaders})
	if err != nil {
		return imp.finish(result, start, err)
	}
	defer w.Close()

	orders, err := imp.orders.FetchOrders(ctx, businessDate)
	if err != nil {
		return imp.finish(result, start, err)
	}
	result.Fetched = len(orders)

	for i, o := range orders {
		if err := w.WriteRow(sheet, i+1, flatten.FlattenOrder(o)); err != nil {
			return imp.finish(result, start, err)
		}
	}
	result.Sheets[sheet] = len(orders)

	if err := imp.seal(w, sheet); err != nil {
		return imp.finish(result, start, err)
	}
	return imp.finish(result, start, nil)
}

// RunOrdersDetailed imports one business date of orders into the Orders
// Detailed sheet, one row per selection plus one fallback row per empty
// check. Row numbers share one counter across the whole run.
func (imp *Importer) RunOrdersDetailed(ctx context.Context, businessDate string) Result {
	start := time.Now()
	result := Result{Command: "import-orders-detailed", Sheets: make(map[string]int)}

	sheet := imp.cfg.Sheets.OrdersDetailed
	w, err := imp.prepare(result.Command, map[string][]string{sheet: flatten.OrderDetailedHeaders})
	if err != nil {
		return imp.finish(result, start, err)
	}
	defer w.Close()

	orders, err := imp.orders.FetchOrders(ctx, businessDate)
	if err != nil {
		return imp.finish(result, start, err)
	}
	result.Fetched = len(orders)

	counter := flatten.NewRowCounter()
	written := 0
	for _, o := range orders {
		for _, row := range flatten.FlattenOrderDetailed(o, counter) {
			written++
			if err := w.WriteRow(sheet, written, row); err != nil {
				return imp.finish(result, start, err)
			}
		}
	}
	result.Sheets[sheet] = written

	if err := imp.seal(w, sheet); err != nil {
		return imp.finish(result, start, err)
	}
	return imp.finish(result, start, nil)
}

// =============================================================================
// RUN PLUMBING
// =============================================================================

// prepare archives the previous workbook, opens the current one, resets the
// target sheets and writes their headers, then saves so a later fetch failure
// still leaves valid header-only sheets.
func (imp *Importer) prepare(command string, headers map[string][]string) (*sheets.Writer, error) {
	fm := imp.fileManager()
	if err := fm.EnsureDirectories(); err != nil {
		return nil, err
	}

	archived, err := fm.ArchivePreviousWorkbook()
	if err != nil {
		return nil, err
	}
	if archived != "" {
		imp.log.WithField("archive", archived).Debug("archived previous workbook")
	}

	w, err := sheets.Open(imp.cfg.Output.Workbook)
	if err != nil {
		return nil, err
	}

	for sheet, header := range headers {
		if err := w.ResetSheet(sheet); err != nil {
			w.Close()
			return nil, err
		}
		if err := w.WriteHeader(sheet, header); err != nil {
			w.Close()
			return nil, err
		}
		imp.log.WithFields(logrus.Fields{
			"command": command,
			"sheet":   sheet,
		}).Debug("sheet reset, header written")
	}

	if err := w.Save(); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// seal auto-sizes the written sheets and saves the workbook.
func (imp *Importer) seal(w *sheets.Writer, sheetNames ...string) error {
	for _, sheet := range sheetNames {
		if err := w.AutoSize(sheet); err != nil {
			return err
		}
	}
	return w.Save()
}

// finish completes the result, logs the outcome, and appends the run summary
// log. Fetch and write errors end up here; they are logged, not panicked.
func (imp *Importer) finish(result Result, start time.Time, err error) Result {
	result.Duration = time.Since(start)
	result.Err = err

	if _, logErr := imp.fileManager().WriteRunSummary(utils.RunSummary{
		Command:   result.Command,
		Sheets:    result.Sheets,
		Fetched:   result.Fetched,
		StartTime: start,
		Duration:  result.Duration,
		Err:       err,
	}); logErr != nil {
		imp.log.WithError(logErr).Warn("could not write run summary log")
	}

	if err != nil {
		imp.log.WithError(err).WithField("command", result.Command).
			Error("import failed; target sheets are header-only")
		return result
	}

	imp.log.WithFields(logrus.Fields{
		"command": result.Command,
		"fetched": result.Fetched,
		"elapsed": result.Duration.String(),
	}).Info("import complete")
	return result
}

// fileManager builds the FileManager for the configured output.
func (imp *Importer) fileManager() *utils.FileManager {
	return utils.NewFileManager(
		imp.cfg.Output.Workbook,
		imp.cfg.Output.ArchiveDir,
		imp.cfg.Output.ArchiveNameFormat,
	)
}

// Describe renders a Result as a one-line console summary.
func (r Result) Describe() string {
	if r.Err != nil {
		return fmt.Sprintf("%s FAILED after %s: %v", r.Command, r.Duration, r.Err)
	}
	return fmt.Sprintf("%s: %d record(s) fetched in %s", r.Command, r.Fetched, r.Duration)
}
