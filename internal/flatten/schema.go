// =============================================================================
// POS to XLSX Export - Sheet Schemas
// =============================================================================
//
// This package turns nested API records into flat rows for the output
// workbook. The column schemas below are an external contract: downstream
// reporting reads the sheets by position, so column order must never change.
//
// Four schemas exist:
//   - Products          (17 columns, one row per product)
//   - Products Detailed (19 columns, adds Image URL and Calories)
//   - Orders            (21 columns, one aggregated row per order)
//   - Orders Detailed   (20 columns, one row per selection, with a
//                        fallback row for checks that have no selections)
//
// =============================================================================

package flatten

// ProductHeaders is the column schema of the Products sheet.
var ProductHeaders = []string{
	"ID", "Created", "Updated", "POS ID", "Brand ID", "Name", "Description",
	"Price", "In Stock", "Status", "Not Found", "Tags", "Category ID",
	"Category Name", "Custom Fields", "Modifier Groups", "Modifier Group Count",
}

// ProductDetailedHeaders is the column schema of the Products Detailed sheet.
// Image URL and Calories repeat values that also appear inside the Custom
// Fields JSON column.
var ProductDetailedHeaders = []string{
	"ID", "Created", "Updated", "POS ID", "Brand ID", "Name", "Description",
	"Price", "In Stock", "Status", "Not Found", "Tags", "Category ID",
	"Category Name", "Image URL", "Calories", "Custom Fields",
	"Modifier Groups", "Modifier Group Count",
}

// OrderHeaders is the column schema of the Orders sheet.
var OrderHeaders = []string{
	"GUID", "Order #", "Source", "Business Date", "Opened", "Paid", "Closed",
	"Duration", "Guest Count", "Voided", "Approval Status", "Server", "Device",
	"Test Mode", "Checks", "Total Amount", "Tax Amount", "Payment Type",
	"Payment Status", "Total Items", "Order Summary",
}

// OrderDetailedHeaders is the column schema of the Orders Detailed sheet.
var OrderDetailedHeaders = []string{
	"Row #", "Order GUID", "Order #", "Business Date", "Opened", "Check GUID",
	"Check #", "Check Total", "Check Tax", "Payment Status", "Payment Type",
	"Payment Amount", "Item Name", "Quantity", "Price", "Item Total",
	"Modifiers", "Sales Category", "Item Group", "Fulfillment Status",
}

// RowCounter numbers detailed order rows. It is created once per run and
// threaded through every FlattenOrderDetailed call, so row numbers increase
// monotonically across checks and across orders and never reset mid-run.
type RowCounter struct {
	n int
}

// NewRowCounter returns a counter whose first Next() is 1.
func NewRowCounter() *RowCounter {
	return &RowCounter{}
}

// Next returns the next row number.
func (c *RowCounter) Next() int {
	c.n++
	return c.n
}
