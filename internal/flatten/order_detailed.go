// =============================================================================
// POS to XLSX Export - Order Flattener (Detailed)
// =============================================================================
//
// Flattens one order into one 20-column row per selection, walking checks in
// array order and selections within each check in array order. A check with
// no selections still produces exactly one fallback row ("No items", numeric
// item fields 0) so every check is visible in the sheet.
//
// Payment columns here are per check, not per order: each check's own first
// payment applies to all of that check's rows. This deliberately differs from
// the summary flattener, which surfaces one payment for the whole order; the
// two must not be consolidated without a product decision.
//
// Row numbers come from the caller's RowCounter, shared across all orders in
// a run.
//
// =============================================================================

package flatten

import (
	"strconv"
	"strings"

	"github.com/ginjaninja78/pos-xlsx-export/internal/ordersapi"
)

// fallbackItemName marks the single row emitted for a check with no
// selections.
const fallbackItemName = "No items"

// FlattenOrderDetailed produces the Orders Detailed rows for one order.
// Rows come back in source order; counter assigns their Row # values.
func FlattenOrderDetailed(o ordersapi.Order, counter *RowCounter) [][]string {
	var rows [][]string

	for _, check := range o.Checks {
		var paymentType, paymentAmount string
		if len(check.Payments) > 0 {
			paymentType = check.Payments[0].Type
			paymentAmount = floatCell(check.Payments[0].Amount)
		}

		if len(check.Selections) == 0 {
			rows = append(rows, detailedRow(counter, o, check, paymentType, paymentAmount,
				fallbackItemName, "0", "0", "0", "", "", "", ""))
			continue
		}

		for _, sel := range check.Selections {
			quantity := orZero(sel.Quantity)
			price := orZero(sel.Price)
			itemTotal := quantity * price

			names := make([]string, len(sel.Modifiers))
			for i, m := range sel.Modifiers {
				names[i] = m.DisplayName
			}

			rows = append(rows, detailedRow(counter, o, check, paymentType, paymentAmount,
				sel.DisplayName,
				formatFloat(quantity),
				formatFloat(price),
				formatFloat(itemTotal),
				strings.Join(names, ", "),
				refCell(sel.SalesCategory),
				refCell(sel.ItemGroup),
				sel.FulfillmentStatus))
		}
	}

	return rows
}

// detailedRow assembles one 20-column row. The counter is consumed here so
// fallback rows and selection rows number identically.
func detailedRow(counter *RowCounter, o ordersapi.Order, check ordersapi.Check,
	paymentType, paymentAmount, itemName, quantity, price, itemTotal,
	modifiers, salesCategory, itemGroup, fulfillment string) []string {

	return []string{
		strconv.Itoa(counter.Next()),
		o.GUID,
		o.DisplayNumber,
		businessDateCell(o.BusinessDate),
		o.OpenedDate,
		check.GUID,
		check.DisplayNumber,
		floatCell(check.TotalAmount),
		floatCell(check.TaxAmount),
		check.PaymentStatus,
		paymentType,
		paymentAmount,
		itemName,
		quantity,
		price,
		itemTotal,
		modifiers,
		salesCategory,
		itemGroup,
		fulfillment,
	}
}
