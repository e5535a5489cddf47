// =============================================================================
// POS to XLSX Export - Order Flattener (Summary)
// =============================================================================
//
// Flattens one order into one 21-column row aggregating all of its checks:
//
//   - Total Amount / Tax Amount: numeric sums over checks in array order,
//     absent amounts counting as 0.
//   - Payment Type / Payment Status: taken from the first check (in array
//     order) that has at least one payment — the type from that check's first
//     payment, the status from the check itself. Later checks never
//     overwrite either (first wins, not last wins, not merged).
//   - Total Items: sum of every selection's quantity across every check,
//     absent quantity counting as 0.
//   - Order Summary: "{quantity}x {displayName}" per selection, joined with
//     ", " in encounter order.
//
// NOTE on quantities: an absent quantity counts 0 toward Total Items but
// renders as "1x" in Order Summary. The asymmetry is long-standing upstream
// behavior that downstream reports reconcile against; it is pinned by a
// regression test and must not be "fixed" here. An explicit quantity of 0
// counts 0 and renders "0x" — only absence triggers the textual 1.
//
// =============================================================================

package flatten

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ginjaninja78/pos-xlsx-export/internal/ordersapi"
)

// FlattenOrder produces the 21-column Orders row for one order.
func FlattenOrder(o ordersapi.Order) []string {
	var totalAmount, taxAmount float64
	var totalItems float64
	var paymentType, paymentStatus string
	paymentCaptured := false

	var summary []string

	for _, check := range o.Checks {
		totalAmount += orZero(check.TotalAmount)
		taxAmount += orZero(check.TaxAmount)

		if !paymentCaptured && len(check.Payments) > 0 {
			paymentType = check.Payments[0].Type
			paymentStatus = check.PaymentStatus
			paymentCaptured = true
		}

		for _, sel := range check.Selections {
			totalItems += orZero(sel.Quantity)
			summary = append(summary, fmt.Sprintf("%sx %s", summaryQuantity(sel.Quantity), sel.DisplayName))
		}
	}

	return []string{
		o.GUID,
		o.DisplayNumber,
		o.Source,
		businessDateCell(o.BusinessDate),
		o.OpenedDate,
		o.PaidDate,
		o.ClosedDate,
		floatCell(o.Duration),
		intCell(o.GuestCount),
		yesNo(o.Voided),
		o.ApprovalStatus,
		refCell(o.Server),
		refCell(o.Device),
		yesNo(o.TestMode),
		fmt.Sprintf("%d check(s)", len(o.Checks)),
		formatFloat(totalAmount),
		formatFloat(taxAmount),
		paymentType,
		paymentStatus,
		formatFloat(totalItems),
		strings.Join(summary, ", "),
	}
}

// summaryQuantity renders a selection quantity for the Order Summary text.
// Absent defaults to 1 here even though the item counter treats it as 0.
func summaryQuantity(q *float64) string {
	if q == nil {
		return "1"
	}
	return formatFloat(*q)
}

// businessDateCell renders the yyyyMMdd integer, empty when unset.
func businessDateCell(d int) string {
	if d == 0 {
		return ""
	}
	return strconv.Itoa(d)
}

// refCell renders an optional entity reference as its GUID.
func refCell(r *ordersapi.Ref) string {
	if r == nil {
		return ""
	}
	return r.GUID
}
