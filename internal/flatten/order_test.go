package flatten

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ginjaninja78/pos-xlsx-export/internal/ordersapi"
)

// Column indices in the order summary row.
const (
	colChecks        = 14
	colTotalAmount   = 15
	colTaxAmount     = 16
	colPaymentType   = 17
	colPaymentStatus = 18
	colTotalItems    = 19
	colOrderSummary  = 20
)

func TestFlattenOrderRowWidth(t *testing.T) {
	assert.Len(t, FlattenOrder(ordersapi.Order{}), len(OrderHeaders))
}

func TestFlattenOrderAggregatesAmounts(t *testing.T) {
	o := ordersapi.Order{
		Checks: []ordersapi.Check{
			{TotalAmount: fptr(12.5), TaxAmount: fptr(1.25)},
			{TotalAmount: fptr(7.5)}, // absent tax counts as 0
			{},                       // fully absent amounts count as 0
		},
	}

	row := FlattenOrder(o)
	assert.Equal(t, "20", row[colTotalAmount])
	assert.Equal(t, "1.25", row[colTaxAmount])
	assert.Equal(t, "3 check(s)", row[colChecks])
}

// The summary payment comes from the first check with at least one payment;
// later checks never overwrite it, even when they also carry payments.
func TestFlattenOrderFirstPayingCheckWins(t *testing.T) {
	o := ordersapi.Order{
		Checks: []ordersapi.Check{
			{PaymentStatus: "OPEN"}, // no payments: skipped
			{
				PaymentStatus: "PAID",
				Payments: []ordersapi.Payment{
					{Type: "CREDIT", Amount: fptr(10)},
					{Type: "CASH", Amount: fptr(5)},
				},
			},
			{
				PaymentStatus: "PAID",
				Payments:      []ordersapi.Payment{{Type: "GIFTCARD", Amount: fptr(3)}},
			},
		},
	}

	row := FlattenOrder(o)
	assert.Equal(t, "CREDIT", row[colPaymentType])
	assert.Equal(t, "PAID", row[colPaymentStatus])
}

// Scenario pinned from the sheet contract: Check A has no payments and one
// "2x Burger" selection, Check B has a CREDIT payment and one "1x Fries".
func TestFlattenOrderSummaryScenario(t *testing.T) {
	o := ordersapi.Order{
		Checks: []ordersapi.Check{
			{
				Selections: []ordersapi.Selection{
					{DisplayName: "Burger", Quantity: fptr(2)},
				},
			},
			{
				PaymentStatus: "PAID",
				Payments:      []ordersapi.Payment{{Type: "CREDIT", Amount: fptr(10)}},
				Selections: []ordersapi.Selection{
					{DisplayName: "Fries", Quantity: fptr(1)},
				},
			},
		},
	}

	row := FlattenOrder(o)
	assert.Equal(t, "CREDIT", row[colPaymentType])
	assert.Equal(t, "3", row[colTotalItems])
	assert.Equal(t, "2x Burger, 1x Fries", row[colOrderSummary])
}

// Regression pin: an absent quantity counts 0 toward Total Items but renders
// as "1x" in the summary text. Long-standing behavior downstream reconciles
// against; do not "fix" without a product decision.
func TestSummaryTextDefaultsMissingQuantityToOne(t *testing.T) {
	o := ordersapi.Order{
		Checks: []ordersapi.Check{
			{Selections: []ordersapi.Selection{{DisplayName: "Soda"}}},
		},
	}

	row := FlattenOrder(o)
	assert.Equal(t, "0", row[colTotalItems])
	assert.Equal(t, "1x Soda", row[colOrderSummary])
}

// An explicit 0 is not absence: it counts 0 and renders "0x".
func TestSummaryTextKeepsExplicitZeroQuantity(t *testing.T) {
	o := ordersapi.Order{
		Checks: []ordersapi.Check{
			{Selections: []ordersapi.Selection{{DisplayName: "Water", Quantity: fptr(0)}}},
		},
	}

	row := FlattenOrder(o)
	assert.Equal(t, "0", row[colTotalItems])
	assert.Equal(t, "0x Water", row[colOrderSummary])
}

func TestFlattenOrderHeaderFields(t *testing.T) {
	guests := 4
	o := ordersapi.Order{
		GUID:           "o-1",
		DisplayNumber:  "101",
		Source:         "In Store",
		BusinessDate:   20260822,
		OpenedDate:     "2026-08-22T11:02:00.000+0000",
		Duration:       fptr(1860),
		GuestCount:     &guests,
		Voided:         false,
		ApprovalStatus: "APPROVED",
		Server:         &ordersapi.Ref{GUID: "srv-9"},
		TestMode:       true,
	}

	row := FlattenOrder(o)
	assert.Equal(t, "o-1", row[0])
	assert.Equal(t, "101", row[1])
	assert.Equal(t, "20260822", row[3])
	assert.Equal(t, "2026-08-22T11:02:00.000+0000", row[4])
	assert.Equal(t, "1860", row[7])
	assert.Equal(t, "4", row[8])
	assert.Equal(t, "No", row[9])
	assert.Equal(t, "srv-9", row[11])
	assert.Equal(t, "", row[12]) // absent device
	assert.Equal(t, "Yes", row[13])
}

func TestFlattenOrderNoChecks(t *testing.T) {
	row := FlattenOrder(ordersapi.Order{GUID: "o-2"})

	assert.Equal(t, "0 check(s)", row[colChecks])
	assert.Equal(t, "0", row[colTotalAmount])
	assert.Equal(t, "", row[colPaymentType])
	assert.Equal(t, "", row[colPaymentStatus])
	assert.Equal(t, "0", row[colTotalItems])
	assert.Equal(t, "", row[colOrderSummary])
}
