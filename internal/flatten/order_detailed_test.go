package flatten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/pos-xlsx-export/internal/ordersapi"
)

// Column indices in the detailed order row.
const (
	colRowNum          = 0
	colCheckGUID       = 5
	colDetPayStatus    = 9
	colDetPayType      = 10
	colDetPayAmount    = 11
	colItemName        = 12
	colQuantity        = 13
	colPrice           = 14
	colItemTotal       = 15
	colModifiers       = 16
	colSalesCategory   = 17
	colItemGroup       = 18
	colFulfillmentStat = 19
)

func TestDetailedRowWidth(t *testing.T) {
	o := ordersapi.Order{Checks: []ordersapi.Check{{}}}
	rows := FlattenOrderDetailed(o, NewRowCounter())

	require.Len(t, rows, 1)
	assert.Len(t, rows[0], len(OrderDetailedHeaders))
}

// A check with zero selections produces exactly one fallback row.
func TestDetailedEmptyCheckFallbackRow(t *testing.T) {
	o := ordersapi.Order{
		GUID: "o-1",
		Checks: []ordersapi.Check{
			{GUID: "c-1", PaymentStatus: "OPEN"},
		},
	}

	rows := FlattenOrderDetailed(o, NewRowCounter())
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "No items", row[colItemName])
	assert.Equal(t, "0", row[colQuantity])
	assert.Equal(t, "0", row[colPrice])
	assert.Equal(t, "0", row[colItemTotal])
	assert.Equal(t, "", row[colModifiers])
	assert.Equal(t, "", row[colSalesCategory])
	assert.Equal(t, "", row[colItemGroup])
	assert.Equal(t, "", row[colFulfillmentStat])
}

func TestDetailedItemTotal(t *testing.T) {
	o := ordersapi.Order{
		Checks: []ordersapi.Check{
			{
				Selections: []ordersapi.Selection{
					{DisplayName: "Burger", Quantity: fptr(2), Price: fptr(4.75)},
					{DisplayName: "Soda"}, // both absent: everything 0
				},
			},
		},
	}

	rows := FlattenOrderDetailed(o, NewRowCounter())
	require.Len(t, rows, 2)

	assert.Equal(t, "2", rows[0][colQuantity])
	assert.Equal(t, "4.75", rows[0][colPrice])
	assert.Equal(t, "9.5", rows[0][colItemTotal])

	// No textual-1 asymmetry on the detailed path: absent quantity is 0
	// everywhere here.
	assert.Equal(t, "0", rows[1][colQuantity])
	assert.Equal(t, "0", rows[1][colPrice])
	assert.Equal(t, "0", rows[1][colItemTotal])
}

// Payment columns are per check: each check's own first payment applies to
// all of that check's rows, unlike the order-wide capture in the summary.
func TestDetailedPerCheckPayment(t *testing.T) {
	o := ordersapi.Order{
		Checks: []ordersapi.Check{
			{
				GUID:          "c-1",
				PaymentStatus: "PAID",
				Payments:      []ordersapi.Payment{{Type: "CASH", Amount: fptr(8)}},
				Selections: []ordersapi.Selection{
					{DisplayName: "Tea"}, {DisplayName: "Scone"},
				},
			},
			{
				GUID:       "c-2",
				Selections: []ordersapi.Selection{{DisplayName: "Coffee"}},
			},
		},
	}

	rows := FlattenOrderDetailed(o, NewRowCounter())
	require.Len(t, rows, 3)

	for _, row := range rows[:2] {
		assert.Equal(t, "c-1", row[colCheckGUID])
		assert.Equal(t, "CASH", row[colDetPayType])
		assert.Equal(t, "8", row[colDetPayAmount])
		assert.Equal(t, "PAID", row[colDetPayStatus])
	}

	assert.Equal(t, "c-2", rows[2][colCheckGUID])
	assert.Equal(t, "", rows[2][colDetPayType])
	assert.Equal(t, "", rows[2][colDetPayAmount])
}

func TestDetailedModifiersJoined(t *testing.T) {
	o := ordersapi.Order{
		Checks: []ordersapi.Check{
			{
				Selections: []ordersapi.Selection{
					{
						DisplayName: "Burger",
						Modifiers: []ordersapi.Modifier{
							{DisplayName: "No onions"},
							{DisplayName: "Extra cheese"},
						},
					},
				},
			},
		},
	}

	rows := FlattenOrderDetailed(o, NewRowCounter())
	require.Len(t, rows, 1)
	assert.Equal(t, "No onions, Extra cheese", rows[0][colModifiers])
}

// Row numbers come from one shared counter: they keep increasing across
// checks and across orders, fallback rows included, and never reset.
func TestDetailedRowCounterSharedAcrossOrders(t *testing.T) {
	counter := NewRowCounter()

	first := ordersapi.Order{
		Checks: []ordersapi.Check{
			{Selections: []ordersapi.Selection{{DisplayName: "A"}, {DisplayName: "B"}}},
			{}, // fallback row
		},
	}
	second := ordersapi.Order{
		Checks: []ordersapi.Check{
			{Selections: []ordersapi.Selection{{DisplayName: "C"}}},
		},
	}

	var numbers []string
	for _, o := range []ordersapi.Order{first, second} {
		for _, row := range FlattenOrderDetailed(o, counter) {
			numbers = append(numbers, row[colRowNum])
		}
	}

	assert.Equal(t, []string{"1", "2", "3", "4"}, numbers)
}

func TestDetailedSelectionRefs(t *testing.T) {
	o := ordersapi.Order{
		Checks: []ordersapi.Check{
			{
				Selections: []ordersapi.Selection{
					{
						DisplayName:       "Burger",
						SalesCategory:     &ordersapi.Ref{GUID: "sc-1"},
						ItemGroup:         &ordersapi.Ref{GUID: "ig-1"},
						FulfillmentStatus: "SENT",
					},
				},
			},
		},
	}

	rows := FlattenOrderDetailed(o, NewRowCounter())
	require.Len(t, rows, 1)
	assert.Equal(t, "sc-1", rows[0][colSalesCategory])
	assert.Equal(t, "ig-1", rows[0][colItemGroup])
	assert.Equal(t, "SENT", rows[0][colFulfillmentStat])
}
