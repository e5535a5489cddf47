// =============================================================================
// POS to XLSX Export - Order Management API Models
// =============================================================================
//
// Typed models for the restaurant order-management API. An order nests checks,
// each check nests payments and selections, and each selection nests
// modifiers. Numeric fields the upstream may omit are pointers so the
// flatteners can distinguish "absent" from an explicit zero — the summary
// flattener depends on that distinction (see flatten.FlattenOrder).
//
// =============================================================================

package ordersapi

// Order is one order snapshot for a single business date.
type Order struct {
	GUID          string `json:"guid"`
	DisplayNumber string `json:"displayNumber"`
	Source        string `json:"source"`

	// BusinessDate is the yyyyMMdd integer the upstream files the order
	// under. Zero renders as an empty cell.
	BusinessDate int `json:"businessDate"`

	// OpenedDate, PaidDate and ClosedDate are ISO-ish timestamp strings
	// passed through to the sheet untouched.
	OpenedDate string `json:"openedDate"`
	PaidDate   string `json:"paidDate"`
	ClosedDate string `json:"closedDate"`

	Duration       *float64 `json:"duration"`
	GuestCount     *int     `json:"numberOfGuests"`
	Voided         bool     `json:"voided"`
	ApprovalStatus string   `json:"approvalStatus"`
	Server         *Ref     `json:"server"`
	Device         *Ref     `json:"createdDevice"`
	TestMode       bool     `json:"testMode"`
	Checks         []Check  `json:"checks"`
}

// Check is a sub-bill within an order, holding its own payments and line
// items.
type Check struct {
	GUID          string      `json:"guid"`
	DisplayNumber string      `json:"displayNumber"`
	TotalAmount   *float64    `json:"totalAmount"`
	TaxAmount     *float64    `json:"taxAmount"`
	PaymentStatus string      `json:"paymentStatus"`
	Payments      []Payment   `json:"payments"`
	Selections    []Selection `json:"selections"`
}

// Payment is one tender on a check.
type Payment struct {
	Type   string   `json:"type"`
	Amount *float64 `json:"amount"`
}

// Selection is a single ordered line item within a check.
type Selection struct {
	GUID              string     `json:"guid"`
	DisplayName       string     `json:"displayName"`
	Quantity          *float64   `json:"quantity"`
	Price             *float64   `json:"price"`
	SalesCategory     *Ref       `json:"salesCategory"`
	ItemGroup         *Ref       `json:"itemGroup"`
	FulfillmentStatus string     `json:"fulfillmentStatus"`
	Modifiers         []Modifier `json:"modifiers"`
}

// Modifier is one modifier applied to a selection.
type Modifier struct {
	DisplayName string `json:"displayName"`
}

// Ref is a GUID reference to another upstream entity (server, device, sales
// category, item group). Only the GUID is surfaced in the sheets.
type Ref struct {
	GUID string `json:"guid"`
	Name string `json:"name"`
}
