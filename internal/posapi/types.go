// =============================================================================
// POS to XLSX Export - Product Catalog API Models
// =============================================================================
//
// This package contains the typed models for the POS product catalog API and
// the HTTP client that fetches them. The models mirror the upstream JSON
// exactly; fields the upstream may omit are pointers (or zero values) so that
// the flatteners can apply their defensive defaults without ever failing.
//
// =============================================================================

package posapi

import "encoding/json"

// ProductsResponse is the envelope returned by the products endpoint:
//
//	{ "response": { "products": [ ... ] } }
type ProductsResponse struct {
	Response struct {
		Products []Product `json:"products"`
	} `json:"response"`
}

// Product is a single catalog entry. All fields are read-only snapshots;
// nothing in this tool mutates or persists them.
type Product struct {
	// ID is the catalog identifier.
	ID string `json:"id"`

	// CreatedAt and UpdatedAt are epoch seconds. Zero means the upstream
	// did not supply a value, and renders as an empty cell, not 1970.
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`

	// PosID is the identifier the product carries inside the POS itself,
	// distinct from the catalog ID.
	PosID string `json:"pos_id"`

	// BrandID identifies the owning brand/location group.
	BrandID string `json:"brand_id"`

	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	InStock     bool     `json:"in_stock"`
	Status      string   `json:"status"`
	NotFound    bool     `json:"not_found"`
	Tags        []string `json:"tags"`

	// Category is optional; absent categories render as empty cells.
	Category *Category `json:"category"`

	// CustomFields is an open-ended list of key/value attributes. Keys are
	// not unique; the last occurrence of a duplicate key wins.
	CustomFields []CustomField `json:"custom_fields"`

	// ModifierGroups is an opaque nested structure. It is serialized back
	// to JSON verbatim, never mapped field by field.
	ModifierGroups []json.RawMessage `json:"modifier_groups"`
}

// Category is the optional category reference attached to a product.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomField is one open-ended attribute. The well-known names "image" and
// "calories" get dedicated columns in the detailed product sheet.
type CustomField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
