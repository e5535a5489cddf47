// =============================================================================
// POS to XLSX Export - Product Flattener
// =============================================================================
//
// Flattens one catalog product into one fixed-order row. Two variants share
// the same field mapping:
//
//   - FlattenProduct:         17 columns; image/calories only appear inside
//                             the Custom Fields JSON column.
//   - FlattenProductDetailed: 19 columns; image/calories additionally get
//                             standalone columns (still duplicated in the
//                             JSON column).
//
// Custom-field keys are not unique upstream. The reduction below is a plain
// map insertion in source order, so the last occurrence of a duplicate key
// wins.
//
// =============================================================================

package flatten

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ginjaninja78/pos-xlsx-export/internal/posapi"
)

// Well-known custom-field keys promoted to standalone columns in the
// detailed product sheet.
const (
	customFieldImage    = "image"
	customFieldCalories = "calories"
)

// FlattenProduct produces the 17-column Products row for one product.
func FlattenProduct(p posapi.Product) []string {
	fields := customFieldMap(p.CustomFields)

	row := productCommonCells(p)
	return append(row,
		customFieldsJSON(fields),
		modifierGroupsJSON(p.ModifierGroups),
		strconv.Itoa(len(p.ModifierGroups)),
	)
}

// FlattenProductDetailed produces the 19-column Products Detailed row for one
// product. Image URL and Calories come out of the custom-field mapping no
// matter where they sat in the source list.
func FlattenProductDetailed(p posapi.Product) []string {
	fields := customFieldMap(p.CustomFields)

	row := productCommonCells(p)
	return append(row,
		fields[customFieldImage],
		fields[customFieldCalories],
		customFieldsJSON(fields),
		modifierGroupsJSON(p.ModifierGroups),
		strconv.Itoa(len(p.ModifierGroups)),
	)
}

// productCommonCells renders the 14 leading cells shared by both product
// sheets, in column order.
func productCommonCells(p posapi.Product) []string {
	var categoryID, categoryName string
	if p.Category != nil {
		categoryID = p.Category.ID
		categoryName = p.Category.Name
	}

	return []string{
		p.ID,
		epochToDateTime(p.CreatedAt),
		epochToDateTime(p.UpdatedAt),
		p.PosID,
		p.BrandID,
		p.Name,
		p.Description,
		floatCell(p.Price),
		yesNo(p.InStock),
		p.Status,
		yesNo(p.NotFound),
		strings.Join(p.Tags, ", "),
		categoryID,
		categoryName,
	}
}

// customFieldMap reduces the custom-field list to a key→value mapping.
// Duplicate keys overwrite in insertion order, so the last one wins. The map
// is never nil: an empty list serializes as "{}".
func customFieldMap(fields []posapi.CustomField) map[string]string {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.Name] = f.Value
	}
	return m
}

// customFieldsJSON serializes the mapping as the Custom Fields cell.
func customFieldsJSON(m map[string]string) string {
	// Marshaling a map[string]string cannot fail.
	b, _ := json.Marshal(m)
	return string(b)
}

// modifierGroupsJSON serializes the opaque modifier groups verbatim.
func modifierGroupsJSON(groups []json.RawMessage) string {
	if len(groups) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(groups)
	return string(b)
}
