// =============================================================================
// POS to XLSX Export - Cell Formatting Helpers
// =============================================================================
//
// Every cell in the output workbook is a string. The helpers below are the
// single place where field defaults live, so the per-field default table from
// the sheet contract is reviewable here rather than scattered through the
// flatteners:
//
//   | Source value            | Cell        |
//   |-------------------------|-------------|
//   | absent string           | ""          |
//   | absent numeric pointer  | ""          |
//   | zero epoch timestamp    | ""          |
//   | boolean                 | "Yes"/"No"  |
//   | absent reference        | ""          |
//   | empty list              | ""          |
//   | empty custom-field map  | "{}"        |
//   | empty modifier groups   | "[]"        |
//
// =============================================================================

package flatten

import (
	"strconv"
	"time"
)

// yesNo renders a boolean as the literal strings the sheets use.
func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// epochToDateTime renders epoch seconds as an absolute UTC date-time.
// A zero epoch means "absent" and renders empty, never 1970-01-01.
func epochToDateTime(sec int64) string {
	if sec == 0 {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format("2006-01-02 15:04:05")
}

// floatCell renders an optional float, empty when absent.
func floatCell(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

// intCell renders an optional int, empty when absent.
func intCell(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

// formatFloat renders a float in its shortest decimal form, so 10 stays "10"
// and 9.5 stays "9.5" rather than picking up trailing zeros.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// orZero dereferences an optional float, treating absent as 0. This is the
// numeric default used by every aggregation path.
func orZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
