package utils

import (
	"fmt"
	"strconv"
)

// ToString converts various types to string. Spreadsheet cells and API
// payloads may carry SKU codes as numbers; every comparison site in the
// reconciliation engine goes through this coercion first.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		// Whole-number floats print without the trailing ".0" that a
		// spreadsheet reader would otherwise give numeric SKU codes.
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
