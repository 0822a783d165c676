package reconcile

import "strings"

// NormalizePrice reduces a locale-formatted price string like
// "5'990.00 руб." to the digits of its whole part: "5990".
//
// Everything from the first '.' on is discarded (cents and the currency
// suffix; a dot inside the currency text cuts there too), then every
// non-digit is stripped. A price with no digits before the first dot
// yields the empty string; that is a valid result, not an error.
func NormalizePrice(price string) string {
	whole, _, _ := strings.Cut(price, ".")

	var b strings.Builder
	b.Grow(len(whole))
	for _, r := range whole {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
