package reconcile

import (
	"fmt"
	"strconv"

	"github.com/1ns0mn1a7/seller-apis/core/utils"
)

// InvalidQuantityError reports a supplier quantity token that is neither a
// sentinel nor an integer. It fails the whole stock reconciliation pass:
// there is no per-row skip policy.
type InvalidQuantityError struct {
	// Token is the offending quantity token, string-coerced.
	Token string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity token %q", e.Token)
}

// quantityRules are the sentinel tokens of the supplier feed format,
// checked in order before generic integer parsing.
var quantityRules = []struct {
	token string
	count int
}{
	// The feed caps visible stock at ten; ">10" stands for plenty.
	{token: ">10", count: 100},
	// The feed encodes a single remaining unit as sold out. Inherited
	// from the upstream format; do not "fix".
	{token: "1", count: 0},
}

// NormalizeQuantity maps a supplier quantity token to a stock count. The
// token may be any type and is string-coerced first.
func NormalizeQuantity(token any) (int, error) {
	s := utils.ToString(token)
	for _, rule := range quantityRules {
		if s == rule.token {
			return rule.count, nil
		}
	}
	count, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidQuantityError{Token: s}
	}
	return count, nil
}
