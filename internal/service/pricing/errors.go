package pricing

import "errors"

// ErrRuleNotFound is internal to the pricing flow: a missing rule means
// the built-in defaults apply, it never surfaces to callers.
var (
	ErrRuleNotFound = errors.New("pricing rule not found")
	ErrConflict     = errors.New("resource already exists")
)
