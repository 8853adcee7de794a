package checkout

import "errors"

// Abort conditions. Every one of them is a user-facing business outcome,
// not a fault: the run stops before any stock or balance mutation and the
// caller may retry with corrected input. The messages are the exact report
// lines of the output boundary, so callers print err.Error() verbatim.
var (
	ErrCartEmpty           = errors.New("Cart is empty")
	ErrProductExpired      = errors.New("One product is expired")
	ErrProductOutOfStock   = errors.New("One product is out of stock")
	ErrInsufficientBalance = errors.New("Customer's balance is insufficient")
)

// IsAbort reports whether err is one of the expected checkout abort
// conditions, as opposed to an infrastructure failure.
func IsAbort(err error) bool {
	return errors.Is(err, ErrCartEmpty) ||
		errors.Is(err, ErrProductExpired) ||
		errors.Is(err, ErrProductOutOfStock) ||
		errors.Is(err, ErrInsufficientBalance)
}
