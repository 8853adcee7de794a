package checkout

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/ecommerce-checkout/internal/shipping"
)

// Line is one receipt line: the cart quantity, product name and unrounded
// line total.
type Line struct {
	Quantity int
	Name     string
	Total    decimal.Decimal
}

// Summary is the outcome of a successful checkout. Notice is nil when
// nothing required shipping.
type Summary struct {
	CheckoutID  string
	Lines       []Line
	Subtotal    decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
	Notice      *shipping.Notice
}

// Render writes the observable output of a successful checkout: the
// shipment notice (when present) followed by the receipt block. Monetary
// values are truncated toward zero at this boundary and nowhere else.
//
//	** Checkout receipt **
//	2x Cheese 200
//	----------------------
//	Subtotal 450
//	Shipping 30
//	Amount 480
//	END.
func Render(w io.Writer, s *Summary) {
	if s.Notice != nil {
		s.Notice.Render(w)
	}

	fmt.Fprintln(w, "** Checkout receipt **")
	for _, line := range s.Lines {
		fmt.Fprintf(w, "%dx %s %d\n", line.Quantity, line.Name, line.Total.IntPart())
	}
	fmt.Fprintln(w, "----------------------")
	fmt.Fprintf(w, "Subtotal %d\n", s.Subtotal.IntPart())
	fmt.Fprintf(w, "Shipping %d\n", s.ShippingFee.IntPart())
	fmt.Fprintf(w, "Amount %d\n", s.Total.IntPart())
	fmt.Fprintln(w, "END.")
}
