// Package cart implements the shopping cart: an insertion-ordered list of
// line items with at most one entry per product name.
package cart

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/ecommerce-checkout/internal/catalog"
)

// Add conditions. The messages are the exact lines the output boundary
// reports, so callers print err.Error() verbatim.
var (
	ErrQuantityNotPositive = errors.New("Quantity must be positive")
	ErrExceedsStock        = errors.New("Requested quantity exceeds available stock")
	ErrTotalExceedsStock   = errors.New("Total quantity exceeds available stock")
)

// LineItem pairs a catalog product reference with the requested quantity.
// The cart does not own the product; stock lives in the catalog entry.
type LineItem struct {
	Product  catalog.Product
	Quantity int
}

// LineTotal is unit price times quantity, unrounded. Truncation to integer
// display units happens only when the receipt is rendered.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Product.Price().Mul(decimal.NewFromInt(int64(li.Quantity)))
}

type Cart struct {
	items []*LineItem
}

func New() *Cart {
	return &Cart{}
}

// Add puts quantity units of p into the cart, merging with an existing line
// for the same product name. A failed Add is a no-op: the cart is unchanged
// and the returned condition describes why.
func (c *Cart) Add(p catalog.Product, quantity int) error {
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}
	if quantity > p.Quantity() {
		return ErrExceedsStock
	}

	for _, item := range c.items {
		if item.Product.Name() == p.Name() {
			if item.Quantity+quantity > p.Quantity() {
				return ErrTotalExceedsStock
			}
			item.Quantity += quantity
			return nil
		}
	}

	c.items = append(c.items, &LineItem{Product: p, Quantity: quantity})
	return nil
}

// Items returns the line items in insertion order.
func (c *Cart) Items() []*LineItem {
	return c.items
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal sums the line totals without any rounding.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}
