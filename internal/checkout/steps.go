package checkout

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/ecommerce-checkout/internal/cart"
	"github.com/jcmexdev/ecommerce-checkout/internal/customer"
	"github.com/jcmexdev/ecommerce-checkout/internal/shipping"
)

// FlatShippingFee is charged whenever at least one unit requires shipping.
// Flat regardless of weight or distance; an inherited simplification of the
// pricing model, not something to make smarter here.
var FlatShippingFee = decimal.NewFromInt(30)

// --- validateStep ---

// validateStep rejects empty carts, expired products and over-stock lines,
// and expands shipping lines into individual shippable units for the
// shipment notice. It never mutates anything.
type validateStep struct {
	cart  *cart.Cart
	units []shipping.Item
}

func newValidateStep(c *cart.Cart) *validateStep {
	return &validateStep{cart: c}
}

func (s *validateStep) Name() string { return "Validate_Cart_Step" }

func (s *validateStep) Execute(ctx context.Context) error {
	if s.cart.IsEmpty() {
		return ErrCartEmpty
	}

	for _, item := range s.cart.Items() {
		p := item.Product

		if p.IsExpired() {
			return ErrProductExpired
		}
		if p.Quantity() < item.Quantity {
			return ErrProductOutOfStock
		}

		// One shippable unit per individual item instance.
		if p.RequiresShipping() {
			for i := 0; i < item.Quantity; i++ {
				s.units = append(s.units, p)
			}
		}
	}

	return nil
}

func (s *validateStep) Compensate(ctx context.Context) error { return nil }

// --- pricingStep ---

// pricingStep computes subtotal, shipping fee and total, then checks the
// customer can afford the total. Read-only.
type pricingStep struct {
	cart     *cart.Cart
	customer *customer.Customer
	units    *validateStep

	subtotal decimal.Decimal
	fee      decimal.Decimal
	total    decimal.Decimal
}

func newPricingStep(c *cart.Cart, cust *customer.Customer, units *validateStep) *pricingStep {
	return &pricingStep{cart: c, customer: cust, units: units}
}

func (s *pricingStep) Name() string { return "Pricing_Step" }

func (s *pricingStep) Execute(ctx context.Context) error {
	s.subtotal = s.cart.Subtotal()

	s.fee = decimal.Zero
	if len(s.units.units) > 0 {
		s.fee = FlatShippingFee
	}

	s.total = s.subtotal.Add(s.fee)

	if s.customer.Balance().LessThan(s.total) {
		return ErrInsufficientBalance
	}
	return nil
}

func (s *pricingStep) Compensate(ctx context.Context) error { return nil }

// --- shipmentStep ---

// shipmentStep builds the shipment notice from the collected units.
// Produces nothing when nothing ships.
type shipmentStep struct {
	units *validateStep

	notice *shipping.Notice
}

func newShipmentStep(units *validateStep) *shipmentStep {
	return &shipmentStep{units: units}
}

func (s *shipmentStep) Name() string { return "Shipment_Notice_Step" }

func (s *shipmentStep) Execute(ctx context.Context) error {
	if n, ok := shipping.BuildNotice(s.units.units); ok {
		s.notice = &n
	}
	return nil
}

func (s *shipmentStep) Compensate(ctx context.Context) error { return nil }

// --- stockStep ---

// stockStep decrements catalog stock by each line's quantity. Compensation
// restores exactly what was taken.
type stockStep struct {
	cart *cart.Cart

	applied bool
}

func newStockStep(c *cart.Cart) *stockStep {
	return &stockStep{cart: c}
}

func (s *stockStep) Name() string { return "Stock_Commit_Step" }

func (s *stockStep) Execute(ctx context.Context) error {
	for _, item := range s.cart.Items() {
		item.Product.SetQuantity(item.Product.Quantity() - item.Quantity)
	}
	s.applied = true
	return nil
}

func (s *stockStep) Compensate(ctx context.Context) error {
	if !s.applied {
		return nil
	}
	for _, item := range s.cart.Items() {
		item.Product.SetQuantity(item.Product.Quantity() + item.Quantity)
	}
	s.applied = false
	return nil
}

// --- paymentStep ---

// paymentStep deducts the checkout total from the customer's balance.
// Compensation credits it back.
type paymentStep struct {
	customer *customer.Customer
	pricing  *pricingStep

	charged bool
}

func newPaymentStep(cust *customer.Customer, pricing *pricingStep) *paymentStep {
	return &paymentStep{customer: cust, pricing: pricing}
}

func (s *paymentStep) Name() string { return "Payment_Charge_Step" }

func (s *paymentStep) Execute(ctx context.Context) error {
	s.customer.Deduct(s.pricing.total)
	s.charged = true
	return nil
}

func (s *paymentStep) Compensate(ctx context.Context) error {
	if !s.charged {
		return nil
	}
	s.customer.Credit(s.pricing.total)
	s.charged = false
	return nil
}
