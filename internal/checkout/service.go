// Package checkout implements the atomic validate-then-commit operation
// over a cart and a customer. The run is modelled as an ordered list of
// steps executed by an orchestrator: validation steps abort before any
// side effect, commit steps carry compensations so a partial commit can
// never survive.
package checkout

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jcmexdev/ecommerce-checkout/internal/cart"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/journal"
	"github.com/jcmexdev/ecommerce-checkout/internal/customer"
)

const tracerName = "github.com/jcmexdev/ecommerce-checkout/internal/checkout"

// Service runs checkouts. The journal repository may be nil, in which case
// runs leave no audit trail.
type Service struct {
	journal journal.Repository
}

func NewService(repo journal.Repository) *Service {
	return &Service{journal: repo}
}

// Checkout validates the cart against live stock and expiry, prices it,
// checks the customer's balance, and only then commits: stock is
// decremented, the balance is deducted, and a Summary describing the
// shipment notice and receipt is returned.
//
// On abort the returned error is one of the package sentinels and no state
// has been touched. The checkout is terminal: there is no retry inside.
func (s *Service) Checkout(ctx context.Context, cust *customer.Customer, crt *cart.Cart) (*Summary, error) {
	checkoutID := uuid.NewString()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "checkout.run")
	defer span.End()
	span.SetAttributes(attribute.String("checkout.id", checkoutID))

	validate := newValidateStep(crt)
	pricing := newPricingStep(crt, cust, validate)
	shipment := newShipmentStep(validate)
	stock := newStockStep(crt)
	payment := newPaymentStep(cust, pricing)

	steps := []Step{validate, pricing, shipment, stock, payment}

	orch := NewOrchestrator(checkoutID, steps, s.journal)
	if err := orch.Run(ctx, cartPayload(crt)); err != nil {
		return nil, err
	}

	summary := &Summary{
		CheckoutID:  checkoutID,
		Subtotal:    pricing.subtotal,
		ShippingFee: pricing.fee,
		Total:       pricing.total,
		Notice:      shipment.notice,
	}
	for _, item := range crt.Items() {
		summary.Lines = append(summary.Lines, Line{
			Quantity: item.Quantity,
			Name:     item.Product.Name(),
			Total:    item.LineTotal(),
		})
	}

	return summary, nil
}

// cartPayload serialises the cart lines for the journal's STARTED entry.
func cartPayload(crt *cart.Cart) string {
	type line struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	}

	lines := make([]line, 0, len(crt.Items()))
	for _, item := range crt.Items() {
		lines = append(lines, line{Name: item.Product.Name(), Quantity: item.Quantity})
	}

	b, err := json.Marshal(lines)
	if err != nil {
		return "[]"
	}
	return string(b)
}
