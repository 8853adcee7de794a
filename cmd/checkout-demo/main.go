// The checkout demo drives the core through the original scenario: a happy
// checkout with a mixed cart, then the error cases, printing every report
// line to stdout.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/ecommerce-checkout/internal/cart"
	"github.com/jcmexdev/ecommerce-checkout/internal/catalog"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/journal"
	"github.com/jcmexdev/ecommerce-checkout/internal/customer"
)

func main() {
	// Keep stdout clean for the report lines.
	slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	ctx := context.Background()
	now := time.Now()

	cheese := catalog.NewPerishable("Cheese", decimal.NewFromInt(100), 10, now.AddDate(0, 0, 7), decimal.NewFromFloat(0.4))
	biscuits := catalog.NewPerishable("Biscuits", decimal.NewFromInt(150), 5, now.AddDate(0, 0, 30), decimal.NewFromFloat(0.7))
	tv := catalog.NewNonPerishable("TV", decimal.NewFromInt(500), 3, true, decimal.NewFromFloat(15.0))
	scratchCard := catalog.NewNonPerishable("Mobile Scratch Card", decimal.NewFromInt(50), 20, false, decimal.Zero)

	svc := checkout.NewService(journal.NewMemoryRepository())

	john := customer.New("John Doe", decimal.NewFromInt(1000))

	crt := cart.New()
	addOrReport(crt, cheese, 2)
	addOrReport(crt, biscuits, 1)
	addOrReport(crt, scratchCard, 1)
	run(ctx, svc, john, crt)

	fmt.Println()
	fmt.Println("--- Testing error cases ---")

	// Empty cart.
	run(ctx, svc, john, cart.New())

	// Insufficient balance.
	poor := customer.New("Poor Customer", decimal.NewFromInt(10))
	expensive := cart.New()
	addOrReport(expensive, tv, 1)
	run(ctx, svc, poor, expensive)

	// Expired product.
	expiredMilk := catalog.NewPerishable("Expired Milk", decimal.NewFromInt(50), 5, now.AddDate(0, 0, -1), decimal.NewFromFloat(1.0))
	expiredCart := cart.New()
	addOrReport(expiredCart, expiredMilk, 1)
	run(ctx, svc, john, expiredCart)

	// Over-stock add request.
	limited := catalog.NewNonPerishable("Limited Item", decimal.NewFromInt(100), 1, false, decimal.Zero)
	addOrReport(cart.New(), limited, 2)
}

func addOrReport(c *cart.Cart, p catalog.Product, quantity int) {
	if err := c.Add(p, quantity); err != nil {
		fmt.Println(err)
	}
}

func run(ctx context.Context, svc *checkout.Service, cust *customer.Customer, crt *cart.Cart) {
	summary, err := svc.Checkout(ctx, cust, crt)
	if err != nil {
		fmt.Println(err)
		return
	}
	checkout.Render(os.Stdout, summary)
}
