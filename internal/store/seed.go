package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/ecommerce-checkout/internal/catalog"
	"github.com/jcmexdev/ecommerce-checkout/internal/customer"
)

// SeedDemo loads the demo catalog and customers used by the gateway's
// local mode and the demo driver.
func SeedDemo(s *Store) {
	now := time.Now()

	s.RegisterProduct(catalog.NewPerishable("Cheese", decimal.NewFromInt(100), 10, now.AddDate(0, 0, 7), decimal.NewFromFloat(0.4)))
	s.RegisterProduct(catalog.NewPerishable("Biscuits", decimal.NewFromInt(150), 5, now.AddDate(0, 0, 30), decimal.NewFromFloat(0.7)))
	s.RegisterProduct(catalog.NewNonPerishable("TV", decimal.NewFromInt(500), 3, true, decimal.NewFromFloat(15.0)))
	s.RegisterProduct(catalog.NewNonPerishable("Mobile Scratch Card", decimal.NewFromInt(50), 20, false, decimal.Zero))

	s.AddCustomer(customer.New("John Doe", decimal.NewFromInt(1000)))
}
