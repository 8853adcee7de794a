// Package customer models the paying side of a checkout.
package customer

import "github.com/shopspring/decimal"

// Customer holds a display name and a spendable balance. The balance is
// only moved by the checkout commit phase (deduct) and its compensation
// (credit); the balance pre-check in checkout guarantees it never goes
// negative through a successful run.
type Customer struct {
	name    string
	balance decimal.Decimal
}

func New(name string, balance decimal.Decimal) *Customer {
	return &Customer{name: name, balance: balance}
}

func (c *Customer) Name() string { return c.name }
func (c *Customer) Balance() decimal.Decimal { return c.balance }

// Deduct removes amount from the balance.
func (c *Customer) Deduct(amount decimal.Decimal) {
	c.balance = c.balance.Sub(amount)
}

// Credit returns amount to the balance. Used when a later checkout step
// fails and the payment step has to be compensated.
func (c *Customer) Credit(amount decimal.Decimal) {
	c.balance = c.balance.Add(amount)
}
