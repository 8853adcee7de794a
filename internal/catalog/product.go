package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the capability set shared by every catalog entry.
// Quantity is the live stock figure; only the checkout commit phase is
// allowed to change it (carts hold non-owning references into the catalog).
type Product interface {
	Name() string
	Price() decimal.Decimal
	Quantity() int
	SetQuantity(q int)
	IsExpired() bool
	RequiresShipping() bool
	Weight() decimal.Decimal
}

// base carries the attributes common to both product variants.
type base struct {
	name     string
	price    decimal.Decimal
	quantity int
}

func (b *base) Name() string { return b.name }
func (b *base) Price() decimal.Decimal { return b.price }
func (b *base) Quantity() int { return b.quantity }

func (b *base) SetQuantity(q int) {
	if q < 0 {
		q = 0
	}
	b.quantity = q
}

// PerishableProduct expires on a calendar date and always ships.
type PerishableProduct struct {
	base
	expiresAt time.Time
	weight    decimal.Decimal
}

func NewPerishable(name string, price decimal.Decimal, quantity int, expiresAt time.Time, weightKg decimal.Decimal) *PerishableProduct {
	return &PerishableProduct{
		base:      base{name: name, price: price, quantity: quantity},
		expiresAt: expiresAt,
		weight:    weightKg,
	}
}

// IsExpired reports whether today's date is strictly after the expiration
// date. The comparison is at day precision: a product expiring today is
// still sellable until midnight.
func (p *PerishableProduct) IsExpired() bool {
	return toDate(time.Now()).After(toDate(p.expiresAt))
}

func (p *PerishableProduct) RequiresShipping() bool { return true }
func (p *PerishableProduct) Weight() decimal.Decimal { return p.weight }
func (p *PerishableProduct) ExpiresAt() time.Time { return p.expiresAt }

// NonPerishableProduct never expires; whether it ships is fixed at creation.
type NonPerishableProduct struct {
	base
	needsShipping bool
	weight        decimal.Decimal
}

func NewNonPerishable(name string, price decimal.Decimal, quantity int, needsShipping bool, weightKg decimal.Decimal) *NonPerishableProduct {
	return &NonPerishableProduct{
		base:          base{name: name, price: price, quantity: quantity},
		needsShipping: needsShipping,
		weight:        weightKg,
	}
}

func (p *NonPerishableProduct) IsExpired() bool { return false }
func (p *NonPerishableProduct) RequiresShipping() bool { return p.needsShipping }
func (p *NonPerishableProduct) Weight() decimal.Decimal { return p.weight }

func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
