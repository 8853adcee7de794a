package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestPerishableExpiry(t *testing.T) {
	price := decimal.NewFromInt(50)
	weight := decimal.NewFromFloat(1.0)

	t.Run("expired yesterday", func(t *testing.T) {
		p := NewPerishable("Milk", price, 5, time.Now().AddDate(0, 0, -1), weight)
		if !p.IsExpired() {
			t.Fatal("expected product expiring yesterday to be expired")
		}
	})

	t.Run("expiring today is still sellable", func(t *testing.T) {
		p := NewPerishable("Milk", price, 5, time.Now(), weight)
		if p.IsExpired() {
			t.Fatal("product expiring today must not be expired yet")
		}
	})

	t.Run("expiring next week", func(t *testing.T) {
		p := NewPerishable("Cheese", price, 5, time.Now().AddDate(0, 0, 7), weight)
		if p.IsExpired() {
			t.Fatal("future expiry reported as expired")
		}
	})
}

func TestShippingCapabilities(t *testing.T) {
	t.Run("perishable always ships", func(t *testing.T) {
		p := NewPerishable("Cheese", decimal.NewFromInt(100), 10, time.Now().AddDate(0, 0, 7), decimal.NewFromFloat(0.4))
		if !p.RequiresShipping() {
			t.Fatal("perishable product must require shipping")
		}
	})

	t.Run("non-perishable honors flag", func(t *testing.T) {
		tv := NewNonPerishable("TV", decimal.NewFromInt(500), 3, true, decimal.NewFromFloat(15.0))
		card := NewNonPerishable("Mobile Scratch Card", decimal.NewFromInt(50), 20, false, decimal.Zero)

		if !tv.RequiresShipping() {
			t.Fatal("TV should require shipping")
		}
		if card.RequiresShipping() {
			t.Fatal("scratch card should not require shipping")
		}
		if tv.IsExpired() || card.IsExpired() {
			t.Fatal("non-perishable products never expire")
		}
	})
}

func TestSetQuantityFloorsAtZero(t *testing.T) {
	p := NewNonPerishable("TV", decimal.NewFromInt(500), 3, true, decimal.NewFromFloat(15.0))
	p.SetQuantity(-2)
	if got := p.Quantity(); got != 0 {
		t.Fatalf("quantity = %d, want 0", got)
	}
}

func TestCatalogRegistry(t *testing.T) {
	c := New()
	cheese := NewPerishable("Cheese", decimal.NewFromInt(100), 10, time.Now().AddDate(0, 0, 7), decimal.NewFromFloat(0.4))
	tv := NewNonPerishable("TV", decimal.NewFromInt(500), 3, true, decimal.NewFromFloat(15.0))

	c.Register(cheese)
	c.Register(tv)

	got, err := c.Get("Cheese")
	if err != nil {
		t.Fatalf("Get(Cheese) failed: %v", err)
	}
	if got != Product(cheese) {
		t.Fatal("Get returned a different product instance")
	}

	if _, err := c.Get("Router"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	list := c.List()
	if len(list) != 2 || list[0].Name() != "Cheese" || list[1].Name() != "TV" {
		t.Fatalf("List() not in registration order: %v", names(list))
	}
}

func names(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name()
	}
	return out
}
