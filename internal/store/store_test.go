package store

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/ecommerce-checkout/internal/cart"
	"github.com/jcmexdev/ecommerce-checkout/internal/catalog"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout"
)

func newSeededStore() *Store {
	s := New(checkout.NewService(nil))
	SeedDemo(s)
	return s
}

func TestAddToCartValidation(t *testing.T) {
	s := newSeededStore()

	t.Run("unknown customer", func(t *testing.T) {
		if err := s.AddToCart("Nobody", "Cheese", 1); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		if err := s.AddToCart("John Doe", "Router", 1); !errors.Is(err, catalog.ErrNotFound) {
			t.Fatalf("expected catalog.ErrNotFound, got %v", err)
		}
	})

	t.Run("cart condition propagates", func(t *testing.T) {
		if err := s.AddToCart("John Doe", "Cheese", 0); !errors.Is(err, cart.ErrQuantityNotPositive) {
			t.Fatalf("expected ErrQuantityNotPositive, got %v", err)
		}
	})
}

func TestCheckoutDiscardsCart(t *testing.T) {
	s := newSeededStore()
	ctx := context.Background()

	if err := s.AddToCart("John Doe", "Cheese", 2); err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}

	summary, err := s.Checkout(ctx, "John Doe")
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if !summary.Total.Equal(decimal.NewFromInt(230)) {
		t.Fatalf("Total = %s, want 230 (200 + 30 shipping)", summary.Total)
	}

	// Checkout is terminal: the next run starts from an empty cart.
	if _, err := s.Checkout(ctx, "John Doe"); !errors.Is(err, checkout.ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty after a completed checkout, got %v", err)
	}
}

func TestCheckoutAbortKeepsCart(t *testing.T) {
	s := newSeededStore()
	ctx := context.Background()

	if err := s.AddToCart("John Doe", "TV", 3); err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}

	// 3 x 500 + 30 > 1000: the abort must leave the cart for a retry.
	if _, err := s.Checkout(ctx, "John Doe"); !errors.Is(err, checkout.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if _, err := s.Checkout(ctx, "John Doe"); !errors.Is(err, checkout.ErrInsufficientBalance) {
		t.Fatalf("cart should survive an aborted checkout, got %v", err)
	}
}

func TestCheckoutUnknownCustomer(t *testing.T) {
	s := newSeededStore()
	if _, err := s.Checkout(context.Background(), "Nobody"); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}
