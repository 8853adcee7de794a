// Package store wires catalog, customers and carts into a single-process
// state holder for the HTTP gateway and the demo driver.
//
// The checkout core itself is single-actor by design; the store is the one
// place that may be hit concurrently, so it serializes every checkout (and
// every cart mutation) behind one mutex. That keeps the read-then-decrement
// over product stock a single critical section instead of a lost-update
// race.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/jcmexdev/ecommerce-checkout/internal/cart"
	"github.com/jcmexdev/ecommerce-checkout/internal/catalog"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout"
	"github.com/jcmexdev/ecommerce-checkout/internal/customer"
)

var ErrCustomerNotFound = errors.New("customer not found")

type Store struct {
	mu        sync.Mutex
	catalog   *catalog.Catalog
	customers map[string]*customer.Customer
	carts     map[string]*cart.Cart

	checkout *checkout.Service
}

func New(checkoutSvc *checkout.Service) *Store {
	return &Store{
		catalog:   catalog.New(),
		customers: make(map[string]*customer.Customer),
		carts:     make(map[string]*cart.Cart),
		checkout:  checkoutSvc,
	}
}

func (s *Store) RegisterProduct(p catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog.Register(p)
}

func (s *Store) Products() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.List()
}

func (s *Store) AddCustomer(c *customer.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.Name()] = c
}

func (s *Store) Customer(name string) (*customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[name]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}

// AddToCart puts quantity units of the named product into the customer's
// cart, creating the cart on first use. Returns catalog.ErrNotFound,
// ErrCustomerNotFound, or one of the cart add conditions.
func (s *Store) AddToCart(customerName, productName string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[customerName]; !ok {
		return ErrCustomerNotFound
	}
	p, err := s.catalog.Get(productName)
	if err != nil {
		return err
	}

	crt, ok := s.carts[customerName]
	if !ok {
		crt = cart.New()
		s.carts[customerName] = crt
	}

	return crt.Add(p, quantity)
}

// Checkout runs the customer's cart through the checkout service. The
// store lock is held for the whole validate-then-commit pass. On success
// the cart is discarded: a checkout is terminal.
func (s *Store) Checkout(ctx context.Context, customerName string) (*checkout.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cust, ok := s.customers[customerName]
	if !ok {
		return nil, ErrCustomerNotFound
	}

	crt, ok := s.carts[customerName]
	if !ok {
		crt = cart.New()
	}

	summary, err := s.checkout.Checkout(ctx, cust, crt)
	if err != nil {
		return nil, err
	}

	delete(s.carts, customerName)
	return summary, nil
}
