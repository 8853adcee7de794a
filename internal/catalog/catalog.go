// Package catalog holds the product model and the in-memory registry that
// owns product lifetime. Carts and the shipping report only hold references
// into the registry; stock mutation goes through the checkout commit phase.
package catalog

import "errors"

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Catalog is an insertion-ordered product registry keyed by name.
type Catalog struct {
	byName map[string]Product
	order  []string
}

func New() *Catalog {
	return &Catalog{byName: make(map[string]Product)}
}

// Register adds a product to the catalog. Registering a product with a name
// that already exists replaces the entry but keeps its original position.
func (c *Catalog) Register(p Product) {
	if _, ok := c.byName[p.Name()]; !ok {
		c.order = append(c.order, p.Name())
	}
	c.byName[p.Name()] = p
}

func (c *Catalog) Get(name string) (Product, error) {
	p, ok := c.byName[name]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// List returns the products in registration order.
func (c *Catalog) List() []Product {
	out := make([]Product, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}
