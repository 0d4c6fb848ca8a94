// Package store owns the product collection and executes customer orders
// against it.
package store

import (
	"fmt"

	"github.com/go-faster/errors"

	"github.com/xenking/storefront-challenge/internal/domain/product"
)

// ErrEmptyOrder is returned when an order carries no lines.
var ErrEmptyOrder = errors.New("order has no lines")

// UnknownProductError indicates an order line references a product that is
// not part of the store's collection.
type UnknownProductError struct {
	Product string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("product %s is not sold in this store", e.Product)
}

// Store holds products in insertion order. There is one store per session;
// all stock mutation flows through each product's own methods.
type Store struct {
	products []product.Product
}

// New creates a store stocked with the given products.
func New(products ...product.Product) *Store {
	return &Store{products: append([]product.Product(nil), products...)}
}

// AddProduct appends p to the store's collection.
func (s *Store) AddProduct(p product.Product) {
	s.products = append(s.products, p)
}

// RemoveProduct removes p from the collection. Removing a product that is
// not present is a no-op.
func (s *Store) RemoveProduct(p product.Product) {
	for i, existing := range s.products {
		if existing == p {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// TotalQuantity sums the on-hand quantity of every product, inactive ones
// included.
func (s *Store) TotalQuantity() int {
	total := 0
	for _, p := range s.products {
		total += p.Quantity()
	}

	return total
}

// ActiveProducts returns the products currently open for ordering, in
// insertion order. Sold-out stock-tracked products are invisible here.
func (s *Store) ActiveProducts() []product.Product {
	active := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive() {
			active = append(active, p)
		}
	}

	return active
}

func (s *Store) contains(p product.Product) bool {
	for _, existing := range s.products {
		if existing == p {
			return true
		}
	}

	return false
}
