// Package product models catalog entries and their purchase semantics. The
// three variants form a closed set: Standard tracks stock and deactivates
// when it sells out, NonStocked sells without stock, Limited caps how many
// units a single purchase may contain.
package product

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront-challenge/internal/domain/promotion"
)

// Sentinel errors for construction and purchase validation.
var (
	// ErrInvalidProduct is returned when a constructor is given an empty
	// name, a negative price or quantity, or an out-of-range maximum.
	ErrInvalidProduct = errors.New("invalid product definition")
	// ErrOutOfStock is returned when buying from an inactive product.
	ErrOutOfStock = errors.New("product is out of stock")
	// ErrInvalidQuantity is returned when a purchase requests less than one unit.
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
	// ErrInvalidPrice is returned when setting a non-positive price.
	ErrInvalidPrice = errors.New("price must be greater than 0")
	// ErrInvalidPromotion is returned when attaching a nil promotion.
	ErrInvalidPromotion = errors.New("promotion must not be nil")
)

// InsufficientStockError indicates a purchase requested more units than are
// on hand.
type InsufficientStockError struct {
	Product   string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock of %s: requested %d, available %d",
		e.Product, e.Requested, e.Available)
}

// ExceedsMaximumError indicates a purchase over a limited product's
// per-purchase maximum.
type ExceedsMaximumError struct {
	Product string
	Maximum int
}

func (e *ExceedsMaximumError) Error() string {
	return fmt.Sprintf("only %d of %s may be bought in a single purchase",
		e.Maximum, e.Product)
}

// Product is a single catalog entry. It owns its stock state and promotion
// reference; all mutation flows through its own methods.
type Product interface {
	Name() string
	Price() decimal.Decimal
	SetPrice(price decimal.Decimal) error
	Quantity() int
	SetQuantity(quantity int)
	IsActive() bool
	Activate()
	Deactivate()
	Promotion() promotion.Promotion
	SetPromotion(p promotion.Promotion) error
	// Buy purchases quantity units and returns the line cost computed via
	// the attached promotion. Stock-tracked variants decrement on success.
	Buy(quantity int) (decimal.Decimal, error)
	// Show returns the display representation of the product.
	Show() string
}

// Compile-time checks that every variant satisfies Product.
var (
	_ Product = (*Standard)(nil)
	_ Product = (*NonStocked)(nil)
	_ Product = (*Limited)(nil)
)

// base carries the state shared by every variant.
type base struct {
	name   string
	price  decimal.Decimal
	qty    int
	active bool
	promo  promotion.Promotion
}

func newBase(name string, price decimal.Decimal, quantity int) (base, error) {
	switch {
	case name == "":
		return base{}, errors.Wrap(ErrInvalidProduct, "name is empty")
	case price.IsNegative():
		return base{}, errors.Wrapf(ErrInvalidProduct, "negative price %s for %s", price, name)
	case quantity < 0:
		return base{}, errors.Wrapf(ErrInvalidProduct, "negative quantity %d for %s", quantity, name)
	}

	return base{
		name:   name,
		price:  price,
		qty:    quantity,
		active: quantity >= 1,
	}, nil
}

// Name returns the product's display name.
func (b *base) Name() string { return b.name }

// Price returns the current unit price.
func (b *base) Price() decimal.Decimal { return b.price }

// SetPrice replaces the unit price. Non-positive prices are rejected.
func (b *base) SetPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return ErrInvalidPrice
	}
	b.price = price

	return nil
}

// Quantity returns the units currently on hand.
func (b *base) Quantity() int { return b.qty }

// SetQuantity updates the stock level and re-derives the active flag:
// below one unit the product deactivates, at one or more it activates.
// Negative targets are ignored.
func (b *base) SetQuantity(quantity int) {
	if quantity < 0 {
		return
	}
	b.qty = quantity
	b.active = quantity >= 1
}

// IsActive reports whether the product accepts new orders.
func (b *base) IsActive() bool { return b.active }

// Activate marks the product as orderable.
func (b *base) Activate() { b.active = true }

// Deactivate removes the product from new orders.
func (b *base) Deactivate() { b.active = false }

// Promotion returns the attached promotion, or nil when none is attached.
func (b *base) Promotion() promotion.Promotion { return b.promo }

// SetPromotion attaches a promotion. The instance is shared, not copied, so
// the same promotion may serve many products.
func (b *base) SetPromotion(p promotion.Promotion) error {
	if p == nil {
		return ErrInvalidPromotion
	}
	b.promo = p

	return nil
}

// lineCost prices quantity units via the attached promotion, falling back to
// plain price times quantity when none is attached.
func (b *base) lineCost(quantity int) decimal.Decimal {
	if b.promo == nil {
		return b.price.Mul(decimal.NewFromInt(int64(quantity)))
	}

	return b.promo.Apply(b.price, quantity)
}

// promotionSuffix is the ", Promotion: X" display segment, empty when no
// promotion is attached.
func (b *base) promotionSuffix() string {
	if b.promo == nil {
		return ""
	}

	return ", Promotion: " + b.promo.Name()
}
