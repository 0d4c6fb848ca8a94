// Package promotion defines the pricing strategies that can be attached to
// catalog products. A promotion is a pure function of (unit price, quantity):
// it never mutates anything and holds no reference back to the product, so a
// single instance can be shared across many products.
package promotion

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// Promotion prices a single order line.
type Promotion interface {
	// Name returns the display name of the promotion.
	Name() string
	// Apply returns the total cost of quantity units at the given unit price.
	Apply(price decimal.Decimal, quantity int) decimal.Decimal
}

// SecondHalfPrice charges every second unit in a line at 50%: units are
// paired, the second unit of each pair costs half price, an odd leftover
// unit costs full price.
type SecondHalfPrice struct {
	name string
}

// NewSecondHalfPrice creates a second-half-price promotion with the given
// display name.
func NewSecondHalfPrice(name string) *SecondHalfPrice {
	return &SecondHalfPrice{name: name}
}

// Name returns the display name of the promotion.
func (p *SecondHalfPrice) Name() string { return p.name }

// Apply prices the line with every second unit at half price.
func (p *SecondHalfPrice) Apply(price decimal.Decimal, quantity int) decimal.Decimal {
	if quantity < 2 {
		return price.Mul(decimal.NewFromInt(int64(quantity)))
	}
	half := quantity / 2
	full := quantity - half

	fullCost := price.Mul(decimal.NewFromInt(int64(full)))
	halfCost := price.Div(two).Mul(decimal.NewFromInt(int64(half)))

	return fullCost.Add(halfCost)
}

// NthFree makes every n-th unit in a line free: each complete group of n
// units is billed for n-1, the remainder at full price.
type NthFree struct {
	name string
	n    int
}

// NewNthFree creates an every-n-th-unit-free promotion. The interval n must
// be at least 2.
func NewNthFree(name string, n int) (*NthFree, error) {
	if n < 2 {
		return nil, errors.Errorf("free unit interval must be at least 2, got %d", n)
	}
	return &NthFree{name: name, n: n}, nil
}

// NewThirdOneFree creates the buy-two-get-one-free promotion used by the
// demo catalog.
func NewThirdOneFree(name string) *NthFree {
	return &NthFree{name: name, n: 3}
}

// Name returns the display name of the promotion.
func (p *NthFree) Name() string { return p.name }

// Apply bills each complete group of n units for n-1 units.
func (p *NthFree) Apply(price decimal.Decimal, quantity int) decimal.Decimal {
	groups := quantity / p.n
	billed := groups*(p.n-1) + quantity%p.n

	return price.Mul(decimal.NewFromInt(int64(billed)))
}

// PercentOff applies a flat percentage discount to every unit. The percent is
// not clamped: values above 100 yield negative line costs and negative values
// yield surcharges, exactly as configured.
type PercentOff struct {
	name    string
	percent decimal.Decimal
}

// NewPercentOff creates a flat percentage discount promotion.
func NewPercentOff(name string, percent decimal.Decimal) *PercentOff {
	return &PercentOff{name: name, percent: percent}
}

// Name returns the display name of the promotion.
func (p *PercentOff) Name() string { return p.name }

// Percent returns the configured discount percentage.
func (p *PercentOff) Percent() decimal.Decimal { return p.percent }

// SetPercent replaces the discount percentage.
func (p *PercentOff) SetPercent(percent decimal.Decimal) {
	p.percent = percent
}

// Apply discounts every unit by the configured percentage.
func (p *PercentOff) Apply(price decimal.Decimal, quantity int) decimal.Decimal {
	discounted := price.Mul(hundred.Sub(p.percent)).Div(hundred)

	return discounted.Mul(decimal.NewFromInt(int64(quantity)))
}
