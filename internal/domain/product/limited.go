package product

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Limited is a stock-tracked product with a cap on how many units a single
// purchase may contain, independent of the current stock level.
type Limited struct {
	base
	maximum int
}

// NewLimited creates a limited product. The per-purchase maximum must lie
// between one and the initial quantity.
func NewLimited(name string, price decimal.Decimal, quantity, maximum int) (*Limited, error) {
	b, err := newBase(name, price, quantity)
	if err != nil {
		return nil, err
	}
	if maximum < 1 || maximum > quantity {
		return nil, errors.Wrapf(ErrInvalidProduct, "maximum %d out of range for %s", maximum, name)
	}

	return &Limited{base: b, maximum: maximum}, nil
}

// Maximum returns the largest quantity allowed in a single purchase.
func (l *Limited) Maximum() int { return l.maximum }

// Buy purchases quantity units. The request is validated against the
// per-purchase maximum, not the on-hand quantity; SetQuantity ignores the
// negative target an over-stock purchase would produce, so stock stays put
// in that case.
func (l *Limited) Buy(quantity int) (decimal.Decimal, error) {
	if !l.active {
		return decimal.Zero, ErrOutOfStock
	}
	if quantity < 1 {
		return decimal.Zero, ErrInvalidQuantity
	}
	if quantity > l.maximum {
		return decimal.Zero, &ExceedsMaximumError{Product: l.name, Maximum: l.maximum}
	}

	cost := l.lineCost(quantity)
	l.SetQuantity(l.qty - quantity)

	return cost, nil
}

// Show returns the display representation, including the purchase maximum.
func (l *Limited) Show() string {
	return fmt.Sprintf("%s, Price: £%s, Quantity: %d, Maximum: %d%s",
		l.name, l.price, l.qty, l.maximum, l.promotionSuffix())
}
