package product

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NonStocked is a product sold without stock tracking, such as a license or
// a service. Quantity is pinned at zero, the product is always active, and
// any positive amount can be bought.
type NonStocked struct {
	base
}

// NewNonStocked creates a non-stocked product.
func NewNonStocked(name string, price decimal.Decimal) (*NonStocked, error) {
	b, err := newBase(name, price, 0)
	if err != nil {
		return nil, err
	}
	b.active = true

	return &NonStocked{base: b}, nil
}

// SetQuantity is a no-op: stock is not a meaningful concept for this variant.
func (n *NonStocked) SetQuantity(int) {}

// Buy purchases quantity units without touching stock.
func (n *NonStocked) Buy(quantity int) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Zero, ErrInvalidQuantity
	}

	return n.lineCost(quantity), nil
}

// Show returns the display representation, omitting the quantity segment.
func (n *NonStocked) Show() string {
	return fmt.Sprintf("%s, Price: £%s%s", n.name, n.price, n.promotionSuffix())
}
