package product

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Standard is a stock-tracked product that deactivates once it sells out.
type Standard struct {
	base
}

// NewStandard creates a stock-tracked product. The product starts active
// when quantity is at least one.
func NewStandard(name string, price decimal.Decimal, quantity int) (*Standard, error) {
	b, err := newBase(name, price, quantity)
	if err != nil {
		return nil, err
	}

	return &Standard{base: b}, nil
}

// Buy purchases quantity units, decrementing stock and deactivating the
// product when the last unit is sold.
func (s *Standard) Buy(quantity int) (decimal.Decimal, error) {
	if !s.active {
		return decimal.Zero, ErrOutOfStock
	}
	if quantity < 1 {
		return decimal.Zero, ErrInvalidQuantity
	}
	if quantity > s.qty {
		return decimal.Zero, &InsufficientStockError{
			Product:   s.name,
			Requested: quantity,
			Available: s.qty,
		}
	}

	cost := s.lineCost(quantity)
	s.SetQuantity(s.qty - quantity)

	return cost, nil
}

// Show returns the display representation of the product.
func (s *Standard) Show() string {
	return fmt.Sprintf("%s, Price: £%s, Quantity: %d%s",
		s.name, s.price, s.qty, s.promotionSuffix())
}
