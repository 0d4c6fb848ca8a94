package store

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront-challenge/internal/domain/product"
)

// Line pairs a product with a requested quantity. Lines exist only for the
// duration of one Order call.
type Line struct {
	Product  product.Product
	Quantity int
}

// ReceiptLine records one successfully executed order line.
type ReceiptLine struct {
	Product  string
	Quantity int
	Cost     decimal.Decimal
}

// Receipt summarizes a successfully executed order.
type Receipt struct {
	ID        string
	Lines     []ReceiptLine
	Total     decimal.Decimal
	CreatedAt time.Time
}

// Order executes the given lines one by one, delegating each purchase to the
// product's own Buy, and returns a receipt with the summed cost. Lines are
// applied in order; earlier purchases are not rolled back when a later line
// fails.
func (s *Store) Order(lines []Line) (*Receipt, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	receipt := &Receipt{
		ID:        uuid.New().String(),
		Lines:     make([]ReceiptLine, 0, len(lines)),
		Total:     decimal.Zero,
		CreatedAt: time.Now(),
	}

	for _, line := range lines {
		if !s.contains(line.Product) {
			return nil, &UnknownProductError{Product: line.Product.Name()}
		}

		cost, err := line.Product.Buy(line.Quantity)
		if err != nil {
			return nil, errors.Wrapf(err, "buy %s", line.Product.Name())
		}

		receipt.Lines = append(receipt.Lines, ReceiptLine{
			Product:  line.Product.Name(),
			Quantity: line.Quantity,
			Cost:     cost,
		})
		receipt.Total = receipt.Total.Add(cost)
	}

	return receipt, nil
}
