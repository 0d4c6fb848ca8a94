// Package cli implements the interactive console storefront: a numbered menu
// for listing products, showing stock totals, and placing orders. It is a
// thin collaborator; every order it assembles is re-validated by the store
// and the products themselves.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/xenking/storefront-challenge/internal/domain/product"
	"github.com/xenking/storefront-challenge/internal/domain/store"
)

const separator = "______"

var (
	listing  = color.New(color.FgRed)
	warning  = color.New(color.FgRed)
	notice   = color.New(color.FgYellow)
	success  = color.New(color.FgGreen)
	farewell = color.New(color.FgHiBlue)
)

// OrderObserver is notified after every successfully placed order.
type OrderObserver func(ctx context.Context, receipt *store.Receipt)

// Option customizes a Menu.
type Option func(*Menu)

// WithOrderObserver registers a callback invoked after each placed order.
func WithOrderObserver(fn OrderObserver) Option {
	return func(m *Menu) {
		m.observer = fn
	}
}

// Menu drives one interactive storefront session.
type Menu struct {
	store    *store.Store
	in       *bufio.Scanner
	out      io.Writer
	lg       *zap.Logger
	observer OrderObserver
}

// New creates a menu reading commands from in and writing to out.
func New(st *store.Store, in io.Reader, out io.Writer, lg *zap.Logger, opts ...Option) *Menu {
	m := &Menu{
		store: st,
		in:    bufio.NewScanner(in),
		out:   out,
		lg:    lg,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Run displays the menu until the user quits, input ends, or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		m.printMenu()

		choice, ok := m.readLine("Please choose a number: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			m.listProducts()
		case "2":
			m.showTotalQuantity()
		case "3":
			m.makeOrder(ctx)
		case "4":
			farewell.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			warning.Fprintln(m.out, "Invalid choice!")
		}
	}

	return nil
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "    Store Menu")
	fmt.Fprintln(m.out, "    ___________")
	fmt.Fprintln(m.out, "1. List all products in store")
	fmt.Fprintln(m.out, "2. Show total amount in store")
	fmt.Fprintln(m.out, "3. Make an order")
	fmt.Fprintln(m.out, "4. Quit")
}

func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) listProducts() {
	m.printListing(m.store.ActiveProducts())
}

func (m *Menu) printListing(products []product.Product) {
	fmt.Fprintln(m.out, separator)
	for i, p := range products {
		listing.Fprintf(m.out, "%d. %s\n", i+1, p.Show())
	}
	fmt.Fprintln(m.out, separator)
}

func (m *Menu) showTotalQuantity() {
	notice.Fprintf(m.out, "Total of %d items in store\n", m.store.TotalQuantity())
}

// makeOrder assembles order lines interactively, then places the whole order
// in one store call.
func (m *Menu) makeOrder(ctx context.Context) {
	products := m.store.ActiveProducts()
	m.printListing(products)

	var lines []store.Line
	for {
		choice, ok := m.readLine("Which product # do you want? (Enter 0 to finish): ")
		if !ok || choice == "0" {
			break
		}

		index, err := strconv.Atoi(choice)
		if err != nil {
			warning.Fprintln(m.out, "Invalid input!")
			continue
		}
		if index < 1 || index > len(products) {
			warning.Fprintln(m.out, "Invalid product number!")
			continue
		}

		selected := products[index-1]
		m.printAvailability(selected)

		quantity, ok := m.readQuantity(selected)
		if !ok {
			continue
		}

		lines = append(lines, store.Line{Product: selected, Quantity: quantity})
		success.Fprintln(m.out, "Product added to order!")
	}

	if len(lines) == 0 {
		warning.Fprintln(m.out, "Shopping cart is empty!")
		return
	}

	m.placeOrder(ctx, lines)
}

func (m *Menu) printAvailability(p product.Product) {
	if limit := purchasableCap(p); limit > 0 {
		notice.Fprintf(m.out, "Available quantity: %d\n", limit)
		return
	}
	notice.Fprintln(m.out, "Available quantity: unlimited")
}

func (m *Menu) readQuantity(p product.Product) (int, bool) {
	raw, ok := m.readLine("Enter quantity: ")
	if !ok {
		return 0, false
	}

	quantity, err := strconv.Atoi(raw)
	if err != nil {
		warning.Fprintln(m.out, "Invalid input!")
		return 0, false
	}

	limit := purchasableCap(p)
	if quantity < 1 || (limit > 0 && quantity > limit) {
		warning.Fprintln(m.out, "Invalid quantity!")
		return 0, false
	}

	return quantity, true
}

func (m *Menu) placeOrder(ctx context.Context, lines []store.Line) {
	receipt, err := m.store.Order(lines)
	if err != nil {
		m.lg.Warn("order rejected", zap.Error(err))
		warning.Fprintln(m.out, err.Error())
		return
	}

	m.lg.Info("order placed",
		zap.String("order_id", receipt.ID),
		zap.Int("lines", len(receipt.Lines)),
		zap.String("total", receipt.Total.String()),
	)
	success.Fprintf(m.out, "Order placed successfully! Total cost: £%s\n", receipt.Total)

	if m.observer != nil {
		m.observer(ctx, receipt)
	}
}

// purchasableCap returns the largest quantity the menu accepts for p, or
// zero when there is no cap. Limited products are capped by their purchase
// maximum rather than by stock.
func purchasableCap(p product.Product) int {
	switch v := p.(type) {
	case *product.Limited:
		return v.Maximum()
	case *product.NonStocked:
		return 0
	default:
		return p.Quantity()
	}
}
