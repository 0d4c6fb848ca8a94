// Package app wires the storefront together: configuration, catalog, store,
// metrics, and the interactive console session.
package app

import (
	"context"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/storefront-challenge/internal/catalog"
	"github.com/xenking/storefront-challenge/internal/cli"
	"github.com/xenking/storefront-challenge/internal/domain/store"
)

// Run creates all dependencies and drives the interactive session until the
// user quits or the process is signalled. It is the single wiring point for
// the application.
func Run(ctx context.Context, lg *zap.Logger, t *app.Metrics, cfg *Config) error {
	products := catalog.Default()
	source := "built-in"
	if cfg.CatalogPath != "" {
		var err error
		products, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			return errors.Wrap(err, "load catalog")
		}
		source = cfg.CatalogPath
	}
	lg.Info("catalog ready",
		zap.Int("products", len(products)),
		zap.String("source", source),
	)

	st := store.New(products...)

	meter := t.MeterProvider().Meter("storefront")
	ordersPlaced, err := meter.Int64Counter("store.orders_placed",
		metric.WithDescription("Orders successfully placed"),
	)
	if err != nil {
		return errors.Wrap(err, "create orders counter")
	}
	orderValue, err := meter.Float64Counter("store.order_value",
		metric.WithDescription("Monetary value of placed orders"),
	)
	if err != nil {
		return errors.Wrap(err, "create order value counter")
	}

	menu := cli.New(st, os.Stdin, os.Stdout, lg,
		cli.WithOrderObserver(func(ctx context.Context, receipt *store.Receipt) {
			ordersPlaced.Add(ctx, 1)
			orderValue.Add(ctx, receipt.Total.InexactFloat64())
		}),
	)

	if err := menu.Run(ctx); err != nil {
		return errors.Wrap(err, "menu session")
	}

	lg.Info("session finished", zap.Int("items_in_store", st.TotalQuantity()))

	return nil
}
