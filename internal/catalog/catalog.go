// Package catalog builds the store's product collection from declarative
// definitions: either a JSON catalog file or the built-in demo catalog.
package catalog

import (
	"encoding/json"
	"os"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront-challenge/internal/domain/product"
	"github.com/xenking/storefront-challenge/internal/domain/promotion"
)

// Product kinds accepted in catalog definitions. An empty kind means
// standard.
const (
	KindStandard   = "standard"
	KindNonStocked = "non_stocked"
	KindLimited    = "limited"
)

// Promotion types accepted in catalog definitions.
const (
	TypeSecondHalfPrice = "second_half_price"
	TypeNthFree         = "nth_free"
	TypePercentOff      = "percent_off"
)

// File is the top-level shape of a catalog definition file.
type File struct {
	Promotions []PromotionDef `json:"promotions"`
	Products   []ProductDef   `json:"products"`
}

// PromotionDef declares one promotion instance, shared by every product that
// references it by name.
type PromotionDef struct {
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Percent decimal.Decimal `json:"percent,omitempty"`
	Every   int             `json:"every,omitempty"`
}

// ProductDef declares one product.
type ProductDef struct {
	Kind      string          `json:"kind,omitempty"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Maximum   int             `json:"maximum,omitempty"`
	Promotion string          `json:"promotion,omitempty"`
}

// Load reads and builds a catalog definition file.
func Load(path string) ([]product.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog file")
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse catalog file")
	}

	return Build(f)
}

// Build constructs shared promotion instances first, then products, wiring
// each product to its referenced promotion.
func Build(f File) ([]product.Product, error) {
	promos := make(map[string]promotion.Promotion, len(f.Promotions))
	for _, def := range f.Promotions {
		if def.Name == "" {
			return nil, errors.New("promotion name is empty")
		}
		if _, ok := promos[def.Name]; ok {
			return nil, errors.Errorf("duplicate promotion %q", def.Name)
		}

		p, err := buildPromotion(def)
		if err != nil {
			return nil, errors.Wrapf(err, "promotion %q", def.Name)
		}
		promos[def.Name] = p
	}

	products := make([]product.Product, 0, len(f.Products))
	for _, def := range f.Products {
		p, err := buildProduct(def)
		if err != nil {
			return nil, errors.Wrapf(err, "product %q", def.Name)
		}

		if def.Promotion != "" {
			promo, ok := promos[def.Promotion]
			if !ok {
				return nil, errors.Errorf("product %q references unknown promotion %q", def.Name, def.Promotion)
			}
			if err := p.SetPromotion(promo); err != nil {
				return nil, errors.Wrapf(err, "product %q", def.Name)
			}
		}

		products = append(products, p)
	}

	return products, nil
}

func buildPromotion(def PromotionDef) (promotion.Promotion, error) {
	switch def.Type {
	case TypeSecondHalfPrice:
		return promotion.NewSecondHalfPrice(def.Name), nil
	case TypeNthFree:
		return promotion.NewNthFree(def.Name, def.Every)
	case TypePercentOff:
		return promotion.NewPercentOff(def.Name, def.Percent), nil
	default:
		return nil, errors.Errorf("unsupported promotion type %q", def.Type)
	}
}

func buildProduct(def ProductDef) (product.Product, error) {
	switch def.Kind {
	case "", KindStandard:
		return product.NewStandard(def.Name, def.Price, def.Quantity)
	case KindNonStocked:
		return product.NewNonStocked(def.Name, def.Price)
	case KindLimited:
		return product.NewLimited(def.Name, def.Price, def.Quantity, def.Maximum)
	default:
		return nil, errors.Errorf("unsupported product kind %q", def.Kind)
	}
}

// Default returns the built-in demo catalog used when no catalog file is
// configured.
func Default() []product.Product {
	products, err := Build(File{
		Products: []ProductDef{
			{Name: "MacBook Air M2", Price: decimal.NewFromInt(1450), Quantity: 100},
			{Name: "Bose QuietComfort Earbuds", Price: decimal.NewFromInt(250), Quantity: 500},
			{Name: "Google Pixel 7", Price: decimal.NewFromInt(500), Quantity: 250},
		},
	})
	if err != nil {
		panic(err)
	}

	return products
}
