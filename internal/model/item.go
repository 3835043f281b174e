// Package model defines the catalog item and its pricing rules.
package model

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidItem is returned when item attributes fail validation.
	ErrInvalidItem = errors.New("invalid item")
	// ErrUnknownVariant is returned for a variant tag outside the known set.
	ErrUnknownVariant = errors.New("unknown variant")
)

var hundred = decimal.NewFromInt(100)

// Variant tags the kind of catalog item.
type Variant int

const (
	// Basic items are priced at their base price.
	Basic Variant = iota + 1
	// Electronic items add an extra fee on top of the base price and carry
	// power and warranty attributes.
	Electronic
)

func (v Variant) String() string {
	switch v {
	case Basic:
		return "basic"
	case Electronic:
		return "electronic"
	default:
		return "unknown"
	}
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	switch v {
	case Basic, Electronic:
		return true
	default:
		return false
	}
}

// ParseVariant accepts menu numbers ("1", "2") and variant names.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "basic", "product":
		return Basic, nil
	case "2", "electronic", "electronics":
		return Electronic, nil
	default:
		return 0, errors.Wrapf(ErrUnknownVariant, "%q", s)
	}
}

// Item is a priced, discountable, stockable catalog entry.
//
// Power, Warranty and ExtraFee are meaningful only for Electronic items.
type Item struct {
	Variant   Variant
	Name      string
	ID        string
	BasePrice decimal.Decimal
	// Rate is the discount in percent; zero means no discount.
	Rate  decimal.Decimal
	Stock int

	Power    int
	Warranty int
	ExtraFee decimal.Decimal
}

// Attrs are the attributes shared by every variant.
type Attrs struct {
	Name      string
	ID        string
	BasePrice decimal.Decimal
	Rate      decimal.Decimal
	Stock     int
}

// ElectronicAttrs are the attributes specific to Electronic items.
type ElectronicAttrs struct {
	Power    int
	Warranty int
	ExtraFee decimal.Decimal
}

// NewBasic validates a and builds a Basic item.
func NewBasic(a Attrs) (*Item, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	return &Item{
		Variant:   Basic,
		Name:      a.Name,
		ID:        idOrNew(a.ID, "P"),
		BasePrice: a.BasePrice,
		Rate:      a.Rate,
		Stock:     a.Stock,
	}, nil
}

// NewElectronic validates a and e and builds an Electronic item.
func NewElectronic(a Attrs, e ElectronicAttrs) (*Item, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	switch {
	case e.ExtraFee.IsNegative():
		return nil, errors.Wrap(ErrInvalidItem, "extra fee must be >= 0")
	case e.Power < 0:
		return nil, errors.Wrap(ErrInvalidItem, "power must be >= 0")
	case e.Warranty < 0:
		return nil, errors.Wrap(ErrInvalidItem, "warranty must be >= 0")
	}
	return &Item{
		Variant:   Electronic,
		Name:      a.Name,
		ID:        idOrNew(a.ID, "E"),
		BasePrice: a.BasePrice,
		Rate:      a.Rate,
		Stock:     a.Stock,
		Power:     e.Power,
		Warranty:  e.Warranty,
		ExtraFee:  e.ExtraFee,
	}, nil
}

func (a Attrs) validate() error {
	switch {
	case strings.TrimSpace(a.Name) == "":
		return errors.Wrap(ErrInvalidItem, "name is required")
	case a.BasePrice.IsNegative():
		return errors.Wrap(ErrInvalidItem, "price must be >= 0")
	case a.Stock < 0:
		return errors.Wrap(ErrInvalidItem, "stock must be >= 0")
	}
	return nil
}

func idOrNew(id, prefix string) string {
	if id != "" {
		return id
	}
	return prefix + "-" + uuid.NewString()[:8]
}

// EffectivePrice is the price before discount: the base price, plus the
// extra fee for Electronic items.
func (it *Item) EffectivePrice() decimal.Decimal {
	switch it.Variant {
	case Electronic:
		return it.BasePrice.Add(it.ExtraFee)
	default:
		return it.BasePrice
	}
}

// DiscountedPrice applies rate (percent) to the effective price.
// Rates above 100 produce a negative price; bounds are the caller's concern.
func (it *Item) DiscountedPrice(rate decimal.Decimal) decimal.Decimal {
	return it.EffectivePrice().Mul(hundred.Sub(rate)).Div(hundred)
}

// HasDiscount reports whether the stored rate is non-zero.
func (it *Item) HasDiscount() bool { return !it.Rate.IsZero() }

// UnitPrice is what one unit costs at the stored rate.
func (it *Item) UnitPrice() decimal.Decimal {
	if it.HasDiscount() {
		return it.DiscountedPrice(it.Rate)
	}
	return it.EffectivePrice()
}

// UpdateStock replaces the stock quantity unconditionally.
func (it *Item) UpdateStock(n int) { it.Stock = n }

// OutOfStock reports whether no units are left.
func (it *Item) OutOfStock() bool { return it.Stock == 0 }
