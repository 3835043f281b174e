package model

import "github.com/shopspring/decimal"

// Description is the display view of an item.
//
// DiscountedPrice is nil when the item has no discount. Power and Warranty
// are nil for Basic items.
type Description struct {
	Variant         Variant
	Name            string
	EffectivePrice  decimal.Decimal
	Rate            decimal.Decimal
	DiscountedPrice *decimal.Decimal
	Power           *int
	Warranty        *int
	Stock           int
	OutOfStock      bool
}

// Describe returns the fields shown to a customer browsing the catalog.
func (it *Item) Describe() Description {
	d := Description{
		Variant:        it.Variant,
		Name:           it.Name,
		EffectivePrice: it.EffectivePrice(),
		Rate:           it.Rate,
		Stock:          it.Stock,
		OutOfStock:     it.OutOfStock(),
	}
	if it.HasDiscount() {
		dp := it.DiscountedPrice(it.Rate)
		d.DiscountedPrice = &dp
	}
	switch it.Variant {
	case Electronic:
		power, warranty := it.Power, it.Warranty
		d.Power = &power
		d.Warranty = &warranty
	case Basic:
	}
	return d
}
