package model

// Price comparison looks only at the effective price. Name, stock and rate
// never take part, so two different items can compare equal.

// ComparePrice returns -1, 0 or +1 as a's effective price is below, equal
// to or above b's.
func ComparePrice(a, b *Item) int {
	return a.EffectivePrice().Cmp(b.EffectivePrice())
}

// PriceEquals reports whether a and b have the same effective price.
func PriceEquals(a, b *Item) bool { return ComparePrice(a, b) == 0 }

// PriceGreaterThan reports whether a costs more than b before discount.
func PriceGreaterThan(a, b *Item) bool { return ComparePrice(a, b) > 0 }
