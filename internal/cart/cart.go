// Package cart implements the per-variant shopping cart.
package cart

import (
	"iter"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/catalog-cart-simulator/internal/model"
)

var (
	// ErrNotFound is returned when no line holds the requested name.
	ErrNotFound = errors.New("not in cart")
	// ErrOutOfStock is returned when the item has no units left.
	ErrOutOfStock = errors.New("out of stock")
	// ErrInvalidQuantity is returned for a quantity outside 1..stock.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrSameItem is returned when an item is compared with itself.
	ErrSameItem = errors.New("same item")
)

// Line is one cart entry. Item points at the inventory's instance, so price
// and rate are always read live.
type Line struct {
	Item     *model.Item
	Quantity int
}

// Subtotal is the unit price at the current rate times the quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Item.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered list of lines for one variant.
type Cart struct {
	variant model.Variant
	lines   []Line
}

// New returns an empty cart for variant v.
func New(v model.Variant) *Cart {
	return &Cart{variant: v}
}

// Variant returns the variant of items held by the cart.
func (c *Cart) Variant() model.Variant { return c.variant }

// CheckQuantity validates a requested quantity against the item's current
// stock. Callers run it before Add; Add itself trusts its input.
func CheckQuantity(it *model.Item, qty int) error {
	if it.OutOfStock() {
		return errors.Wrapf(ErrOutOfStock, "%q", it.Name)
	}
	if qty < 1 || qty > it.Stock {
		return errors.Wrapf(ErrInvalidQuantity, "%d not in 1..%d", qty, it.Stock)
	}
	return nil
}

// Add appends a line. Adding the same item twice yields two lines.
func (c *Cart) Add(it *model.Item, qty int) {
	c.lines = append(c.lines, Line{Item: it, Quantity: qty})
}

// Remove deletes the first line whose item is called name and reports
// whether one was found.
func (c *Cart) Remove(name string) bool {
	i, err := c.Find(name)
	if err != nil {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

// Find returns the index of the first line whose item is called name.
func (c *Cart) Find(name string) (int, error) {
	for i, l := range c.lines {
		if l.Item.Name == name {
			return i, nil
		}
	}
	return -1, errors.Wrapf(ErrNotFound, "%q", name)
}

// Total sums every line's subtotal. Discounts are computed now, not when
// the line was added.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// All iterates the lines in insertion order.
func (c *Cart) All() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for i, l := range c.lines {
			if !yield(i, l) {
				return
			}
		}
	}
}

// Len returns the number of lines.
func (c *Cart) Len() int { return len(c.lines) }

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Compare orders two lines of the cart by effective price.
func (c *Cart) Compare(nameA, nameB string) (int, error) {
	if nameA == nameB {
		return 0, errors.Wrapf(ErrSameItem, "%q", nameA)
	}
	i, err := c.Find(nameA)
	if err != nil {
		return 0, err
	}
	j, err := c.Find(nameB)
	if err != nil {
		return 0, err
	}
	return model.ComparePrice(c.lines[i].Item, c.lines[j].Item), nil
}
