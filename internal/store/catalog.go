package store

import (
	"github.com/go-faster/errors"

	"github.com/fairyhunter13/catalog-cart-simulator/internal/model"
)

// Catalog pairs the Basic and Electronic inventories. The two namespaces are
// independent and searched Basic first.
type Catalog struct {
	Basic      *Inventory
	Electronic *Inventory
}

// NewCatalog builds a catalog from items, routing each to the inventory of
// its variant.
func NewCatalog(items ...*model.Item) (*Catalog, error) {
	c := &Catalog{
		Basic:      &Inventory{variant: model.Basic},
		Electronic: &Inventory{variant: model.Electronic},
	}
	for _, it := range items {
		if err := c.Add(it); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Inventory returns the inventory holding variant v.
func (c *Catalog) Inventory(v model.Variant) (*Inventory, error) {
	switch v {
	case model.Basic:
		return c.Basic, nil
	case model.Electronic:
		return c.Electronic, nil
	default:
		return nil, errors.Wrapf(model.ErrUnknownVariant, "%d", int(v))
	}
}

// Add routes it to the inventory of its variant.
func (c *Catalog) Add(it *model.Item) error {
	if it == nil {
		return errors.Wrap(model.ErrInvalidItem, "nil item")
	}
	inv, err := c.Inventory(it.Variant)
	if err != nil {
		return err
	}
	return inv.Add(it)
}

// Lookup finds name in the Basic inventory, then in the Electronic one.
func (c *Catalog) Lookup(name string) (*model.Item, error) {
	if it, err := c.Basic.Lookup(name); err == nil {
		return it, nil
	}
	return c.Electronic.Lookup(name)
}

// Remove deletes the first item called name, checking Basic before Electronic.
func (c *Catalog) Remove(name string) (model.Variant, error) {
	if err := c.Basic.Remove(name); err == nil {
		return model.Basic, nil
	}
	if err := c.Electronic.Remove(name); err != nil {
		return 0, err
	}
	return model.Electronic, nil
}
