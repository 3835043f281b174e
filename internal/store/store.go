// Package store holds the authoritative in-memory inventories.
package store

import (
	"slices"
	"sync"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/fairyhunter13/catalog-cart-simulator/internal/model"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/obs"
)

var (
	// ErrNotFound is returned when no item carries the requested name.
	ErrNotFound = errors.New("item not found")
	// ErrVariantMismatch is returned when an item is added to an inventory
	// of another variant.
	ErrVariantMismatch = errors.New("variant mismatch")
	// ErrInsufficientStock is returned when a decrement exceeds the stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Inventory is an ordered collection of items of one variant.
//
// Names are not unique. Lookups scan linearly and the first match wins.
type Inventory struct {
	variant model.Variant

	mu    sync.RWMutex
	items []*model.Item
}

// NewInventory creates an inventory for variant seeded with items.
func NewInventory(variant model.Variant, items ...*model.Item) (*Inventory, error) {
	inv := &Inventory{variant: variant}
	for _, it := range items {
		if err := inv.Add(it); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// Variant returns the variant this inventory stores.
func (inv *Inventory) Variant() model.Variant { return inv.variant }

// Add appends it. Duplicate names are accepted.
func (inv *Inventory) Add(it *model.Item) error {
	if it == nil {
		return errors.Wrap(model.ErrInvalidItem, "nil item")
	}
	if it.Variant != inv.variant {
		return errors.Wrapf(ErrVariantMismatch, "%s item %q into %s inventory", it.Variant, it.Name, inv.variant)
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.items = append(inv.items, it)
	return nil
}

// Remove deletes the first item called name. Later duplicates stay.
func (inv *Inventory) Remove(name string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	i, err := inv.find(name)
	if err != nil {
		return err
	}
	id := inv.items[i].ID
	inv.items = slices.Delete(inv.items, i, i+1)
	obs.Logger.Info("inventory_item_removed",
		zap.Stringer("variant", inv.variant),
		zap.String("name", name),
		zap.String("id", id),
	)
	return nil
}

// Find returns the index of the first item called name.
func (inv *Inventory) Find(name string) (int, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.find(name)
}

func (inv *Inventory) find(name string) (int, error) {
	for i, it := range inv.items {
		if it.Name == name {
			return i, nil
		}
	}
	return -1, errors.Wrapf(ErrNotFound, "%q", name)
}

// Lookup returns the first item called name.
func (inv *Inventory) Lookup(name string) (*model.Item, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	i, err := inv.find(name)
	if err != nil {
		return nil, err
	}
	return inv.items[i], nil
}

// Len returns the number of items.
func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.items)
}

// DecrementStock takes qty units off the first item called name.
// Stock is left untouched when the item is missing or holds fewer than qty
// units.
func (inv *Inventory) DecrementStock(name string, qty int) (before, after int, err error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	i, err := inv.find(name)
	if err != nil {
		return 0, 0, err
	}
	it := inv.items[i]
	before = it.Stock
	if qty > before {
		return before, before, errors.Wrapf(ErrInsufficientStock, "%q: want %d, have %d", name, qty, before)
	}
	it.UpdateStock(before - qty)
	return before, it.Stock, nil
}
