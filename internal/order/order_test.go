package order

import (
	"context"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/catalog-cart-simulator/internal/cart"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/model"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/store"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func setup(t *testing.T) (*store.Catalog, *cart.Cart, *cart.Cart) {
	t.Helper()
	book, err := model.NewBasic(model.Attrs{Name: "Book A", ID: "P001", BasePrice: d("50"), Rate: d("10"), Stock: 20})
	require.NoError(t, err)
	pen, err := model.NewBasic(model.Attrs{Name: "Pen D", ID: "P004", BasePrice: d("5"), Stock: 100})
	require.NoError(t, err)
	phone, err := model.NewElectronic(
		model.Attrs{Name: "Phone X", ID: "E001", BasePrice: d("800"), Rate: d("15"), Stock: 5},
		model.ElectronicAttrs{Power: 20, Warranty: 12, ExtraFee: d("50")},
	)
	require.NoError(t, err)
	cat, err := store.NewCatalog(book, pen, phone)
	require.NoError(t, err)
	return cat, cart.New(model.Basic), cart.New(model.Electronic)
}

func lookup(t *testing.T, cat *store.Catalog, name string) *model.Item {
	t.Helper()
	it, err := cat.Lookup(name)
	require.NoError(t, err)
	return it
}

func TestFinalizeDecrementsInventory(t *testing.T) {
	cat, bc, ec := setup(t)
	bc.Add(lookup(t, cat, "Book A"), 2)
	ec.Add(lookup(t, cat, "Phone X"), 1)

	o := New(bc, ec)
	require.Equal(t, Created, o.State())
	rep, err := o.Finalize(context.Background(), cat)
	require.NoError(t, err)
	require.Empty(t, rep.Failed(), spew.Sdump(rep))
	assert.Equal(t, Finalized, o.State())

	assert.Equal(t, 18, lookup(t, cat, "Book A").Stock)
	assert.Equal(t, 4, lookup(t, cat, "Phone X").Stock)

	s := o.Summary()
	assert.Equal(t, o.ID, s.ID)
	require.Len(t, s.Lines, 2)
	assert.True(t, s.Lines[0].Subtotal.Equal(d("90")))
	assert.True(t, s.Total.Equal(d("812.5")), s.Total.String())
}

func TestPenEndToEnd(t *testing.T) {
	cat, bc, ec := setup(t)
	pen := lookup(t, cat, "Pen D")
	require.NoError(t, cart.CheckQuantity(pen, 3))
	bc.Add(pen, 3)
	require.True(t, bc.Total().Equal(d("15")))

	_, err := New(bc, ec).Finalize(context.Background(), cat)
	require.NoError(t, err)
	assert.Equal(t, 97, lookup(t, cat, "Pen D").Stock)
}

func TestFinalizeSkipsRemovedItem(t *testing.T) {
	cat, bc, ec := setup(t)
	bc.Add(lookup(t, cat, "Book A"), 2)
	bc.Add(lookup(t, cat, "Pen D"), 1)
	_, err := cat.Remove("Book A")
	require.NoError(t, err)

	rep, err := New(bc, ec).Finalize(context.Background(), cat)
	require.NoError(t, err)
	failed := rep.Failed()
	require.Len(t, failed, 1, spew.Sdump(rep))
	assert.Equal(t, "Book A", failed[0].Name)
	assert.True(t, errors.Is(failed[0].Err, store.ErrNotFound))
	assert.Equal(t, 99, lookup(t, cat, "Pen D").Stock)
}

func TestFinalizeReportsStockMismatch(t *testing.T) {
	cat, bc, ec := setup(t)
	phone := lookup(t, cat, "Phone X")
	ec.Add(phone, 4)
	bc.Add(lookup(t, cat, "Book A"), 1)
	phone.UpdateStock(2)

	rep, err := New(bc, ec).Finalize(context.Background(), cat)
	require.NoError(t, err)
	require.Len(t, rep.Lines, 2)
	assert.NoError(t, rep.Lines[0].Err)
	assert.True(t, errors.Is(rep.Lines[1].Err, store.ErrInsufficientStock))
	assert.Equal(t, 2, rep.Lines[1].StockBefore)
	assert.Equal(t, 2, phone.Stock)
	assert.Equal(t, 19, lookup(t, cat, "Book A").Stock)
}

func TestFinalizeTwice(t *testing.T) {
	cat, bc, ec := setup(t)
	bc.Add(lookup(t, cat, "Book A"), 2)
	o := New(bc, ec)
	_, err := o.Finalize(context.Background(), cat)
	require.NoError(t, err)
	_, err = o.Finalize(context.Background(), cat)
	assert.True(t, errors.Is(err, ErrAlreadyFinalized))
	assert.Equal(t, 18, lookup(t, cat, "Book A").Stock)
}

func TestFinalizeCancelled(t *testing.T) {
	cat, bc, ec := setup(t)
	bc.Add(lookup(t, cat, "Book A"), 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o := New(bc, ec)
	_, err := o.Finalize(ctx, cat)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, Finalized, o.State())
	assert.Equal(t, 20, lookup(t, cat, "Book A").Stock)
}

func TestSummarySnapshotsCarts(t *testing.T) {
	cat, bc, _ := setup(t)
	bc.Add(lookup(t, cat, "Pen D"), 3)
	o := New(bc, nil)
	bc.Add(lookup(t, cat, "Book A"), 1)

	s := o.Summary()
	assert.Equal(t, o.ID, s.ID)
	assert.False(t, s.CreatedAt.IsZero())
	assert.Equal(t, o.CreatedAt, s.CreatedAt)
	require.Len(t, s.Lines, 1)
	assert.Equal(t, "Pen D", s.Lines[0].Name)
	assert.True(t, s.Total.Equal(d("15")))
	assert.Empty(t, o.Report().Lines)
}
