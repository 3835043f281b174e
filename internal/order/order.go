// Package order turns the contents of two carts into stock decrements.
package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fairyhunter13/catalog-cart-simulator/internal/cart"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/model"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/obs"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/store"
)

// ErrAlreadyFinalized is returned by a second Finalize call.
var ErrAlreadyFinalized = errors.New("order already finalized")

// State is the lifecycle position of an order.
type State int

const (
	Created State = iota
	Finalized
)

func (s State) String() string {
	if s == Finalized {
		return "finalized"
	}
	return "created"
}

// LineResult records what Finalize did with one cart line.
type LineResult struct {
	Variant     model.Variant
	Name        string
	Quantity    int
	StockBefore int
	StockAfter  int
	// Err is store.ErrNotFound or store.ErrInsufficientStock (wrapped) when
	// the line was skipped.
	Err error
}

// Report lists the per-line results of Finalize in cart order, Basic lines
// first.
type Report struct {
	Lines []LineResult
}

// Failed returns the lines whose decrement was skipped.
func (r Report) Failed() []LineResult {
	var out []LineResult
	for _, l := range r.Lines {
		if l.Err != nil {
			out = append(out, l)
		}
	}
	return out
}

// Order snapshots a Basic cart and an Electronic cart at checkout.
type Order struct {
	ID        string
	CreatedAt time.Time

	state      State
	basic      []cart.Line
	electronic []cart.Line
	report     Report
}

// New snapshots the lines of both carts. Either cart may be nil.
func New(basicCart, electronicCart *cart.Cart) *Order {
	o := &Order{ID: uuid.NewString(), CreatedAt: time.Now().UTC()}
	if basicCart != nil {
		o.basic = basicCart.Lines()
	}
	if electronicCart != nil {
		o.electronic = electronicCart.Lines()
	}
	return o
}

// State returns the current lifecycle state.
func (o *Order) State() State { return o.state }

// Report returns the result of Finalize; empty before it ran.
func (o *Order) Report() Report { return o.report }

// Finalize takes every line's quantity off the matching inventory item.
//
// Items are resolved by name against cat, not through the cart's reference,
// so an item removed from the catalog since it was carted is reported and
// skipped. A failing line never stops the others. The order is finalized
// even when ctx is cancelled part way; lines already applied stay applied.
func (o *Order) Finalize(ctx context.Context, cat *store.Catalog) (Report, error) {
	if o.state == Finalized {
		return o.report, ErrAlreadyFinalized
	}
	o.state = Finalized

	groups := []struct {
		variant model.Variant
		lines   []cart.Line
	}{
		{model.Basic, o.basic},
		{model.Electronic, o.electronic},
	}
	for _, g := range groups {
		inv, err := cat.Inventory(g.variant)
		if err != nil {
			return o.report, err
		}
		for _, l := range g.lines {
			if err := ctx.Err(); err != nil {
				return o.report, errors.Wrap(err, "finalize interrupted")
			}
			res := LineResult{Variant: g.variant, Name: l.Item.Name, Quantity: l.Quantity}
			res.StockBefore, res.StockAfter, res.Err = inv.DecrementStock(l.Item.Name, l.Quantity)
			if res.Err != nil {
				obs.Logger.Warn("order_line_skipped",
					zap.String("order_id", o.ID),
					zap.Stringer("variant", g.variant),
					zap.String("name", res.Name),
					zap.Int("quantity", res.Quantity),
					zap.Error(res.Err),
				)
			}
			o.report.Lines = append(o.report.Lines, res)
		}
	}

	obs.Logger.Info("order_finalized",
		zap.String("order_id", o.ID),
		zap.Time("created_at", o.CreatedAt),
		zap.Int("lines", len(o.report.Lines)),
		zap.Int("failed", len(o.report.Failed())),
		zap.Stringer("total", o.Summary().Total),
	)
	return o.report, nil
}

// SummaryLine is one receipt entry.
type SummaryLine struct {
	Variant  model.Variant
	Name     string
	Quantity int
	Unit     decimal.Decimal
	Subtotal decimal.Decimal
	Item     *model.Item
}

// Summary is the priced view of the order.
type Summary struct {
	ID        string
	CreatedAt time.Time
	Lines     []SummaryLine
	Total     decimal.Decimal
}

// Summary prices every line, Basic first. It has no side effects.
func (o *Order) Summary() Summary {
	s := Summary{ID: o.ID, CreatedAt: o.CreatedAt, Total: decimal.Zero}
	for _, lines := range [][]cart.Line{o.basic, o.electronic} {
		for _, l := range lines {
			sub := l.Subtotal()
			s.Lines = append(s.Lines, SummaryLine{
				Variant:  l.Item.Variant,
				Name:     l.Item.Name,
				Quantity: l.Quantity,
				Unit:     l.Item.UnitPrice(),
				Subtotal: sub,
				Item:     l.Item,
			})
			s.Total = s.Total.Add(sub)
		}
	}
	return s
}
