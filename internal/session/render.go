package session

import (
	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/catalog-cart-simulator/internal/cart"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/model"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/order"
)

func (s *Session) money(d decimal.Decimal) string {
	if s.places < 0 {
		return d.String()
	}
	return d.StringFixed(int32(s.places))
}

func (s *Session) renderItem(it *model.Item) {
	d := it.Describe()
	if d.OutOfStock {
		s.println("(Out of stock)")
	}
	s.printf("Name: %s\n", d.Name)
	s.printf("Price: %s\n", s.money(d.EffectivePrice))
	if d.DiscountedPrice != nil {
		s.printf("Price (applying %s%% discount): %s\n", d.Rate.String(), s.money(*d.DiscountedPrice))
	}
	if d.Power != nil {
		s.printf("Power: %d\n", *d.Power)
	}
	if d.Warranty != nil {
		s.printf("Warranty Time: %d\n", *d.Warranty)
	}
	s.printf("Amount: %d\n", d.Stock)
}

func (s *Session) renderLine(l cart.Line) {
	it := l.Item
	s.printf("Name: %s\n", it.Name)
	s.printf("Price: %s\n", s.money(it.EffectivePrice()))
	if it.HasDiscount() {
		s.printf("Price (applying %s%% discount): %s\n", it.Rate.String(), s.money(it.DiscountedPrice(it.Rate)))
	}
	s.printf("Quantity: %d\n", l.Quantity)
	if l.Quantity != 1 {
		s.printf("Subtotal: %s\n", s.money(l.Subtotal()))
	}
	s.println("")
}

func (s *Session) renderCarts() {
	for _, c := range []*cart.Cart{s.basic, s.electronic} {
		for _, l := range c.All() {
			s.renderLine(l)
		}
	}
	s.printf("Total: %s\n", s.money(s.basic.Total().Add(s.electronic.Total())))
}

func (s *Session) renderReceipt(o *order.Order, rep order.Report) {
	s.println("ORDER DETAILS:")
	sum := o.Summary()
	for _, l := range sum.Lines {
		s.renderLine(cart.Line{Item: l.Item, Quantity: l.Quantity})
	}
	s.printf("Total: %s\n", s.money(sum.Total))
	for _, f := range rep.Failed() {
		s.printf("Stock not updated for %s: %v\n", f.Name, f.Err)
	}
}
