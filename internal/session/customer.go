package session

import (
	"context"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/fairyhunter13/catalog-cart-simulator/internal/cart"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/model"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/obs"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/order"
)

const (
	menuOrder = iota + 1
	menuAdd
	menuRemove
	menuCompare
)

func (s *Session) customer(ctx context.Context) error {
	if err := s.browse(false); err != nil {
		return err
	}
	if s.basic.IsEmpty() && s.electronic.IsEmpty() {
		return nil
	}

	s.println("=====================================================")
	for {
		s.println("List of all products in the cart:")
		s.renderCarts()
		s.printf("Choose function:\n1. Order product\n2. Add product\n3. Remove product\n4. Compare 2 products\nChoose: ")
		choice, err := s.readChoice()
		if err != nil {
			return err
		}

		switch choice {
		case menuOrder:
			s.println("=====================")
			return s.placeOrder(ctx)
		case menuAdd:
			s.println("")
			if err := s.browse(true); err != nil {
				return err
			}
		case menuRemove:
			if err := s.removeFromCart(); err != nil {
				return err
			}
		case menuCompare:
			done, err := s.compare()
			if err != nil || done {
				return err
			}
		default:
			s.invalid()
			return nil
		}
	}
}

// browse runs the search, add, continue loop until the user stops. Coming
// back from the cart menu, a blank line follows the final No as well.
func (s *Session) browse(fromMenu bool) error {
	for {
		s.printf("Enter product you want to buy: ")
		name, err := s.readLine()
		if err != nil {
			return err
		}
		s.println("")

		it, err := s.cat.Lookup(name)
		if err != nil {
			s.printf("No results found for %s\n", name)
		} else {
			s.renderItem(it)
			add, err := s.askYesNo("Would you want to add this product to your cart?")
			if err != nil {
				return err
			}
			if add {
				if err := s.addToCart(it); err != nil {
					return err
				}
			}
		}

		more, err := s.askYesNo("\nWould you want to look for other products?")
		if err != nil {
			return err
		}
		if more || fromMenu {
			s.println("")
		}
		if !more {
			return nil
		}
	}
}

func (s *Session) addToCart(it *model.Item) error {
	if err := cart.CheckQuantity(it, 1); errors.Is(err, cart.ErrOutOfStock) {
		s.println("This product is out of stock")
		return nil
	}
	qty, err := s.readInt("Enter number of products you want to buy: ", func(n int) error {
		return cart.CheckQuantity(it, n)
	})
	if err != nil {
		return err
	}
	s.Cart(it.Variant).Add(it, qty)
	obs.Logger.Debug("cart_line_added",
		zap.Stringer("variant", it.Variant),
		zap.String("name", it.Name),
		zap.Int("quantity", qty),
	)
	s.println("Add to the cart successful!")
	return nil
}

func (s *Session) removeFromCart() error {
	s.printf("\nEnter product name: ")
	name, err := s.readLine()
	if err != nil {
		return err
	}
	if s.basic.Remove(name) || s.electronic.Remove(name) {
		s.println("Remove successful!")
		s.println("")
		return nil
	}
	s.printf("No results found for %s\n", name)
	return nil
}

// compare prices two lines of one cart. It reports done when the session
// must end because of an invalid product type.
func (s *Session) compare() (done bool, err error) {
	s.printf("\nChoose type of product to compare:\n1. Product\n2. Electronics\nChoose: ")
	variant, err := s.readVariant()
	if err != nil {
		return false, err
	}
	s.println("")
	var c *cart.Cart
	switch variant {
	case model.Basic:
		c = s.basic
	case model.Electronic:
		c = s.electronic
	default:
		s.invalid()
		return true, nil
	}

	s.printf("Enter first product's name: ")
	first, err := s.readLine()
	if err != nil {
		return false, err
	}
	if _, err := c.Find(first); err != nil {
		s.printf("No results found for %s\n", first)
		return false, nil
	}

	var second string
	for {
		s.printf("Enter second product's name: ")
		if second, err = s.readLine(); err != nil {
			return false, err
		}
		if second != first {
			break
		}
		s.println("The second product's name duplicates the first one. Enter again")
	}

	cmp, err := c.Compare(first, second)
	if err != nil {
		s.printf("No results found for %s\n", second)
		return false, nil
	}
	switch {
	case cmp == 0:
		s.printf("%s's price is equal to %s's price\n\n", first, second)
	case cmp > 0:
		s.printf("%s is more expensive than %s\n\n", first, second)
	default:
		s.printf("%s is less expensive than %s\n\n", first, second)
	}
	return false, nil
}

func (s *Session) placeOrder(ctx context.Context) error {
	o := order.New(s.basic, s.electronic)
	rep, err := o.Finalize(ctx, s.cat)
	if err != nil {
		return errors.Wrap(err, "finalize order")
	}
	s.renderReceipt(o, rep)
	return nil
}
