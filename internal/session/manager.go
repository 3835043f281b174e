package session

import (
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/fairyhunter13/catalog-cart-simulator/internal/model"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/obs"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/store"
)

func (s *Session) manager() error {
	s.printf("Choose function:\n1. Add product\n2. Remove product\nChoose: ")
	choice, err := s.readChoice()
	if err != nil {
		return err
	}
	s.println("=======================================")

	switch choice {
	case 1:
		return s.addProduct()
	case 2:
		return s.removeProduct()
	default:
		s.invalid()
		return nil
	}
}

func (s *Session) addProduct() error {
	s.printf("Choose type of product you want to add:\n1. Product\n2. Electronic Product\nChoose: ")
	variant, err := s.readVariant()
	if err != nil {
		return err
	}
	if !variant.Valid() {
		s.invalid()
		return nil
	}

	s.println("Enter product information:")
	var a model.Attrs
	s.printf("Name: ")
	if a.Name, err = s.readLine(); err != nil {
		return err
	}
	s.printf("ID: ")
	if a.ID, err = s.readLine(); err != nil {
		return err
	}
	if a.BasePrice, err = s.readDecimal("Price: "); err != nil {
		return err
	}
	discount, err := s.askYesNo("Do you want to apply discount to this product?")
	if err != nil {
		return err
	}
	if discount {
		if a.Rate, err = s.readDecimal("Enter rate: "); err != nil {
			return err
		}
	}
	if a.Stock, err = s.readInt("Amount: ", nonNegative); err != nil {
		return err
	}

	var it *model.Item
	switch variant {
	case model.Basic:
		it, err = model.NewBasic(a)
	case model.Electronic:
		var e model.ElectronicAttrs
		if e.Power, err = s.readInt("Power: ", nonNegative); err != nil {
			return err
		}
		if e.Warranty, err = s.readInt("Warranty time: ", nonNegative); err != nil {
			return err
		}
		if e.ExtraFee, err = s.readDecimal("Extra Fee: "); err != nil {
			return err
		}
		it, err = model.NewElectronic(a, e)
	}
	if err == nil {
		err = s.cat.Add(it)
	}
	if err != nil {
		s.printf("Invalid product: %v\n", err)
		return nil
	}

	obs.Logger.Info("catalog_item_added",
		zap.Stringer("variant", it.Variant),
		zap.String("name", it.Name),
		zap.String("id", it.ID),
	)
	s.println("Enter product information successful")
	s.println("===================================")
	s.println("PRODUCT INFORMATION:")
	s.renderItem(it)
	return nil
}

func (s *Session) removeProduct() error {
	s.printf("Enter product name: ")
	name, err := s.readLine()
	if err != nil {
		return err
	}
	if _, err := s.cat.Remove(name); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		s.printf("No results found for %s\n", name)
		return nil
	}
	s.println("Remove item successful!")
	return nil
}
