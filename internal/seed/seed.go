// Package seed decodes the catalog loaded at process start.
package seed

import (
	_ "embed"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/fairyhunter13/catalog-cart-simulator/internal/config"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/model"
	"github.com/fairyhunter13/catalog-cart-simulator/internal/store"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type record struct {
	Name     string `yaml:"name"`
	ID       string `yaml:"id"`
	Price    string `yaml:"price"`
	Rate     string `yaml:"rate"`
	Stock    int    `yaml:"stock"`
	Power    int    `yaml:"power"`
	Warranty int    `yaml:"warranty"`
	ExtraFee string `yaml:"extra_fee"`
}

type file struct {
	Basic      []record `yaml:"basic"`
	Electronic []record `yaml:"electronic"`
}

// Load builds the catalog selected by cfg.Seed.
func Load(cfg config.Config) (*store.Catalog, error) {
	if cfg.Seed == config.SeedEmpty {
		return store.NewCatalog()
	}
	return Parse(defaultCatalog)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*store.Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}
	cat, err := store.NewCatalog()
	if err != nil {
		return nil, err
	}
	for i, r := range f.Basic {
		a, err := r.attrs()
		if err != nil {
			return nil, errors.Wrapf(err, "basic[%d]", i)
		}
		it, err := model.NewBasic(a)
		if err != nil {
			return nil, errors.Wrapf(err, "basic[%d]", i)
		}
		if err := cat.Add(it); err != nil {
			return nil, err
		}
	}
	for i, r := range f.Electronic {
		a, err := r.attrs()
		if err != nil {
			return nil, errors.Wrapf(err, "electronic[%d]", i)
		}
		fee, err := parseDecimal(r.ExtraFee)
		if err != nil {
			return nil, errors.Wrapf(err, "electronic[%d] extra_fee", i)
		}
		it, err := model.NewElectronic(a, model.ElectronicAttrs{Power: r.Power, Warranty: r.Warranty, ExtraFee: fee})
		if err != nil {
			return nil, errors.Wrapf(err, "electronic[%d]", i)
		}
		if err := cat.Add(it); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

func (r record) attrs() (model.Attrs, error) {
	price, err := parseDecimal(r.Price)
	if err != nil {
		return model.Attrs{}, errors.Wrap(err, "price")
	}
	rate, err := parseDecimal(r.Rate)
	if err != nil {
		return model.Attrs{}, errors.Wrap(err, "rate")
	}
	return model.Attrs{Name: r.Name, ID: r.ID, BasePrice: price, Rate: rate, Stock: r.Stock}, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
