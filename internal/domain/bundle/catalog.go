package bundle

import (
	"rebate-ledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptySelection   = errs.NewValidation("select at least 1 bundle item")
	ErrNegativeDiscount = errs.NewValidation("discount must be a non-negative number")
	ErrNegativeFee      = errs.NewValidation("fee must be a non-negative number")
	ErrNegativePrice    = errs.NewValidation("item price must be non-negative")
	ErrDuplicateSKU     = errs.NewValidation("sku must be unique within a manufacturer and category")
	ErrMissingGroupName = errs.NewValidation("manufacturer and category names are required")
	ErrDuplicateGroup   = errs.NewValidation("manufacturer and category names must be unique")
)

type Item struct {
	SKU   string
	Name  string
	Price decimal.Decimal
}

type Category struct {
	Name  string
	Items []Item
}

type Manufacturer struct {
	Name       string
	Categories []Category
}

// Catalog is a two-level manufacturer -> category -> items lookup that keeps
// configuration order at every level.
type Catalog struct {
	manufacturers []Manufacturer
}

func NewCatalog(manufacturers []Manufacturer) (*Catalog, error) {
	seenMfg := make(map[string]struct{}, len(manufacturers))
	for _, m := range manufacturers {
		if m.Name == "" {
			return nil, ErrMissingGroupName
		}
		if _, dup := seenMfg[m.Name]; dup {
			return nil, errs.Wrapf(ErrDuplicateGroup, "manufacturer %q", m.Name)
		}
		seenMfg[m.Name] = struct{}{}

		seenCat := make(map[string]struct{}, len(m.Categories))
		for _, c := range m.Categories {
			if c.Name == "" {
				return nil, ErrMissingGroupName
			}
			if _, dup := seenCat[c.Name]; dup {
				return nil, errs.Wrapf(ErrDuplicateGroup, "category %q/%q", m.Name, c.Name)
			}
			seenCat[c.Name] = struct{}{}

			skus := make(map[string]struct{}, len(c.Items))
			for _, it := range c.Items {
				if _, dup := skus[it.SKU]; dup {
					return nil, errs.Wrapf(ErrDuplicateSKU, "sku %q", it.SKU)
				}
				skus[it.SKU] = struct{}{}
				if it.Price.IsNegative() {
					return nil, errs.Wrapf(ErrNegativePrice, "sku %q", it.SKU)
				}
			}
		}
	}
	return &Catalog{manufacturers: cloneManufacturers(manufacturers)}, nil
}

func (c *Catalog) Manufacturers() []string {
	out := make([]string, 0, len(c.manufacturers))
	for _, m := range c.manufacturers {
		out = append(out, m.Name)
	}
	return out
}

// Categories returns nil for an unknown manufacturer.
func (c *Catalog) Categories(manufacturer string) []string {
	for _, m := range c.manufacturers {
		if m.Name != manufacturer {
			continue
		}
		out := make([]string, 0, len(m.Categories))
		for _, cat := range m.Categories {
			out = append(out, cat.Name)
		}
		return out
	}
	return nil
}

// Items returns a copy of the ordered items, or an empty list when either key is absent.
func (c *Catalog) Items(manufacturer, category string) []Item {
	for _, m := range c.manufacturers {
		if m.Name != manufacturer {
			continue
		}
		for _, cat := range m.Categories {
			if cat.Name == category {
				out := make([]Item, len(cat.Items))
				copy(out, cat.Items)
				return out
			}
		}
	}
	return []Item{}
}

func (c *Catalog) Tree() []Manufacturer {
	return cloneManufacturers(c.manufacturers)
}

func cloneManufacturers(in []Manufacturer) []Manufacturer {
	out := make([]Manufacturer, len(in))
	for i, m := range in {
		cats := make([]Category, len(m.Categories))
		for j, cat := range m.Categories {
			items := make([]Item, len(cat.Items))
			copy(items, cat.Items)
			cats[j] = Category{Name: cat.Name, Items: items}
		}
		out[i] = Manufacturer{Name: m.Name, Categories: cats}
	}
	return out
}
