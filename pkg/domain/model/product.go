package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound      = errors.New("no product with this item number")
	ErrInsufficientStock = errors.New("insufficient stock quantity")
)

// Product is one catalog entry. Its identity is the 1-based position in the
// catalog, not a field on the struct.
type Product struct {
	Name  string
	Price decimal.Decimal
	Stock int
}

// Catalog is the fixed-length ordered product list. Its length is set when
// the catalog is loaded and never changes afterwards; stock goes down only
// through accepted order lines and both price and stock are overwritten
// through admin edits.
type Catalog struct {
	products []Product
}

func NewCatalog(products []Product) *Catalog {
	owned := make([]Product, len(products))
	copy(owned, products)
	return &Catalog{products: owned}
}

func (c *Catalog) Size() int {
	return len(c.products)
}

// Get returns a copy of the product at the 1-based item number.
func (c *Catalog) Get(itemNo int) (Product, error) {
	if itemNo < 1 || itemNo > len(c.products) {
		return Product{}, ErrItemNotFound
	}
	return c.products[itemNo-1], nil
}

// Set overwrites the product at the 1-based item number.
func (c *Catalog) Set(itemNo int, product Product) error {
	if itemNo < 1 || itemNo > len(c.products) {
		return ErrItemNotFound
	}
	c.products[itemNo-1] = product
	return nil
}

// Products returns a copy of the full product list, in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// CatalogRepository persists the full catalog. Load is all-or-nothing:
// implementations return an error rather than a partial catalog.
type CatalogRepository interface {
	Load() ([]Product, error)
	Save(products []Product) error
}
