package service

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Sanjidh090/SmartBuy/pkg/domain/model"
)

var (
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrNegativeStock = errors.New("stock cannot be negative")
)

type ProductService interface {
	Products() []model.Product
	Get(itemNo int) (model.Product, error)

	// UpdateProduct overwrites both price and stock of one product and
	// persists the catalog. The first invalid field aborts the edit.
	UpdateProduct(itemNo int, newPrice decimal.Decimal, newStock int) error
}

func NewProductService(catalog *model.Catalog, repo model.CatalogRepository, dispatcher EventDispatcher) ProductService {
	return &productService{catalog: catalog, repo: repo, dispatcher: dispatcher}
}

type productService struct {
	catalog    *model.Catalog
	repo       model.CatalogRepository
	dispatcher EventDispatcher
}

func (s *productService) Products() []model.Product {
	return s.catalog.Products()
}

func (s *productService) Get(itemNo int) (model.Product, error) {
	return s.catalog.Get(itemNo)
}

func (s *productService) UpdateProduct(itemNo int, newPrice decimal.Decimal, newStock int) error {
	if !ValidItemNumber(itemNo, s.catalog.Size()) {
		return ErrInvalidItemNumber
	}
	if newPrice.IsNegative() {
		return ErrNegativePrice
	}
	if newStock < 0 {
		return ErrNegativeStock
	}

	product, err := s.catalog.Get(itemNo)
	if err != nil {
		return err
	}

	old := product
	product.Price = newPrice
	product.Stock = newStock
	if err := s.catalog.Set(itemNo, product); err != nil {
		return err
	}

	if err := s.repo.Save(s.catalog.Products()); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.ProductUpdated{
		ItemNo:   itemNo,
		Name:     product.Name,
		OldPrice: old.Price,
		NewPrice: newPrice,
		OldStock: old.Stock,
		NewStock: newStock,
	})
	return nil
}
