package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Sanjidh090/SmartBuy/pkg/domain/model"
)

var (
	ErrInvalidItemNumber = errors.New("item number is out of range")
	ErrInvalidQuantity   = errors.New("quantity must be at least one")
	ErrOrderIsEmpty      = errors.New("cannot finalize an empty order")
)

type OrderService interface {
	// Begin starts a new ordering session against the live catalog.
	Begin() *Session
}

func NewOrderService(catalog *model.Catalog, repo model.CatalogRepository, dispatcher EventDispatcher) OrderService {
	return &orderService{catalog: catalog, repo: repo, dispatcher: dispatcher}
}

type orderService struct {
	catalog    *model.Catalog
	repo       model.CatalogRepository
	dispatcher EventDispatcher
}

func (s *orderService) Begin() *Session {
	return &Session{svc: s, total: decimal.Zero}
}

// Session accumulates order lines against the catalog. Each accepted line
// decrements in-memory stock immediately; rejected lines leave the session
// and the catalog untouched.
type Session struct {
	svc   *orderService
	lines []model.OrderLine
	total decimal.Decimal
}

// AddLine validates the candidate line (item number, quantity, stock, in
// that order) and on success commits it to the session.
func (s *Session) AddLine(itemNo, quantity int) (model.OrderLine, error) {
	if !ValidItemNumber(itemNo, s.svc.catalog.Size()) {
		return model.OrderLine{}, ErrInvalidItemNumber
	}
	if !ValidQuantity(quantity) {
		return model.OrderLine{}, ErrInvalidQuantity
	}

	product, err := s.svc.catalog.Get(itemNo)
	if err != nil {
		return model.OrderLine{}, err
	}
	if !SufficientStock(product, quantity) {
		return model.OrderLine{}, model.ErrInsufficientStock
	}

	line := model.OrderLine{
		ItemNo:    itemNo,
		Name:      product.Name,
		Quantity:  quantity,
		UnitPrice: product.Price,
		LineTotal: LineTotal(product.Price, quantity),
	}

	product.Stock -= quantity
	if err := s.svc.catalog.Set(itemNo, product); err != nil {
		return model.OrderLine{}, err
	}

	s.lines = append(s.lines, line)
	s.total = s.total.Add(line.LineTotal)

	_ = s.svc.dispatcher.Dispatch(model.ItemAddedToOrder{
		ItemNo:    itemNo,
		Name:      line.Name,
		Quantity:  quantity,
		LineTotal: line.LineTotal,
	})
	return line, nil
}

func (s *Session) Empty() bool {
	return len(s.lines) == 0
}

func (s *Session) RunningTotal() decimal.Decimal {
	return s.total
}

// Finalize closes the session: it persists the mutated catalog and returns
// the completed order. An empty session returns ErrOrderIsEmpty and has no
// side effects. Receipt and log writing are the caller's concern; a failure
// there must not undo the catalog state committed here.
func (s *Session) Finalize() (*model.Order, error) {
	if len(s.lines) == 0 {
		return nil, ErrOrderIsEmpty
	}

	if err := s.svc.repo.Save(s.svc.catalog.Products()); err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:         uuid.New(),
		CreatedAt:  time.Now().UTC(),
		Lines:      s.lines,
		GrandTotal: s.total,
	}

	_ = s.svc.dispatcher.Dispatch(model.OrderFinalized{
		OrderID:    order.ID,
		Lines:      len(order.Lines),
		GrandTotal: order.GrandTotal,
	})
	return order, nil
}
