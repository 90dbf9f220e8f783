package service

import (
	"github.com/shopspring/decimal"

	"github.com/Sanjidh090/SmartBuy/pkg/domain/model"
)

type Event interface{ Type() string }
type EventDispatcher interface{ Dispatch(event Event) error }

// The three line checks below are pure and are composed in this order:
// item number, then quantity, then stock. The first failing check rejects
// the candidate line.

// ValidItemNumber reports whether n addresses a product in a catalog of the
// given size (1-based).
func ValidItemNumber(n, size int) bool {
	return n >= 1 && n <= size
}

// ValidQuantity reports whether q is an orderable quantity.
func ValidQuantity(q int) bool {
	return q >= 1
}

// SufficientStock reports whether the product can cover the requested
// quantity.
func SufficientStock(p model.Product, quantity int) bool {
	return quantity <= p.Stock
}

// LineTotal is price x quantity rounded to two decimal places.
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
